package mapping

import (
	"fmt"
	"strings"

	"resource-mapper/internal/diagnostic"
)

// Entry binds a property of the data node (a literal name or a capture
// pattern such as "{language}") to the mappings applied to its value and to
// the sub-tree walked inside it.
type Entry struct {
	Property string
	Mappings []ResourceMapping
	Children Tree
}

// Tree is an ordered mapping tree. Entries are applied in declaration order.
type Tree []Entry

// Map declares a property with one or more mappings and no children.
func Map(property string, mappings ...ResourceMapping) Entry {
	return Entry{Property: property, Mappings: mappings}
}

// Nest declares a property whose value is walked with children. Mappings, if
// any, are applied to the property value itself before descending.
func Nest(property string, children Tree, mappings ...ResourceMapping) Entry {
	return Entry{Property: property, Mappings: mappings, Children: children}
}

// Capture returns the capture token name if the entry is a capture pattern.
func (e Entry) Capture() (string, bool) {
	return CapturePattern(e.Property)
}

// Literals returns the set of literal property names declared at this level.
func (t Tree) Literals() map[string]struct{} {
	literals := make(map[string]struct{}, len(t))
	for _, e := range t {
		if _, ok := e.Capture(); !ok {
			literals[e.Property] = struct{}{}
		}
	}

	return literals
}

// Validate checks the whole tree: unique literal properties, at most one
// capture entry per level, valid mappings.
func (t Tree) Validate() error {
	var diags diagnostic.Diagnostics

	t.validate(&diags, nil)

	return diags.Error()
}

func (t Tree) validate(diags *diagnostic.Diagnostics, path []string) {
	seen := make(map[string]struct{}, len(t))
	capture := ""

	for _, e := range t {
		entryPath := append(append([]string{}, path...), e.Property)
		where := strings.Join(entryPath, "/")

		if e.Property == "" {
			diags.AddError("empty_property", "mapping entry has an empty property", "", where)
			continue
		}

		if name, ok := e.Capture(); ok {
			if capture != "" {
				diags.AddError("multiple_captures",
					fmt.Sprintf("capture %q conflicts with sibling capture %q", e.Property, capture), "", where)
			}

			capture = e.Property

			if shadowed := boundAbove(path, name); shadowed {
				diags.AddError("capture_rebound",
					fmt.Sprintf("capture token %q is already bound by an ancestor", name), "", where)
			}
		} else if HasCaptureTokens(e.Property) {
			diags.AddError("partial_capture",
				fmt.Sprintf("property %q mixes literal text and a capture token", e.Property), "", where)
		}

		if _, dup := seen[e.Property]; dup {
			diags.AddError("duplicate_property", fmt.Sprintf("duplicate property %q", e.Property), "", where)
		}

		seen[e.Property] = struct{}{}

		if len(e.Mappings) == 0 && len(e.Children) == 0 {
			diags.AddError("empty_entry", "entry declares neither mappings nor children", "", where)
		}

		for _, m := range e.Mappings {
			if err := m.Validate(); err != nil {
				diags.AddError("invalid_mapping", err.Error(), "", where)
			}
		}

		e.Children.validate(diags, entryPath)
	}
}

func boundAbove(path []string, token string) bool {
	for _, p := range path {
		if name, ok := CapturePattern(p); ok && name == token {
			return true
		}
	}

	return false
}
