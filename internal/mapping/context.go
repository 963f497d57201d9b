package mapping

import (
	"maps"
	"strings"
)

// Captures maps capture token names to the data property names they were
// bound to. A Captures value is never mutated once built; use With.
type Captures map[string]string

// With returns a copy of c with name bound to value.
func (c Captures) With(name, value string) Captures {
	out := make(Captures, len(c)+1)
	maps.Copy(out, c)
	out[name] = value

	return out
}

// Lookup returns the bound value for name.
func (c Captures) Lookup(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

// FieldMappingContext is everything a generator may look at while producing
// a key, value, info or language for one data node. It is passed by value and
// each child node receives a fresh copy.
type FieldMappingContext struct {
	CurrentValue any
	ParentValue  any
	Captures     Captures
	Path         []string
	RootResource any
}

// NewRootContext returns the context for the top of a resource.
func NewRootContext(root any) FieldMappingContext {
	return FieldMappingContext{
		CurrentValue: root,
		Captures:     Captures{},
		Path:         []string{},
		RootResource: root,
	}
}

// Child returns the context for property of the current node. When capture is
// non-empty the property name is bound to it.
func (c FieldMappingContext) Child(property string, value any, capture string) FieldMappingContext {
	path := make([]string, len(c.Path), len(c.Path)+1)
	copy(path, c.Path)
	path = append(path, EscapePathSegment(property))

	captures := c.Captures
	if capture != "" {
		captures = captures.With(capture, property)
	}

	return FieldMappingContext{
		CurrentValue: value,
		ParentValue:  c.CurrentValue,
		Captures:     captures,
		Path:         path,
		RootResource: c.RootResource,
	}
}

// PathString joins the path with slashes.
func (c FieldMappingContext) PathString() string {
	return strings.Join(c.Path, "/")
}

// EscapePathSegment escapes slashes so a property name stays one path segment.
func EscapePathSegment(property string) string {
	return strings.ReplaceAll(property, "/", `\/`)
}
