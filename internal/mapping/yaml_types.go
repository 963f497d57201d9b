package mapping

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"resource-mapper/internal/common"
	"resource-mapper/internal/match"
)

const (
	nodeKeyMappings = "mappings"
	nodeKeyChildren = "children"
)

var mappingDefKeys = []string{"kind", "field", "key", "list", "language", "value", "info"}

var valueDefKeys = []string{"from", "path", "const", "template", "transform"}

// --- StringArray YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}

// --- NodeDefs YAML methods ---

// UnmarshalYAML decodes a YAML mapping into an ordered list of node
// definitions, keeping the key order of the document.
func (n *NodeDefs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*n = nil
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of properties, got %s", node.Line, kindName(node.Kind))
	}

	defs := make(NodeDefs, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var property string
		if err := keyNode.Decode(&property); err != nil {
			return fmt.Errorf("line %d: invalid property name: %w", keyNode.Line, err)
		}

		def, err := parseNodeDef(property, valueNode)
		if err != nil {
			return err
		}

		def.Line = keyNode.Line
		defs = append(defs, def)
	}

	*n = defs

	return nil
}

// parseNodeDef interprets the value of one property.
func parseNodeDef(property string, node *yaml.Node) (NodeDef, error) {
	def := NodeDef{Property: property}

	switch node.Kind {
	case yaml.SequenceNode:
		mappings, err := parseMappingDefs(node)
		if err != nil {
			return NodeDef{}, fmt.Errorf("property %q: %w", property, err)
		}

		def.Mappings = mappings

		return def, nil

	case yaml.MappingNode:
		if !hasAnyKey(node, nodeKeyMappings, nodeKeyChildren) {
			var m MappingDef
			if err := node.Decode(&m); err != nil {
				return NodeDef{}, fmt.Errorf("property %q: %w", property, err)
			}

			def.Mappings = []MappingDef{m}

			return def, nil
		}

		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			value := node.Content[i+1]

			switch key {
			case nodeKeyMappings:
				mappings, err := parseMappingDefs(value)
				if err != nil {
					return NodeDef{}, fmt.Errorf("property %q: %w", property, err)
				}

				def.Mappings = mappings
			case nodeKeyChildren:
				if err := value.Decode(&def.Children); err != nil {
					return NodeDef{}, err
				}
			default:
				return NodeDef{}, unknownKeyError(node.Content[i], key,
					[]string{nodeKeyMappings, nodeKeyChildren})
			}
		}

		return def, nil

	default:
		return NodeDef{}, fmt.Errorf("line %d: property %q: expected a mapping, a list of mappings or a node, got %s",
			node.Line, property, kindName(node.Kind))
	}
}

// parseMappingDefs accepts a single mapping object or a sequence of them.
func parseMappingDefs(node *yaml.Node) ([]MappingDef, error) {
	switch node.Kind {
	case yaml.MappingNode:
		var m MappingDef
		if err := node.Decode(&m); err != nil {
			return nil, err
		}

		return []MappingDef{m}, nil

	case yaml.SequenceNode:
		defs := make([]MappingDef, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: expected mapping object, got %s", item.Line, kindName(item.Kind))
			}

			var m MappingDef
			if err := item.Decode(&m); err != nil {
				return nil, err
			}

			defs = append(defs, m)
		}

		return defs, nil

	default:
		return nil, fmt.Errorf("line %d: expected mapping object or list, got %s", node.Line, kindName(node.Kind))
	}
}

// --- MappingDef YAML methods ---

// UnmarshalYAML rejects unknown keys so that typos surface at load time.
func (m *MappingDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping object, got %s", node.Line, kindName(node.Kind))
	}

	if err := checkKeys(node, mappingDefKeys); err != nil {
		return err
	}

	type plain MappingDef

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*m = MappingDef(p)
	m.Line = node.Line

	// A null value source is the constant null, not an absent one.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if !isNull(node.Content[i+1]) {
			continue
		}

		switch node.Content[i].Value {
		case "value":
			m.Value = &ValueDef{hasConst: true}
		case "info":
			m.Info = &ValueDef{hasConst: true}
		case "language":
			m.Language = &ValueDef{hasConst: true}
		}
	}

	return nil
}

// --- ValueDef YAML methods ---

// UnmarshalYAML accepts a scalar shorthand or a full value object. A string
// scalar is a template; any other scalar is a constant.
func (v *ValueDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!str" {
			*v = ValueDef{Template: node.Value}
			return nil
		}

		var c any
		if err := node.Decode(&c); err != nil {
			return err
		}

		*v = ValueDef{Const: c, hasConst: true}

		return nil

	case yaml.MappingNode:
		if err := checkKeys(node, valueDefKeys); err != nil {
			return err
		}

		type plain ValueDef

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*v = ValueDef(p)
		v.hasConst = hasAnyKey(node, "const")

		return nil

	default:
		return fmt.Errorf("line %d: expected scalar or value object, got %s", node.Line, kindName(node.Kind))
	}
}

func checkKeys(node *yaml.Node, allowed []string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !slices.Contains(allowed, key) {
			return unknownKeyError(node.Content[i], key, allowed)
		}
	}

	return nil
}

func unknownKeyError(node *yaml.Node, key string, allowed []string) error {
	msg := fmt.Sprintf("line %d: unknown key %q", node.Line, key)
	if best, ok := common.First(match.Suggest(key, allowed)); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", best)
	}

	return errors.New(msg)
}

func hasAnyKey(node *yaml.Node, keys ...string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if slices.Contains(keys, node.Content[i].Value) {
			return true
		}
	}

	return false
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
