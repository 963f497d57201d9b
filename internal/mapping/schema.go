package mapping

// MappingFile is the root of a YAML provider mapping definition.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Provider names the external data source this file maps.
	Provider string `yaml:"provider,omitempty"`

	// ReservedKeys are stripped from data objects before their children are
	// walked. Nil means the engine default; an explicit empty list disables it.
	ReservedKeys []string `yaml:"reservedKeys,omitempty"`

	// MaxDepth bounds recursion. Zero means the engine default.
	MaxDepth int `yaml:"maxDepth,omitempty"`

	// Mapping is the ordered mapping tree.
	Mapping NodeDefs `yaml:"mapping"`
}

// NodeDefs is an ordered list of node definitions. In YAML it is written as a
// mapping whose key order is preserved.
type NodeDefs []NodeDef

// NodeDef is one property of the mapping tree.
//
// YAML forms accepted for the value of a property:
//   - a mapping object:        name: {field: name}
//   - a list of mapping objects: name: [{field: name}, {kind: string, key: name}]
//   - a node object:           name: {mappings: ..., children: {...}}
type NodeDef struct {
	Property string
	Mappings []MappingDef
	Children NodeDefs

	// Line is the YAML line of the property, for diagnostics.
	Line int
}

// MappingDef is the declarative form of a ResourceMapping.
type MappingDef struct {
	// Kind is one of field, string, number, boolean, dateTime, translatable,
	// reference. It may be omitted when Field is set.
	Kind string `yaml:"kind,omitempty"`

	// Field is the scalar target of a field mapping.
	Field string `yaml:"field,omitempty"`

	// Key is the attribute key template, e.g. "description/{language}".
	Key string `yaml:"key,omitempty"`

	// List is the controlled vocabulary of a reference mapping.
	List string `yaml:"list,omitempty"`

	// Language produces the row language. A plain string is a template.
	Language *ValueDef `yaml:"language,omitempty"`

	// Value produces the row value. Defaults to the current data node.
	Value *ValueDef `yaml:"value,omitempty"`

	// Info produces the row info object.
	Info *ValueDef `yaml:"info,omitempty"`

	Line int `yaml:"-"`
}

// ValueDef describes where a generated value comes from.
//
//	value: 42                                  # constant
//	value: "{language}"                        # template
//	value: {from: parent, path: name.en}       # lookup
//	value: {path: coverage, transform: [trim, regionCode]}
//	info:  {const: {source: directory}}
type ValueDef struct {
	// From selects the base value: current (default), parent or root.
	From string `yaml:"from,omitempty"`

	// Path is a dotted path below the base value.
	Path string `yaml:"path,omitempty"`

	// Const is a literal value. When set, From and Path are ignored.
	Const any `yaml:"const,omitempty"`

	// Template is a capture-token template producing a string.
	Template string `yaml:"template,omitempty"`

	// Transform names registry transforms applied in order to the value.
	Transform StringArray `yaml:"transform,omitempty"`

	// hasConst records an explicit constant, including null.
	hasConst bool
}

// Value base selectors.
const (
	FromCurrent = "current"
	FromParent  = "parent"
	FromRoot    = "root"
)

// StringArray is a string slice that can be unmarshaled from a single string or a list.
type StringArray []string
