// Package mapping defines the declarative configuration that turns an
// arbitrary nested provider resource into flat, typed attribute rows.
//
// A provider mapping is a Tree whose shape mirrors the expected shape of the
// provider's resources. Each Entry names a property (a literal name, or a
// capture pattern such as "{language}" matching any property not claimed by
// a literal sibling) and attaches zero or more ResourceMapping values and an
// optional sub-tree.
//
// # Mapping kinds
//
// ResourceMapping is a tagged union discriminated by Kind:
//
//   - field: writes a scalar resource field (id, name, lastUpdated, ...)
//   - string, number, boolean, dateTime: one row in an inline attribute table
//   - translatable: a string row with a language
//   - reference: a string row resolved downstream against a named list
//
// The constructors (ResourceFieldMapping, AttributeMapping,
// TranslatableAttributeMapping, ReferenceAttributeMapping) panic when the
// result breaks its kind's invariants; those are authoring mistakes and must
// surface before any data is processed.
//
// # Capture tokens
//
// Keys and languages may embed {token} placeholders. They are substituted
// with the property names bound by enclosing capture patterns; unbound
// tokens are left verbatim.
//
// # Mapping files
//
// Trees can also be authored in YAML and compiled against a Registry of
// named transforms:
//
//	version: "1"
//	provider: directory
//	mapping:
//	  id: {field: id}
//	  description:
//	    children:
//	      "{language}":
//	        kind: translatable
//	        key: "description/{language}"
//	        language: "{language}"
//	  coverage:
//	    - {kind: string, key: coverage}
//	    - kind: reference
//	      key: coverage/region
//	      list: country/region
//	      value: {transform: [trim, splitFirst]}
//
// Key order is preserved, so entries run in the order they are written.
package mapping
