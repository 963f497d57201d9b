package mapping

import (
	"errors"
	"fmt"
)

// ResourceMapping describes how one data node becomes a scalar field or an
// attribute row. Kind selects which of the remaining fields are meaningful.
type ResourceMapping struct {
	Kind Kind

	// Field is the scalar target of a KindField mapping.
	Field ResourceField

	Key      StringGenerator
	Value    ValueGenerator
	Info     ValueGenerator
	Language StringGenerator

	// List is the controlled vocabulary of a KindReference mapping.
	List string
}

// Option customizes a mapping built by one of the constructors below.
type Option func(*ResourceMapping)

// WithValue overrides the default current-value generator.
func WithValue(gen ValueGenerator) Option {
	return func(m *ResourceMapping) { m.Value = gen }
}

// WithConstValue sets a literal value.
func WithConstValue(v any) Option {
	return WithValue(Const(v))
}

// WithInfo sets the info generator. Its result must be nil or a map[string]any.
func WithInfo(gen ValueGenerator) Option {
	return func(m *ResourceMapping) { m.Info = gen }
}

// WithConstInfo sets a literal info object.
func WithConstInfo(info map[string]any) Option {
	return WithInfo(Const(info))
}

// WithKey overrides the key generator.
func WithKey(gen StringGenerator) Option {
	return func(m *ResourceMapping) { m.Key = gen }
}

// WithLanguage sets the language generator.
func WithLanguage(gen StringGenerator) Option {
	return func(m *ResourceMapping) { m.Language = gen }
}

// WithLanguageTemplate sets a literal language, substituting capture tokens.
func WithLanguageTemplate(template string) Option {
	return WithLanguage(Template(template))
}

// ResourceFieldMapping writes the node value into a scalar resource field.
// It panics if field is unknown.
func ResourceFieldMapping(field ResourceField, opts ...Option) ResourceMapping {
	return mustBuild(ResourceMapping{Kind: KindField, Field: field}, opts)
}

// AttributeMapping writes one row into an inline attribute table. The key may
// contain capture tokens. It panics on an invalid table or configuration.
func AttributeMapping(table AttributeTable, key string, opts ...Option) ResourceMapping {
	kind, ok := table.Kind()
	if !ok {
		panic(fmt.Sprintf("mapping: unknown attribute table %q", table))
	}

	return mustBuild(ResourceMapping{Kind: kind, Key: Template(key)}, opts)
}

// TranslatableAttributeMapping writes a string row with a language. A language
// generator must be supplied through WithLanguage or WithLanguageTemplate.
func TranslatableAttributeMapping(key string, opts ...Option) ResourceMapping {
	return mustBuild(ResourceMapping{Kind: KindTranslatable, Key: Template(key)}, opts)
}

// ReferenceAttributeMapping writes a reference row whose value is expected to
// belong to list. Language defaults to the empty string.
func ReferenceAttributeMapping(key, list string, opts ...Option) ResourceMapping {
	return mustBuild(ResourceMapping{Kind: KindReference, Key: Template(key), List: list}, opts)
}

func mustBuild(m ResourceMapping, opts []Option) ResourceMapping {
	m.Value = CurrentValue
	for _, opt := range opts {
		opt(&m)
	}

	if err := m.Validate(); err != nil {
		panic(err)
	}

	return m
}

var (
	ErrInvalidKind      = errors.New("invalid mapping kind")
	ErrInvalidField     = errors.New("invalid resource field")
	ErrMissingKey       = errors.New("attribute mapping requires a key")
	ErrMissingValue     = errors.New("mapping requires a value generator")
	ErrMissingLanguage  = errors.New("translatable mapping requires a language")
	ErrMissingList      = errors.New("reference mapping requires a list")
	ErrUnexpectedOption = errors.New("option not allowed for mapping kind")
)

// Validate checks the invariants of the mapping's kind.
func (m ResourceMapping) Validate() error {
	if !m.Kind.IsValid() {
		return fmt.Errorf("mapping: %w: %s", ErrInvalidKind, m.Kind)
	}

	if m.Value == nil {
		return fmt.Errorf("mapping: %s: %w", m.Kind, ErrMissingValue)
	}

	if m.Kind == KindField {
		if !m.Field.IsValid() {
			return fmt.Errorf("mapping: %w: %q", ErrInvalidField, m.Field)
		}

		if m.Key != nil || m.Language != nil || m.Info != nil || m.List != "" {
			return fmt.Errorf("mapping: field %s: %w: key, info, language and list", m.Field, ErrUnexpectedOption)
		}

		return nil
	}

	if m.Field != "" {
		return fmt.Errorf("mapping: %s: %w: field", m.Kind, ErrUnexpectedOption)
	}

	if m.Key == nil {
		return fmt.Errorf("mapping: %s: %w", m.Kind, ErrMissingKey)
	}

	switch m.Kind {
	case KindTranslatable:
		if m.Language == nil {
			return fmt.Errorf("mapping: %s: %w", m.Kind, ErrMissingLanguage)
		}
	case KindReference:
		if m.List == "" {
			return fmt.Errorf("mapping: %s: %w", m.Kind, ErrMissingList)
		}

		if m.Info != nil {
			return fmt.Errorf("mapping: %s: %w: info", m.Kind, ErrUnexpectedOption)
		}
	default:
		if m.Language != nil {
			return fmt.Errorf("mapping: %s: %w: language", m.Kind, ErrUnexpectedOption)
		}
	}

	if m.List != "" && m.Kind != KindReference {
		return fmt.Errorf("mapping: %s: %w: list", m.Kind, ErrUnexpectedOption)
	}

	return nil
}
