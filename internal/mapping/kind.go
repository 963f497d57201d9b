package mapping

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind discriminates the ResourceMapping union. Exactly one dispatch path in
// the assembler applies to each kind.
type Kind int

const (
	_ Kind = iota // zero value is an invalid, unset kind

	KindField        // field
	KindString       // string
	KindNumber       // number
	KindBoolean      // boolean
	KindDateTime     // dateTime
	KindTranslatable // translatable
	KindReference    // reference

	kindEnd
)

// Kinds lists every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(kindEnd)-1)
	for k := KindField; k < kindEnd; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= KindField && k < kindEnd
}

// IsAttribute reports whether the kind produces an attribute row rather than
// a scalar resource field.
func (k Kind) IsAttribute() bool {
	return k.IsValid() && k != KindField
}

// HasLanguage reports whether rows of this kind carry a language.
func (k Kind) HasLanguage() bool {
	return k == KindTranslatable || k == KindReference
}

// ParseKind resolves a kind by its String form.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}

	return 0, false
}

// ResourceField names one of the scalar fields of a flat resource.
type ResourceField string

const (
	FieldID               ResourceField = "id"
	FieldName             ResourceField = "name"
	FieldLastUpdated      ResourceField = "lastUpdated"
	FieldDeletedAt        ResourceField = "deletedAt"
	FieldImportSequenceID ResourceField = "importSequenceId"
)

// ResourceFields lists every scalar field a mapping may target.
func ResourceFields() []ResourceField {
	return []ResourceField{FieldID, FieldName, FieldLastUpdated, FieldDeletedAt, FieldImportSequenceID}
}

// IsValid reports whether f is a known scalar field.
func (f ResourceField) IsValid() bool {
	switch f {
	case FieldID, FieldName, FieldLastUpdated, FieldDeletedAt, FieldImportSequenceID:
		return true
	default:
		return false
	}
}

// AttributeTable names one of the four inline attribute arrays.
type AttributeTable string

const (
	StringAttributes   AttributeTable = "stringAttributes"
	NumberAttributes   AttributeTable = "numberAttributes"
	BooleanAttributes  AttributeTable = "booleanAttributes"
	DateTimeAttributes AttributeTable = "dateTimeAttributes"
)

// Kind returns the mapping kind that writes into the table.
func (t AttributeTable) Kind() (Kind, bool) {
	switch t {
	case StringAttributes:
		return KindString, true
	case NumberAttributes:
		return KindNumber, true
	case BooleanAttributes:
		return KindBoolean, true
	case DateTimeAttributes:
		return KindDateTime, true
	default:
		return 0, false
	}
}
