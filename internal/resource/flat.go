// Package resource defines the canonical flat storage shape every external
// provider record is normalized into, plus the envelope used to ship batches
// of them to the importer.
package resource

// StringAttribute is a string row. Language is empty for non-translatable rows.
type StringAttribute struct {
	Key      string         `json:"key"`
	Value    string         `json:"value"`
	Language string         `json:"language"`
	Info     map[string]any `json:"info"`
}

// NumberAttribute is a numeric row.
type NumberAttribute struct {
	Key   string         `json:"key"`
	Value float64        `json:"value"`
	Info  map[string]any `json:"info"`
}

// BooleanAttribute is a boolean row.
type BooleanAttribute struct {
	Key   string         `json:"key"`
	Value bool           `json:"value"`
	Info  map[string]any `json:"info"`
}

// DateTimeAttribute is a timestamp row. Value is an ISO-8601 UTC instant.
type DateTimeAttribute struct {
	Key   string         `json:"key"`
	Value string         `json:"value"`
	Info  map[string]any `json:"info"`
}

// ReferenceAttribute is a raw value expected to belong to the controlled
// vocabulary named by List. It is resolved to a reference id downstream.
type ReferenceAttribute struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Language string `json:"language"`
	List     string `json:"list"`
}

// FlatResource is the normalized form of one external resource.
type FlatResource struct {
	AccountSid       string `json:"accountSid"`
	ID               string `json:"id"`
	Name             string `json:"name"`
	LastUpdated      string `json:"lastUpdated"`
	DeletedAt        string `json:"deletedAt"`
	ImportSequenceID string `json:"importSequenceId"`

	StringAttributes          []StringAttribute    `json:"stringAttributes"`
	NumberAttributes          []NumberAttribute    `json:"numberAttributes"`
	BooleanAttributes         []BooleanAttribute   `json:"booleanAttributes"`
	DateTimeAttributes        []DateTimeAttribute  `json:"dateTimeAttributes"`
	ReferenceStringAttributes []ReferenceAttribute `json:"referenceStringAttributes"`
}

// New returns an empty FlatResource for the account. All attribute slices are
// allocated so they serialize as [] rather than null.
func New(accountSid string) *FlatResource {
	return &FlatResource{
		AccountSid:                accountSid,
		StringAttributes:          []StringAttribute{},
		NumberAttributes:          []NumberAttribute{},
		BooleanAttributes:         []BooleanAttribute{},
		DateTimeAttributes:        []DateTimeAttribute{},
		ReferenceStringAttributes: []ReferenceAttribute{},
	}
}

// AttributeCount returns the total number of attribute rows.
func (r *FlatResource) AttributeCount() int {
	return len(r.StringAttributes) +
		len(r.NumberAttributes) +
		len(r.BooleanAttributes) +
		len(r.DateTimeAttributes) +
		len(r.ReferenceStringAttributes)
}
