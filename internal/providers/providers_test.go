package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-mapper/internal/mapping"
	"resource-mapper/internal/resource"
	"resource-mapper/internal/transform"
)

func transformer(t *testing.T, name string) *transform.Transformer {
	t.Helper()

	tree, ok := Lookup(name)
	require.True(t, ok, name)

	tr, err := transform.New(tree)
	require.NoError(t, err)

	return tr
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"agency", "directory"}, Names())

	for _, name := range Names() {
		tree, ok := Lookup(name)
		require.True(t, ok)
		require.NoError(t, tree.Validate(), name)
	}

	_, ok := Lookup("unknown")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	r := Registry()

	assert.True(t, r.Has("regionCode"))
	assert.True(t, r.Has("languageCode"))
	assert.True(t, r.Has("trim"))
}

func TestRegionCode(t *testing.T) {
	ctx := mapping.FieldMappingContext{}

	assert.Equal(t, "CA/ON", regionCode(ctx, " Ontario "))
	assert.Equal(t, "CA/QC", regionCode(ctx, "qc"))
	assert.Equal(t, "CA/NL", regionCode(ctx, "Newfoundland and Labrador"))
	assert.Nil(t, regionCode(ctx, "Atlantis"))
	assert.Equal(t, 3.0, regionCode(ctx, 3.0))
}

func TestLanguageCode(t *testing.T) {
	ctx := mapping.FieldMappingContext{}

	assert.Equal(t, "en", languageCode(ctx, "English"))
	assert.Equal(t, "fr", languageCode(ctx, "Français"))
	assert.Equal(t, "es", languageCode(ctx, "ES"))
	assert.Nil(t, languageCode(ctx, "Klingon"))
}

func TestDirectory(t *testing.T) {
	var input any
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "64f0",
		"id": "D-100",
		"importSequenceId": "1700000000000-0001",
		"name": {"en": "Kids Help Phone", "fr": "Jeunesse, J'écoute"},
		"lastUpdated": "2024-06-01T12:30:00-04:00",
		"deleted": true,
		"description": {"en": "Counselling", "fr": "Consultation", "objectId": "x"},
		"isActive": true,
		"capacity": "250",
		"eligibility": {"minAge": 5, "maxAge": 29},
		"coverage": "Ontario; Quebec",
		"languages": ["English", "fr", "Klingon"],
		"sites": [
			{"_id": "s", "siteId": "S-1", "name": "Toronto", "phone": " ", "opened": "2019-09-01"},
			{"siteId": "S-2", "name": "Montreal", "phone": "555-0100"}
		]
	}`), &input))

	out, diags := transformer(t, "directory").TransformWithDiagnostics("AC1", input)
	require.Zero(t, diags.Len(), diags.Error())

	assert.Equal(t, "D-100", out.ID)
	assert.Equal(t, "Kids Help Phone", out.Name)
	assert.Equal(t, "2024-06-01T16:30:00.000Z", out.LastUpdated)
	assert.Equal(t, "2024-06-01T16:30:00.000Z", out.DeletedAt)
	assert.Equal(t, "1700000000000-0001", out.ImportSequenceID)

	assert.Equal(t, []resource.StringAttribute{
		{Key: "name/en", Value: "Kids Help Phone", Language: "en"},
		{Key: "name/fr", Value: "Jeunesse, J'écoute", Language: "fr"},
		{Key: "description/en", Value: "Counselling", Language: "en"},
		{Key: "description/fr", Value: "Consultation", Language: "fr"},
		{Key: "coverage", Value: "Ontario; Quebec", Info: map[string]any{"source": "directory"}},
		{Key: "sites/0/id", Value: "S-1"},
		{Key: "sites/0/name", Value: "Toronto"},
		{Key: "sites/1/id", Value: "S-2"},
		{Key: "sites/1/name", Value: "Montreal"},
		{Key: "sites/1/phone", Value: "555-0100"},
	}, out.StringAttributes)

	assert.Equal(t, []resource.BooleanAttribute{{Key: "isActive", Value: true}}, out.BooleanAttributes)
	assert.Equal(t, []resource.NumberAttribute{
		{Key: "capacity", Value: 250},
		{Key: "eligibility/minAge", Value: 5},
		{Key: "eligibility/maxAge", Value: 29},
	}, out.NumberAttributes)
	assert.Equal(t, []resource.DateTimeAttribute{
		{Key: "sites/0/opened", Value: "2019-09-01T00:00:00.000Z"},
	}, out.DateTimeAttributes)
	assert.Equal(t, []resource.ReferenceAttribute{
		{Key: "coverage/region", Value: "CA/ON", List: "country/region"},
		{Key: "languages", Value: "en", List: "languages"},
		{Key: "languages", Value: "fr", List: "languages"},
	}, out.ReferenceStringAttributes)
}

func TestDirectory_NotDeleted(t *testing.T) {
	out := transformer(t, "directory").Transform("AC1", map[string]any{
		"id":          "D-1",
		"lastUpdated": "2024-01-01",
		"deleted":     false,
		"name":        map[string]any{"fr": "Seulement"},
	})

	assert.Empty(t, out.DeletedAt)
	assert.Equal(t, "Seulement", out.Name)
}

func TestAgency(t *testing.T) {
	row := map[string]string{
		"Agency ID":        " AG-7 ",
		"Agency Name":      "Northern Outreach",
		"Last Modified":    "2023-11-05",
		"Description":      "",
		"Phone":            "555-0199",
		"Website":          " HTTPS://Example.org ",
		"Accepts Walk-ins": "Yes",
		"Capacity":         "1,250",
		"Opened":           "2001-04-01T09:00:00Z",
		"Province":         "Manitoba",
		"Language":         "French",
		"Notes":            "Seasonal",
		"Fax":              "",
	}

	out, diags := transformer(t, "agency").TransformWithDiagnostics("AC1", row)
	require.Zero(t, diags.Len(), diags.Error())

	assert.Equal(t, "AG-7", out.ID)
	assert.Equal(t, "Northern Outreach", out.Name)
	assert.Equal(t, "2023-11-05T00:00:00.000Z", out.LastUpdated)

	assert.Equal(t, []resource.StringAttribute{
		{Key: "name/en", Value: "Northern Outreach", Language: "en"},
		{Key: "phone", Value: "555-0199"},
		{Key: "website", Value: "https://example.org"},
		{Key: "extra/Notes", Value: "Seasonal"},
	}, out.StringAttributes)
	assert.Equal(t, []resource.BooleanAttribute{{Key: "acceptsWalkIns", Value: true}}, out.BooleanAttributes)
	assert.Equal(t, []resource.NumberAttribute{{Key: "capacity", Value: 1250}}, out.NumberAttributes)
	assert.Equal(t, []resource.DateTimeAttribute{{Key: "opened", Value: "2001-04-01T09:00:00.000Z"}}, out.DateTimeAttributes)
	assert.Equal(t, []resource.ReferenceAttribute{
		{Key: "province", Value: "CA/MB", List: "country/region"},
		{Key: "language", Value: "fr", List: "languages"},
	}, out.ReferenceStringAttributes)
}

func TestAgency_BadCells(t *testing.T) {
	out, diags := transformer(t, "agency").TransformWithDiagnostics("AC1", map[string]string{
		"Agency ID":        "AG-8",
		"Accepts Walk-ins": "sometimes",
		"Capacity":         "lots",
	})

	assert.Empty(t, out.BooleanAttributes)
	assert.Empty(t, out.NumberAttributes)
	assert.ElementsMatch(t, []string{"boolean_type_mismatch", "number_type_mismatch"}, diags.Codes())
	assert.Equal(t, "AG-8", diags.Warnings[0].Scope)
}
