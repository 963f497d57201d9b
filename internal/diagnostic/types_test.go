package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrorAggregation(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning(CodeInfoNotObject, "info is not an object", "", "a/b")
	assert.True(t, d.IsValid())

	d.AddError("unknown_transform", `unknown transform "trm"`, "directory", "name", "trim")
	d.AddError("missing_list", "reference mapping requires a list", "directory", "coverage")

	assert.True(t, d.HasErrors())
	assert.Equal(t, 3, d.Len())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[directory] name: [unknown_transform] unknown transform "trm" (did you mean "trim"?); `+
			`[directory] coverage: [missing_list] reference mapping requires a list`,
		err.Error())
}

func TestDiagnostics_MergeAndCodes(t *testing.T) {
	a := &Diagnostics{}
	a.AddInfo(CodeReferenceTypeMismatch, "not a string", "", "x")

	b := Diagnostics{}
	b.AddError("e", "boom", "", "")
	b.AddWarning(CodeStringTypeMismatch, "not a string", "", "y")

	a.Merge(b)

	assert.Equal(t, []string{"e", CodeStringTypeMismatch, CodeReferenceTypeMismatch}, a.Codes())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestDiagnostic_StringWithoutPrefix(t *testing.T) {
	d := Diagnostic{Message: "plain"}
	assert.Equal(t, "plain", d.String())
}
