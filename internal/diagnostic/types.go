package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"resource-mapper/internal/common"
)

// Diagnostics holds all diagnostic information from one compile or transform.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Scope names the provider, mapping file or resource id this relates to (if any).
	Scope string
	// Path is the slash-joined mapping or data path (if any).
	Path string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Codes reported while flattening a resource.
const (
	CodeStringTypeMismatch    = "string_type_mismatch"
	CodeNumberTypeMismatch    = "number_type_mismatch"
	CodeBooleanTypeMismatch   = "boolean_type_mismatch"
	CodeInvalidDateTime       = "invalid_datetime"
	CodeReferenceTypeMismatch = "reference_type_mismatch"
	CodeInfoNotObject         = "info_not_object"
	CodeMaxDepthExceeded      = "max_depth_exceeded"
)

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, scope, path string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, scope, path, suggestions))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, scope, path string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, scope, path, nil))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, scope, path string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, scope, path, nil))
}

func newDiagnostic(sev Severity, code, message, scope, path string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Scope:       scope,
		Path:        path,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Codes returns the codes of all diagnostics, errors first.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, d.Len())
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			codes = append(codes, diag.Code)
		}
	}

	return codes
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Scope != "" {
		prefix = append(prefix, "["+d.Scope+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(d.Suggestions), " or "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%q", v)
	}

	return out
}
