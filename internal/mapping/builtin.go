package mapping

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

var builtinTransforms = map[string]TransformFunc{
	"trim":       stringTransform(strings.TrimSpace),
	"lower":      stringTransform(strings.ToLower),
	"upper":      stringTransform(strings.ToUpper),
	"nonEmpty":   nonEmpty,
	"toNumber":   toNumber,
	"toBoolean":  toBoolean,
	"isoDate":    isoDate,
	"splitFirst": splitFirst,
}

// stringTransform lifts a string function; non-strings pass through untouched
// so the assembler can report the type mismatch.
func stringTransform(fn func(string) string) TransformFunc {
	return func(_ FieldMappingContext, in any) any {
		s, ok := in.(string)
		if !ok {
			return in
		}

		return fn(s)
	}
}

func nonEmpty(_ FieldMappingContext, in any) any {
	if s, ok := in.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}

	return in
}

func toNumber(_ FieldMappingContext, in any) any {
	switch v := in.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}

		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil {
			return in
		}

		return f
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return in
		}

		return f
	default:
		return in
	}
}

func toBoolean(_ FieldMappingContext, in any) any {
	s, ok := in.(string)
	if !ok {
		return in
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	case "false", "no", "n", "0":
		return false
	case "":
		return nil
	default:
		return in
	}
}

func isoDate(_ FieldMappingContext, in any) any {
	switch v := in.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}

		t, ok := ParseInstant(v)
		if !ok {
			return in
		}

		return FormatInstant(t)
	case time.Time:
		return FormatInstant(v)
	default:
		return in
	}
}

func splitFirst(_ FieldMappingContext, in any) any {
	s, ok := in.(string)
	if !ok {
		return in
	}

	first, _, _ := strings.Cut(strings.ReplaceAll(s, ";", ","), ",")
	if first = strings.TrimSpace(first); first == "" {
		return nil
	}

	return first
}
