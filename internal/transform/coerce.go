package transform

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"strconv"
	"time"

	"resource-mapper/internal/mapping"
)

// toNumber accepts Go numeric types and json.Number. Strings are not parsed;
// mappings that need that use the toNumber transform.
func toNumber(v any) (float64, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}

		f = parsed
	default:
		return 0, false
	}

	// NaN and infinities cannot be stored or serialized.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func toInstant(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		parsed, ok := mapping.ParseInstant(t)
		if !ok {
			return "", false
		}

		return mapping.FormatInstant(parsed), true
	case time.Time:
		if t.IsZero() {
			return "", false
		}

		return mapping.FormatInstant(t), true
	default:
		return "", false
	}
}

// scalarString renders a resource field value.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case time.Time:
		return mapping.FormatInstant(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// cloneObject deep-copies the JSON-like containers of an info object so rows
// never share state with the mapping or the input resource.
func cloneObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return cloneObject(x)
	case map[string]string:
		return maps.Clone(x)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return v
	}
}
