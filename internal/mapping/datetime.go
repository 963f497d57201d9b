package mapping

import (
	"strings"
	"time"
)

// InstantLayout is the canonical serialization of dateTime attribute values.
const InstantLayout = "2006-01-02T15:04:05.000Z"

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInstant parses an ISO-8601 date or date-time. Values without an offset
// are taken as UTC.
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatInstant renders t in InstantLayout, in UTC.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}
