package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds case and strips separators so that "last_updated",
// "lastUpdated" and "Last-Updated" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
