package mapping

import "strings"

// CapturePattern reports whether key is a whole-key capture pattern such as
// "{language}" and returns the token name.
func CapturePattern(key string) (string, bool) {
	if len(key) < 3 || key[0] != '{' || key[len(key)-1] != '}' {
		return "", false
	}

	name := key[1 : len(key)-1]
	if strings.ContainsAny(name, "{}") {
		return "", false
	}

	return name, true
}

// HasCaptureTokens reports whether s contains at least one {token}.
func HasCaptureTokens(s string) bool {
	_, _, ok := nextToken(s)
	return ok
}

// CaptureTokens returns the token names in s in order of appearance.
func CaptureTokens(s string) []string {
	var names []string

	for {
		start, end, ok := nextToken(s)
		if !ok {
			return names
		}

		names = append(names, s[start+1:end])
		s = s[end+1:]
	}
}

// SubstituteCaptureTokens replaces every {name} in template with the value
// bound to name in ctx.Captures. Tokens with no binding are left as written.
func SubstituteCaptureTokens(template string, ctx FieldMappingContext) string {
	if !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder

	b.Grow(len(template))

	rest := template
	for {
		start, end, ok := nextToken(rest)
		if !ok {
			b.WriteString(rest)
			return b.String()
		}

		b.WriteString(rest[:start])

		if v, bound := ctx.Captures.Lookup(rest[start+1 : end]); bound {
			b.WriteString(v)
		} else {
			b.WriteString(rest[start : end+1])
		}

		rest = rest[end+1:]
	}
}

// nextToken finds the first {name} with a non-empty name and no nested brace.
func nextToken(s string) (start, end int, ok bool) {
	offset := 0

	for {
		open := strings.IndexByte(s[offset:], '{')
		if open < 0 {
			return 0, 0, false
		}

		open += offset

		closeRel := strings.IndexAny(s[open+1:], "{}")
		if closeRel < 0 {
			return 0, 0, false
		}

		closeIdx := open + 1 + closeRel
		if s[closeIdx] == '{' || closeIdx == open+1 {
			offset = closeIdx
			if s[closeIdx] == '}' {
				offset++
			}

			continue
		}

		return open, closeIdx, true
	}
}
