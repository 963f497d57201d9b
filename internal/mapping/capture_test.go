package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ctxWith(captures Captures) FieldMappingContext {
	return FieldMappingContext{Captures: captures}
}

func TestSubstituteCaptureTokens(t *testing.T) {
	tests := []struct {
		name     string
		template string
		captures Captures
		expected string
	}{
		{"single token", "a/{x}/b", Captures{"x": "1"}, "a/1/b"},
		{"unbound token left verbatim", "a/{y}", Captures{"x": "1"}, "a/{y}"},
		{"multiple distinct tokens", "{a}-{b}-{a}", Captures{"a": "1", "b": "2"}, "1-2-1"},
		{"partially bound", "{lang}/{site}", Captures{"lang": "en"}, "en/{site}"},
		{"no tokens", "plain", Captures{"x": "1"}, "plain"},
		{"empty braces untouched", "a/{}/b", Captures{"": "nope"}, "a/{}/b"},
		{"unterminated brace", "a/{x", Captures{"x": "1"}, "a/{x"},
		{"nested opening brace", "{{x}}", Captures{"x": "1"}, "{1}"},
		{"nil captures", "a/{x}", nil, "a/{x}"},
		{"value containing braces is not rescanned", "{x}", Captures{"x": "{x}"}, "{x}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubstituteCaptureTokens(tt.template, ctxWith(tt.captures)))
		})
	}
}

func TestCapturePattern(t *testing.T) {
	name, ok := CapturePattern("{language}")
	assert.True(t, ok)
	assert.Equal(t, "language", name)

	for _, key := range []string{"language", "{}", "{a}{b}", "x{a}", "{a", "a}"} {
		_, ok := CapturePattern(key)
		assert.False(t, ok, key)
	}
}

func TestCaptureTokens(t *testing.T) {
	assert.Equal(t, []string{"site", "language"}, CaptureTokens("sites/{site}/name/{language}"))
	assert.Empty(t, CaptureTokens("no/tokens"))
	assert.True(t, HasCaptureTokens("a/{b}"))
	assert.False(t, HasCaptureTokens("a/{}"))
}

func TestTemplate(t *testing.T) {
	ctx := ctxWith(Captures{"language": "fr"})

	assert.Equal(t, "static", Template("static")(ctx))
	assert.Equal(t, "description/fr", Template("description/{language}")(ctx))
	assert.Equal(t, "fr", Capture("language")(ctx))
	assert.Equal(t, "", Capture("missing")(ctx))
}
