package match

import (
	"cmp"
	"slices"
)

// DefaultMinSimilarity is the similarity below which a candidate is not worth
// suggesting.
const DefaultMinSimilarity = 0.5

// DefaultMaxSuggestions caps the number of names returned by Suggest.
const DefaultMaxSuggestions = 3

type scored struct {
	name  string
	score float64
}

// Suggest ranks candidates by normalized similarity to name and returns the
// best few above DefaultMinSimilarity. An exact normalized match wins alone.
func Suggest(name string, candidates []string) []string {
	target := NormalizeIdent(name)

	var ranked []scored

	for _, c := range candidates {
		norm := NormalizeIdent(c)
		if norm == target {
			return []string{c}
		}

		score := Similarity(target, norm)
		if score >= DefaultMinSimilarity {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	slices.SortStableFunc(ranked, func(x, y scored) int {
		if c := cmp.Compare(y.score, x.score); c != 0 {
			return c
		}

		return cmp.Compare(x.name, y.name)
	})

	out := make([]string, 0, min(len(ranked), DefaultMaxSuggestions))
	for i := 0; i < len(ranked) && i < DefaultMaxSuggestions; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}
