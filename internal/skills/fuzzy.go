package skills

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Matcher finds the nearest canonical skill for a term. Distance is on a
// 0.0 (exact) to 1.0 (unrelated) scale. Implementations must be safe for
// concurrent use after construction.
type Matcher interface {
	FindNearest(term string) (match string, distance float64, ok bool)
}

// levenshteinMatcher implements Matcher with edit distance normalized by the
// longer string's length.
type levenshteinMatcher struct {
	candidates []string
}

// NewLevenshteinMatcher builds a Matcher over the given candidate list.
// The list is copied, so the matcher is immutable after construction.
func NewLevenshteinMatcher(candidates []string) Matcher {
	copied := make([]string, len(candidates))
	copy(copied, candidates)
	return &levenshteinMatcher{candidates: copied}
}

// FindNearest returns the candidate with the smallest normalized edit
// distance to term. ok is false only when the candidate list is empty.
func (m *levenshteinMatcher) FindNearest(term string) (string, float64, bool) {
	if len(m.candidates) == 0 {
		return "", 0, false
	}

	best := ""
	bestDistance := 2.0
	for _, candidate := range m.candidates {
		d := normalizedDistance(term, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return best, bestDistance, true
}

// normalizedDistance maps Levenshtein edit distance into [0, 1] by dividing
// by the length of the longer string.
func normalizedDistance(a, b string) float64 {
	if a == b {
		return 0
	}

	longer := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longer {
		longer = n
	}
	if longer == 0 {
		return 0
	}

	edits := levenshtein.ComputeDistance(a, b)
	return float64(edits) / float64(longer)
}
