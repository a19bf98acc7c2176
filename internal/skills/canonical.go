package skills

import "unicode/utf8"

const (
	// fuzzyDistanceThreshold is the maximum normalized edit distance accepted
	// when resolving a skill via fuzzy match.
	fuzzyDistanceThreshold = 0.3
	// minFuzzyLength excludes short acronyms from fuzzy matching; short
	// strings produce false-positive similarity matches.
	minFuzzyLength = 3
)

// Mapper resolves normalized skill strings to canonical form. Resolution
// precedence: exact canonical membership, alias lookup, fuzzy match, and
// finally passthrough of the original string so no skill is silently dropped.
type Mapper struct {
	dict    *Dictionary
	matcher Matcher
}

// NewMapper builds a Mapper over the dictionary using the default
// Levenshtein-based fuzzy matcher.
func NewMapper(dict *Dictionary) *Mapper {
	return &Mapper{
		dict:    dict,
		matcher: NewLevenshteinMatcher(dict.Canonical()),
	}
}

// NewMapperWithMatcher builds a Mapper with a caller-supplied fuzzy strategy.
func NewMapperWithMatcher(dict *Dictionary, matcher Matcher) *Mapper {
	return &Mapper{dict: dict, matcher: matcher}
}

// Map resolves a single raw skill string to its canonical form.
func (m *Mapper) Map(raw string) string {
	term := Normalize(raw)
	if term == "" {
		return ""
	}

	if m.dict.IsCanonical(term) {
		return term
	}

	if canon, ok := m.dict.CanonicalFor(term); ok {
		return canon
	}

	if utf8.RuneCountInString(term) >= minFuzzyLength {
		if match, distance, ok := m.matcher.FindNearest(term); ok && distance < fuzzyDistanceThreshold {
			return match
		}
	}

	return term
}

// MapSet resolves a list of raw skill strings into a canonical set,
// collapsing duplicates and preserving first-encounter order.
func (m *Mapper) MapSet(raw []string) ([]string, map[string]struct{}) {
	ordered := make([]string, 0, len(raw))
	set := make(map[string]struct{}, len(raw))

	for _, skill := range raw {
		canon := m.Map(skill)
		if canon == "" {
			continue
		}
		if _, seen := set[canon]; seen {
			continue
		}
		set[canon] = struct{}{}
		ordered = append(ordered, canon)
	}

	return ordered, set
}
