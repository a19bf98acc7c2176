package skills

import "strings"

// Normalize lowercases and trims a skill string for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSet normalizes a list of skill strings into a set, collapsing
// duplicates. Empty input yields an empty set. Encounter order of the first
// occurrence is preserved in the returned slice.
func NormalizeSet(skills []string) ([]string, map[string]struct{}) {
	ordered := make([]string, 0, len(skills))
	set := make(map[string]struct{}, len(skills))

	for _, skill := range skills {
		normalized := Normalize(skill)
		if normalized == "" {
			continue
		}
		if _, seen := set[normalized]; seen {
			continue
		}
		set[normalized] = struct{}{}
		ordered = append(ordered, normalized)
	}

	return ordered, set
}
