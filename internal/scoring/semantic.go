package scoring

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/ats-scorer/internal/types"
)

// minTokenLength excludes short tokens from the semantic bag-of-words.
const minTokenLength = 3

// computeSemanticMatch is a bag-of-words overlap heuristic: the fraction of
// distinct job-description tokens that appear anywhere in the serialized
// candidate profile. An empty description is a vacuous pass.
func (e *Engine) computeSemanticMatch(candidate *types.CandidateProfile, description string) float64 {
	tokens := e.tokenize(description)
	if len(tokens) == 0 {
		return 1.0
	}

	profileText := serializeProfile(candidate)

	matched := 0
	for _, token := range tokens {
		if strings.Contains(profileText, token) {
			matched++
		}
	}

	return float64(matched) / float64(len(tokens))
}

// tokenize splits text into lowercase words, drops tokens shorter than
// minTokenLength and stop-words, and deduplicates.
func (e *Engine) tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var tokens []string
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if utf8.RuneCountInString(word) < minTokenLength {
			continue
		}
		if e.dict.IsStopWord(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		tokens = append(tokens, word)
	}

	return tokens
}

// serializeProfile flattens the full candidate profile into one lowercase
// string for substring matching. JSON marshaling of a plain struct cannot
// fail, so the error is ignored.
func serializeProfile(candidate *types.CandidateProfile) string {
	data, _ := json.Marshal(candidate)
	return strings.ToLower(string(data))
}
