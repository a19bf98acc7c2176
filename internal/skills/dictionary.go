// Package skills provides the canonical skill vocabulary and the machinery
// to resolve noisy free-text skill names to canonical form.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Dictionary holds the canonical skill list, the alias-to-canonical map, and
// the stop-word set. It is built once at startup and is read-only afterwards,
// so it may be shared across concurrent scoring calls without locking.
type Dictionary struct {
	canonical []string
	canonSet  map[string]struct{}
	aliases   map[string]string
	stopWords map[string]struct{}
}

// dictionaryFile is the JSON shape accepted by Load for overriding the
// built-in vocabulary.
type dictionaryFile struct {
	Canonical []string          `json:"canonical"`
	Aliases   map[string]string `json:"aliases"`
	StopWords []string          `json:"stop_words"`
}

// NewDictionary builds a Dictionary from explicit data. All entries are
// lowercased and trimmed so lookups are case-insensitive.
func NewDictionary(canonical []string, aliases map[string]string, stopWords []string) *Dictionary {
	d := &Dictionary{
		canonical: make([]string, 0, len(canonical)),
		canonSet:  make(map[string]struct{}, len(canonical)),
		aliases:   make(map[string]string, len(aliases)),
		stopWords: make(map[string]struct{}, len(stopWords)),
	}

	for _, skill := range canonical {
		normalized := Normalize(skill)
		if normalized == "" {
			continue
		}
		if _, seen := d.canonSet[normalized]; seen {
			continue
		}
		d.canonical = append(d.canonical, normalized)
		d.canonSet[normalized] = struct{}{}
	}

	for alias, canon := range aliases {
		normalizedAlias := Normalize(alias)
		normalizedCanon := Normalize(canon)
		if normalizedAlias == "" || normalizedCanon == "" {
			continue
		}
		d.aliases[normalizedAlias] = normalizedCanon
	}

	for _, word := range stopWords {
		normalized := Normalize(word)
		if normalized != "" {
			d.stopWords[normalized] = struct{}{}
		}
	}

	return d
}

// Default returns the built-in skill vocabulary.
func Default() *Dictionary {
	return NewDictionary(defaultCanonical, defaultAliases, defaultStopWords)
}

// Load reads a dictionary override from a JSON file. Missing sections fall
// back to the built-in defaults, so a file may override only the aliases.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	var file dictionaryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary JSON: %w", err)
	}

	canonical := file.Canonical
	if len(canonical) == 0 {
		canonical = defaultCanonical
	}
	aliases := file.Aliases
	if len(aliases) == 0 {
		aliases = defaultAliases
	}
	stopWords := file.StopWords
	if len(stopWords) == 0 {
		stopWords = defaultStopWords
	}

	return NewDictionary(canonical, aliases, stopWords), nil
}

// Canonical returns the canonical skill list in stable order.
func (d *Dictionary) Canonical() []string {
	out := make([]string, len(d.canonical))
	copy(out, d.canonical)
	return out
}

// IsCanonical reports whether the normalized term is already canonical.
func (d *Dictionary) IsCanonical(term string) bool {
	_, ok := d.canonSet[term]
	return ok
}

// CanonicalFor returns the canonical form for an alias, if registered.
func (d *Dictionary) CanonicalFor(alias string) (string, bool) {
	canon, ok := d.aliases[alias]
	return canon, ok
}

// AliasKeys returns the registered alias keys in sorted order.
// Sorting keeps substring detection over aliases deterministic.
func (d *Dictionary) AliasKeys() []string {
	keys := make([]string, 0, len(d.aliases))
	for alias := range d.aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)
	return keys
}

// IsStopWord reports whether the normalized word is a stop-word.
func (d *Dictionary) IsStopWord(word string) bool {
	_, ok := d.stopWords[strings.ToLower(word)]
	return ok
}

// Size returns the number of canonical skills and registered aliases.
func (d *Dictionary) Size() (canonical int, aliases int) {
	return len(d.canonical), len(d.aliases)
}
