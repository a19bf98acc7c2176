package jobdesc

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/skills"
)

// bonusTriggers are phrases that mark a nearby skill as nice-to-have rather
// than required.
var bonusTriggers = []string{
	"bonus",
	"plus",
	"preferred",
	"nice to have",
	"desirable",
}

// bonusWindow is how far (in characters) a trigger phrase may sit from a
// detected skill, in either direction, to mark it as a bonus skill.
const bonusWindow = 50

// SkillSplit is the critical/bonus classification of job-description skills.
// Entries are normalized but not yet canonicalized.
type SkillSplit struct {
	Critical []string
	Bonus    []string
}

// DetectSkills scans the description text for known skill tokens: canonical
// names first, then alias keys. Detection is substring-based, so short tokens
// can false-positive inside unrelated words; that imprecision is accepted.
// Returns normalized skill names in detection order, deduplicated.
func DetectSkills(text string, dict *skills.Dictionary) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var detected []string
	seen := make(map[string]struct{})

	add := func(skill string) {
		if _, dup := seen[skill]; dup {
			return
		}
		seen[skill] = struct{}{}
		detected = append(detected, skill)
	}

	for _, canon := range dict.Canonical() {
		if strings.Contains(lower, canon) {
			add(canon)
		}
	}
	for _, alias := range dict.AliasKeys() {
		if strings.Contains(lower, alias) {
			if canon, ok := dict.CanonicalFor(alias); ok {
				add(canon)
			}
		}
	}

	return detected
}

// ClassifySkills splits job-description skills into critical and bonus.
//
// With an explicit required-skills list, every supplied skill is critical and
// any additional detected skill is bonus. Without one, a detected skill is
// bonus when it appears within bonusWindow characters of a trigger phrase,
// critical otherwise; if that heuristic yields nothing in either bucket but
// skills were detected, all detected skills default to critical.
func ClassifySkills(text string, explicit []string, dict *skills.Dictionary) SkillSplit {
	detected := DetectSkills(text, dict)

	if len(explicit) > 0 {
		normalized, explicitSet := skills.NormalizeSet(explicit)
		split := SkillSplit{Critical: normalized}
		for _, skill := range detected {
			if _, dup := explicitSet[skill]; !dup {
				split.Bonus = append(split.Bonus, skill)
			}
		}
		return split
	}

	if len(detected) == 0 {
		return SkillSplit{}
	}

	lower := strings.ToLower(text)
	var split SkillSplit
	for _, skill := range detected {
		if nearTrigger(lower, skill) {
			split.Bonus = append(split.Bonus, skill)
		} else {
			split.Critical = append(split.Critical, skill)
		}
	}

	// Fail-safe toward stricter scoring when the heuristic produced nothing.
	if len(split.Critical) == 0 && len(split.Bonus) == 0 {
		split.Critical = detected
	}

	return split
}

// nearTrigger reports whether any occurrence of skill sits within bonusWindow
// characters of a bonus trigger phrase, in either direction.
func nearTrigger(lowerText, skill string) bool {
	offset := 0
	for {
		idx := strings.Index(lowerText[offset:], skill)
		if idx < 0 {
			return false
		}
		pos := offset + idx

		windowStart := pos - bonusWindow
		if windowStart < 0 {
			windowStart = 0
		}
		windowEnd := pos + len(skill) + bonusWindow
		if windowEnd > len(lowerText) {
			windowEnd = len(lowerText)
		}

		window := lowerText[windowStart:windowEnd]
		for _, trigger := range bonusTriggers {
			if strings.Contains(window, trigger) {
				return true
			}
		}

		offset = pos + len(skill)
		if offset >= len(lowerText) {
			return false
		}
	}
}
