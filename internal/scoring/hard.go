package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/ats-scorer/internal/jobdesc"
	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// overqualifiedScore applies when candidate experience exceeds the
	// requested maximum. Over-qualification is penalized slightly, not
	// rejected.
	overqualifiedScore = 0.9
	// noEducationFactor softly penalizes a profile with zero education
	// entries without disqualifying it.
	noEducationFactor = 0.8

	hoursPerYear = 24 * 365.25
)

// dateLayouts are the formats tried when parsing free-text resume dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006/01/02",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"Jan 2, 2006",
	"2006",
}

// computeHardConstraints scores the experience-years and education-presence
// checks. Returns the score in [0, 1] and an optional human-readable
// experience-mismatch note.
func (e *Engine) computeHardConstraints(candidate *types.CandidateProfile, rng jobdesc.ExperienceRange) (float64, string) {
	years := totalExperienceYears(candidate.Work)

	score := 1.0

	if rng.Min > 0 {
		switch {
		case years >= float64(rng.Min) && (rng.Max == 0 || years <= float64(rng.Max)):
			score = 1.0
		case rng.Max > 0 && years > float64(rng.Max):
			score = overqualifiedScore
		default:
			// Linear falloff as years fall short of the minimum.
			score = years / float64(rng.Min)
			if score < 0 {
				score = 0
			}
		}
	}

	note := ""
	switch {
	case rng.Max > 0 && years > float64(rng.Max):
		note = fmt.Sprintf("Candidate has %.1f years of experience, above the stated maximum of %d; may be perceived as overqualified/senior.", years, rng.Max)
	case rng.Min > 0 && years < float64(rng.Min):
		note = fmt.Sprintf("Candidate has %.1f years of experience, under the minimum requirement of %d.", years, rng.Min)
	}

	if len(candidate.Education) == 0 {
		score *= noEducationFactor
	}

	return score, note
}

// totalExperienceYears sums the elapsed time of all work entries. An entry
// marked current runs to now; unparseable dates contribute zero duration.
func totalExperienceYears(work []types.WorkExperience) float64 {
	total := 0.0
	now := time.Now()

	for _, entry := range work {
		start, ok := parseDate(entry.StartDate)
		if !ok {
			continue
		}

		end := now
		if !entry.Current {
			parsed, ok := parseDate(entry.EndDate)
			if !ok {
				continue
			}
			end = parsed
		}

		if end.Before(start) {
			continue
		}
		total += end.Sub(start).Hours() / hoursPerYear
	}

	return total
}

// parseDate tries each supported layout against a free-text date string.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
