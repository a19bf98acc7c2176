// Package jobdesc extracts structured requirements from unstructured job
// posting text using regex and keyword heuristics.
package jobdesc

import (
	"regexp"
	"strconv"
)

// ExperienceRange is the experience-years requirement extracted from a job
// description. A zero value means no constraint was found; the scorer treats
// that as an automatic pass on the experience axis.
type ExperienceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsZero reports whether no experience constraint was extracted.
func (r ExperienceRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

var (
	// "3 to 5 years", "3-5 years"
	rangeRegex = regexp.MustCompile(`(?i)(\d+)\s*(?:to|-|–)\s*(\d+)\+?\s*(?:years?|yrs?)`)
	// "5+ years", "5 plus years". The marker is mandatory: a bare
	// "N years" mention is not a requirement.
	plusRegex = regexp.MustCompile(`(?i)(\d+)\s*(?:\+|plus)\s*(?:years?|yrs?)`)
)

// ExtractExperienceRange pulls an experience-year range out of free text.
// A range pattern ("N to M years", "N-M years") wins over a plus pattern
// ("N+ years", interpreted as [N, N+2]). No match yields the zero range.
func ExtractExperienceRange(text string) ExperienceRange {
	if text == "" {
		return ExperienceRange{}
	}

	if m := rangeRegex.FindStringSubmatch(text); m != nil {
		minYears, errMin := strconv.Atoi(m[1])
		maxYears, errMax := strconv.Atoi(m[2])
		if errMin == nil && errMax == nil && minYears > 0 {
			if maxYears < minYears {
				maxYears = minYears
			}
			return ExperienceRange{Min: minYears, Max: maxYears}
		}
	}

	if m := plusRegex.FindStringSubmatch(text); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil && years > 0 {
			return ExperienceRange{Min: years, Max: years + 2}
		}
	}

	return ExperienceRange{}
}
