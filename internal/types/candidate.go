// Package types provides type definitions for structured data used throughout the ats-scorer system.
package types

// CandidateProfile represents the subset of resume data consumed by the scoring engine.
// Field names follow the JSON Resume convention used by resume builders, so a resume
// exported from one of them can be scored without reshaping.
type CandidateProfile struct {
	Skills    []SkillCategory  `json:"skills"`
	Work      []WorkExperience `json:"work"`
	Education []EducationEntry `json:"education"`
}

// SkillCategory groups free-text skill keywords under a category name
// (e.g., "Languages" -> ["Go", "Python"]).
type SkillCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// WorkExperience represents a single work entry. Dates are free-text strings
// and must be parsed defensively; an unparseable date contributes zero duration.
type WorkExperience struct {
	Company   string `json:"company,omitempty"`
	Position  string `json:"position,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Current   bool   `json:"current,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// EducationEntry represents a single education entry. Only presence matters
// for scoring; the remaining fields feed the semantic match text.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Area        string `json:"area,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// AllSkillKeywords flattens every skill keyword across all categories,
// preserving encounter order. Duplicates are kept; normalization happens later.
func (c *CandidateProfile) AllSkillKeywords() []string {
	var keywords []string
	for _, category := range c.Skills {
		keywords = append(keywords, category.Keywords...)
	}
	return keywords
}
