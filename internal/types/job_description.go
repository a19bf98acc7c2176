package types

// JobDescription represents the job posting input to the scoring engine.
// Every field is optional; the engine degrades gracefully when fields are
// missing (e.g., no experience bounds means no experience constraint).
type JobDescription struct {
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	MinExperience  int      `json:"min_experience,omitempty"`
	MaxExperience  int      `json:"max_experience,omitempty"`
}
