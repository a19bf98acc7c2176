package types

// ScoreResult is the output of one scoring call. It is a pure value object:
// no identity, no mutation after creation.
type ScoreResult struct {
	Overall   int           `json:"overall"`
	Breakdown Breakdown     `json:"breakdown"`
	Gaps      GapAnalysis   `json:"gaps"`
	Metadata  ScoreMetadata `json:"metadata"`
}

// Breakdown holds the three weighted sub-scores, each an integer 0-100.
type Breakdown struct {
	HardConstraints int `json:"hard_constraints"`
	SkillMatch      int `json:"skill_match"`
	SemanticMatch   int `json:"semantic_match"`
}

// GapAnalysis lists job-description skills absent from the candidate's
// canonical skill set, capped at 5 per bucket, in encounter order.
type GapAnalysis struct {
	MissingCritical []string `json:"missing_critical"`
	MissingBonus    []string `json:"missing_bonus"`
}

// ScoreMetadata carries supporting detail for the report.
type ScoreMetadata struct {
	ExperienceNote string   `json:"experience_note,omitempty"`
	JDSkillCount   int      `json:"jd_skill_count"`
	MatchedSkills  []string `json:"matched_skills"`
}
