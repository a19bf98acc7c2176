// Package scoring combines hard-constraint, skill-match, and semantic-overlap
// sub-scores into a single ATS compatibility score with a gap analysis.
package scoring

import (
	"math"

	"github.com/jonathan/ats-scorer/internal/jobdesc"
	"github.com/jonathan/ats-scorer/internal/skills"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Weights for the three sub-scores.
const (
	hardConstraintsWeight = 0.40
	skillMatchWeight      = 0.35
	semanticMatchWeight   = 0.25
)

// maxGapEntries caps each gap-analysis bucket.
const maxGapEntries = 5

// Engine scores candidate profiles against job descriptions. It holds only
// read-only vocabulary state, so a single Engine is safe for concurrent use.
type Engine struct {
	dict   *skills.Dictionary
	mapper *skills.Mapper
}

// New creates an Engine over the given dictionary with the default fuzzy
// matcher.
func New(dict *skills.Dictionary) *Engine {
	return &Engine{
		dict:   dict,
		mapper: skills.NewMapper(dict),
	}
}

// NewWithMatcher creates an Engine with a caller-supplied fuzzy strategy.
func NewWithMatcher(dict *skills.Dictionary, matcher skills.Matcher) *Engine {
	return &Engine{
		dict:   dict,
		mapper: skills.NewMapperWithMatcher(dict, matcher),
	}
}

// Score computes the ATS compatibility report for one candidate against one
// job description. It is deterministic and pure: malformed input degrades to
// neutral contributions, never errors.
func (e *Engine) Score(candidate *types.CandidateProfile, jd *types.JobDescription) *types.ScoreResult {
	experienceRange := resolveExperienceRange(jd)

	hard, note := e.computeHardConstraints(candidate, experienceRange)
	skill, gaps, metadata := e.computeSkillMatch(candidate, jd)
	semantic := e.computeSemanticMatch(candidate, jd.Description)

	overall := hardConstraintsWeight*hard + skillMatchWeight*skill + semanticMatchWeight*semantic

	metadata.ExperienceNote = note

	return &types.ScoreResult{
		Overall: toPercent(overall),
		Breakdown: types.Breakdown{
			HardConstraints: toPercent(hard),
			SkillMatch:      toPercent(skill),
			SemanticMatch:   toPercent(semantic),
		},
		Gaps:     gaps,
		Metadata: metadata,
	}
}

// resolveExperienceRange prefers explicit min/max fields on the job
// description and falls back to regex extraction from the free text.
func resolveExperienceRange(jd *types.JobDescription) jobdesc.ExperienceRange {
	if jd.MinExperience > 0 || jd.MaxExperience > 0 {
		return jobdesc.ExperienceRange{Min: jd.MinExperience, Max: jd.MaxExperience}
	}
	return jobdesc.ExtractExperienceRange(jd.Description)
}

// toPercent clamps a 0-1 score and rounds it to an integer percentage.
func toPercent(score float64) int {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return int(math.Round(score * 100))
}
