package scoring

import (
	"github.com/jonathan/ats-scorer/internal/jobdesc"
	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	criticalShare = 0.8
	bonusShare    = 0.2
	// majorityMissPenalty halves the skill score when fewer than half of the
	// critical skills are matched.
	majorityMissPenalty = 0.5
)

// computeSkillMatch canonicalizes both sides and scores the overlap.
// Returns the score in [0, 1], the gap analysis, and the skill metadata.
func (e *Engine) computeSkillMatch(candidate *types.CandidateProfile, jd *types.JobDescription) (float64, types.GapAnalysis, types.ScoreMetadata) {
	split := jobdesc.ClassifySkills(jd.Description, jd.RequiredSkills, e.dict)

	critical, _ := e.mapper.MapSet(split.Critical)
	bonus, bonusSet := e.mapper.MapSet(split.Bonus)

	// A skill listed as critical never doubles as a bonus skill.
	bonus = subtract(bonus, critical)
	for _, skill := range critical {
		delete(bonusSet, skill)
	}

	_, candidateSet := e.mapper.MapSet(candidate.AllSkillKeywords())

	var matched []string
	matchedCritical := 0
	for _, skill := range critical {
		if _, ok := candidateSet[skill]; ok {
			matchedCritical++
			matched = append(matched, skill)
		}
	}
	matchedBonus := 0
	for _, skill := range bonus {
		if _, ok := candidateSet[skill]; ok {
			matchedBonus++
			matched = append(matched, skill)
		}
	}

	score := 1.0
	if len(critical) > 0 {
		criticalRatio := float64(matchedCritical) / float64(len(critical))
		if len(bonus) == 0 {
			score = criticalRatio
		} else {
			bonusRatio := float64(matchedBonus) / float64(len(bonus))
			score = criticalShare*criticalRatio + bonusShare*bonusRatio
		}
		if float64(matchedCritical) < float64(len(critical))/2 {
			score *= majorityMissPenalty
		}
	}

	gaps := types.GapAnalysis{
		MissingCritical: missingFrom(critical, candidateSet),
		MissingBonus:    missingFrom(bonus, candidateSet),
	}

	metadata := types.ScoreMetadata{
		JDSkillCount:  len(critical) + len(bonus),
		MatchedSkills: matched,
	}

	return score, gaps, metadata
}

// missingFrom collects entries of wanted absent from have, in encounter
// order, capped at maxGapEntries.
func missingFrom(wanted []string, have map[string]struct{}) []string {
	var missing []string
	for _, skill := range wanted {
		if _, ok := have[skill]; ok {
			continue
		}
		missing = append(missing, skill)
		if len(missing) == maxGapEntries {
			break
		}
	}
	return missing
}

// subtract returns entries of a not present in b, preserving order.
func subtract(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, s := range b {
		exclude[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := exclude[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
