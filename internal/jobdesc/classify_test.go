package jobdesc

import (
	"testing"

	"github.com/jonathan/ats-scorer/internal/skills"
	"github.com/stretchr/testify/assert"
)

func TestDetectSkills_CanonicalAndAliases(t *testing.T) {
	dict := skills.Default()

	detected := DetectSkills("Building services in Golang with PostgreSQL and Kubernetes", dict)

	assert.Contains(t, detected, "postgresql")
	assert.Contains(t, detected, "kubernetes")
	assert.Contains(t, detected, "go") // via the golang alias
}

func TestDetectSkills_Deduplicates(t *testing.T) {
	dict := skills.Default()

	// "kubernetes" matches the canonical entry and "k8s" the alias; both
	// resolve to a single detected skill.
	detected := DetectSkills("Kubernetes experience required. K8s operators a must.", dict)

	count := 0
	for _, skill := range detected {
		if skill == "kubernetes" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDetectSkills_EmptyText(t *testing.T) {
	assert.Empty(t, DetectSkills("", skills.Default()))
}

func TestClassifySkills_ExplicitListIsCritical(t *testing.T) {
	dict := skills.Default()

	split := ClassifySkills(
		"Experience with Kubernetes is preferred.",
		[]string{"React", "Node"},
		dict,
	)

	assert.Equal(t, []string{"react", "node"}, split.Critical)
	assert.Contains(t, split.Bonus, "kubernetes")
}

func TestClassifySkills_ExplicitSkillNotDoubledAsBonus(t *testing.T) {
	dict := skills.Default()

	split := ClassifySkills(
		"Must know python inside out.",
		[]string{"python"},
		dict,
	)

	assert.Equal(t, []string{"python"}, split.Critical)
	assert.NotContains(t, split.Bonus, "python")
}

func TestClassifySkills_TriggerPhraseMarksBonus(t *testing.T) {
	dict := skills.Default()

	text := "Strong PostgreSQL knowledge and years of schema design work are required for this role. Kubernetes is nice to have."
	split := ClassifySkills(text, nil, dict)

	assert.Contains(t, split.Critical, "postgresql")
	assert.Contains(t, split.Bonus, "kubernetes")
}

func TestClassifySkills_TriggerBeforeSkill(t *testing.T) {
	dict := skills.Default()

	text := "PostgreSQL expertise and production database tuning are mandatory for this position. Preferred: Terraform."
	split := ClassifySkills(text, nil, dict)

	assert.Contains(t, split.Critical, "postgresql")
	assert.Contains(t, split.Bonus, "terraform")
}

func TestClassifySkills_NoDetections(t *testing.T) {
	dict := skills.NewDictionary([]string{"cobol"}, nil, nil)

	split := ClassifySkills("We value kindness and punctuality.", nil, dict)

	assert.Empty(t, split.Critical)
	assert.Empty(t, split.Bonus)
}

func TestClassifySkills_FailSafeDefaultsToCritical(t *testing.T) {
	// A dictionary whose only detected skill carries no nearby trigger still
	// produces a critical bucket: ambiguity resolves toward stricter scoring.
	dict := skills.NewDictionary([]string{"fortran"}, nil, nil)

	split := ClassifySkills("Daily fortran maintenance on the mainframe.", nil, dict)

	assert.Equal(t, []string{"fortran"}, split.Critical)
	assert.Empty(t, split.Bonus)
}
