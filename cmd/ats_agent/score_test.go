package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResumeJSON = `{
	"skills": [{"name": "Technical", "keywords": ["Go", "PostgreSQL", "Docker"]}],
	"work": [{"company": "Acme", "position": "Engineer", "startDate": "2019-01-01", "endDate": "2023-01-01"}],
	"education": [{"institution": "State University", "area": "Computer Science"}]
}`

const testJobText = `Backend Engineer

We are looking for an engineer with 3-5 years of experience building
services in Go with PostgreSQL. Experience with Docker is a plus.`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScoreCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumePath := writeTestFile(t, tmpDir, "resume.json", testResumeJSON)
	jobPath := writeTestFile(t, tmpDir, "job.txt", testJobText)
	outPath := filepath.Join(tmpDir, "report.json")

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath, "--out", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal(content, &result))
	assert.GreaterOrEqual(t, result.Overall, 0)
	assert.LessOrEqual(t, result.Overall, 100)
	assert.NotZero(t, result.Breakdown.SkillMatch)
}

func TestScoreCommand_StdoutWhenNoOutFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumePath := writeTestFile(t, tmpDir, "resume.json", testResumeJSON)
	jobPath := writeTestFile(t, tmpDir, "job.txt", testJobText)

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal(output, &result))
}

func TestScoreCommand_MissingResumeFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score", "--job", "job.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestScoreCommand_NoJobSource(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumePath := writeTestFile(t, tmpDir, "resume.json", testResumeJSON)

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "one of --job, --job-html, or --job-url")
}

func TestScoreCommand_MultipleJobSources(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumePath := writeTestFile(t, tmpDir, "resume.json", testResumeJSON)
	jobPath := writeTestFile(t, tmpDir, "job.txt", testJobText)

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath, "--job-url", "https://example.com")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestScoreCommand_ResumeNotFound(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	jobPath := writeTestFile(t, tmpDir, "job.txt", testJobText)

	cmd := exec.Command(binaryPath, "score", "--resume", "/nonexistent/resume.json", "--job", jobPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "resume file not found")
}

func TestScoreCommand_InvalidResumeSchema(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumePath := writeTestFile(t, tmpDir, "resume.json", `{"skills": "not-an-array"}`)
	jobPath := writeTestFile(t, tmpDir, "job.txt", testJobText)

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "schema")
}

func TestScoreCommand_InvalidJobURL(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumePath := writeTestFile(t, tmpDir, "resume.json", testResumeJSON)

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job-url", "not-a-url")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid URL")
}

func TestScoreCommand_ExplicitRequirements(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	resumePath := writeTestFile(t, tmpDir, "resume.json", testResumeJSON)
	jobPath := writeTestFile(t, tmpDir, "job.txt", "An unstructured posting with no detectable requirements.")

	cmd := exec.Command(binaryPath, "score",
		"--resume", resumePath,
		"--job", jobPath,
		"--required-skills", "go,postgresql",
		"--min-years", "3", "--max-years", "5")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal(output, &result))
	assert.Equal(t, 100, result.Breakdown.SkillMatch)
	assert.Equal(t, 100, result.Breakdown.HardConstraints)
}
