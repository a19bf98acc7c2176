package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPostingHTML = `<!DOCTYPE html>
<html>
<head><title>Backend Engineer</title><script>var x = 1;</script></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
<h1>Backend Engineer</h1>
<p>We need 5+ years of experience with Go and PostgreSQL.</p>
<p>You will design and operate distributed services at meaningful scale.</p>
<p>Bonus: familiarity with Kubernetes deployments.</p>
</div>
<footer>Copyright 2025</footer>
</body>
</html>`

type extractedJob struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	MinExperience  int      `json:"min_experience"`
	MaxExperience  int      `json:"max_experience"`
	BonusSkills    []string `json:"bonus_skills"`
}

func TestExtractJobCommand_TextFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	jobPath := writeTestFile(t, tmpDir, "job.txt",
		"Backend Engineer\n\nWe need 5+ years of experience with Go and PostgreSQL.")
	outPath := filepath.Join(tmpDir, "job.json")

	cmd := exec.Command(binaryPath, "extract-job", "--text-file", jobPath, "--title", "Backend Engineer", "--out", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var job extractedJob
	require.NoError(t, json.Unmarshal(content, &job))
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, 5, job.MinExperience)
	assert.Equal(t, 7, job.MaxExperience)
	assert.Contains(t, job.RequiredSkills, "go")
	assert.Contains(t, job.RequiredSkills, "postgresql")
}

func TestExtractJobCommand_HTMLFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	htmlPath := writeTestFile(t, tmpDir, "posting.html", testPostingHTML)

	cmd := exec.Command(binaryPath, "extract-job", "--html-file", htmlPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	var job extractedJob
	require.NoError(t, json.Unmarshal(output, &job))
	assert.Contains(t, job.Description, "PostgreSQL")
	assert.NotContains(t, job.Description, "var x = 1")
	assert.Equal(t, 5, job.MinExperience)
	assert.Contains(t, job.RequiredSkills, "go")
	assert.Contains(t, job.BonusSkills, "kubernetes")
}

func TestExtractJobCommand_NoSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "one of --text-file, --html-file, or --url")
}

func TestExtractJobCommand_BothSources(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	jobPath := writeTestFile(t, tmpDir, "job.txt", "test")

	cmd := exec.Command(binaryPath, "extract-job", "--text-file", jobPath, "--url", "https://example.com")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestExtractJobCommand_FileNotFound(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-job", "--text-file", "/nonexistent/job.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "file not found")
}

func TestExtractJobCommand_InvalidURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-job", "--url", "not-a-url")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid URL")
}
