package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "batch")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestBatchCommand_EmptyJobsFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath := writeTempFile(t, "resume.txt", "Python developer with SQL experience.")
	jobsPath := writeTempFile(t, "jobs.json", "[]")

	cmd := exec.Command(binaryPath, "batch", "--resume", resumePath, "--jobs", jobsPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no postings")
}

func TestBatchCommand_RanksPostings(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath := writeTempFile(t, "resume.txt",
		"Developed Python services with SQL and Docker. Led a team. Increased uptime by 20%.")
	jobsPath := writeTempFile(t, "jobs.json", `[
		{"title": "Backend Engineer", "company": "Acme", "description": "Python and SQL required"},
		{"title": "Designer", "company": "Beta", "description": "Figma required"}
	]`)

	cmd := exec.Command(binaryPath, "batch", "--resume", resumePath, "--jobs", jobsPath)
	cmd.Env = append(os.Environ(), "GEMINI_API_KEY=")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Backend Engineer")
	assert.Contains(t, string(output), "Designer")
}
