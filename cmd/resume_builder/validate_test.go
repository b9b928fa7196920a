package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.tex")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func setValidateFlags(t *testing.T, in, out string) {
	t.Helper()
	withGlobals(t, "", "", false)
	validateInput, validateOutput = in, out
	t.Cleanup(func() { validateInput, validateOutput = "", "" })
}

func TestRunValidate_ValidDocument(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "report.json")
	setValidateFlags(t, writeTex(t, "\\documentclass{article}\n\\begin{document}\nHi\n\\end{document}\n"), outputFile)

	require.NoError(t, runValidate(validateCmd, nil))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var report types.SyntaxReport
	require.NoError(t, json.Unmarshal(content, &report))
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Equal(t, "LaTeX syntax appears valid", report.Message)
}

func TestRunValidate_InvalidDocument(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "report.json")
	setValidateFlags(t, writeTex(t, "\\begin{document}\n\\textbf{open\n"), outputFile)

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation found 2 problem(s)")

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var report types.SyntaxReport
	require.NoError(t, json.Unmarshal(content, &report))
	assert.False(t, report.Valid)
	assert.Equal(t, []string{"1 unclosed opening brace(s) {", validation.MsgMissingDocumentEnd}, report.Errors)
}

func TestRunValidate_FileNotFound(t *testing.T) {
	setValidateFlags(t, "/nonexistent/file.tex", "")

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LaTeX file not found")
}

func TestValidateCommand_MissingInputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"in\" not set")
}
