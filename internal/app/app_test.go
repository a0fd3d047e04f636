package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/devopsaudit/internal/output"
)

// execute runs the root command in dir with the given args and returns
// stdout and stderr.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		flagConfig, flagNoColor, flagVerbose, flagExplain = "", false, false, false
		output.SetNoColor(false)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_AuditsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))

	stdout, stderr, err := execute(t, dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "DEVOPS PROJECT ANALYZER")
	assert.Contains(t, stdout, "Documentation exists")
	assert.Contains(t, stdout, "HEALTH SCORE: 2/15")
	assert.Contains(t, stdout, "Analysis complete!")
	assert.NotContains(t, stdout, "\x1b[", "output to a buffer is never colored")
	assert.Empty(t, stderr)
}

func TestRootCmd_DoesNotModifyProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module demo\n"), 0o644))

	_, _, err := execute(t, dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "go.mod", entries[0].Name())
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "somewhere")
	require.Error(t, err)
}

func TestRootCmd_ConfigOverridesMaxScore(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "audit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scoring:\n  max_score: 20\n"), 0o644))

	stdout, _, err := execute(t, dir, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "HEALTH SCORE: 1/20")
}

func TestRootCmd_InvalidScoringConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "audit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scoring:\n  max_score: 99\n"), 0o644))

	_, _, err := execute(t, dir, "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scoring config")
}

func TestRootCmd_Explain(t *testing.T) {
	stdout, _, err := execute(t, t.TempDir(), "--explain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialize version control")
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, t.TempDir(), "--verbose")
	require.NoError(t, err)

	assert.Contains(t, stderr, "audit finished")
	assert.NotContains(t, stdout, "audit finished")
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Debug("hidden")
	newLogger(&buf, false).Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	newLogger(&buf, true).Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
