package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxScore, cfg.Scoring.MaxScore)
	assert.Equal(t, DefaultTiers, cfg.Scoring.Tiers)
	assert.True(t, cfg.Output.Color)
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "devopsaudit")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("output:\n  color: false\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, DefaultMaxScore, cfg.Scoring.MaxScore)
}

func TestLoad_ExplicitFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.yaml")
	content := `scoring:
  max_score: 20
  tiers:
    excellent: 0.9
    good: 0.7
    fair: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Scoring.MaxScore)
	assert.Equal(t, Tiers{Excellent: 0.9, Good: 0.7, Fair: 0.5}, cfg.Scoring.Tiers)
	assert.True(t, cfg.Output.Color, "unset keys keep their defaults")
}

func TestLoad_PartialTiers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  tiers:\n    fair: 0.3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Scoring.Tiers.Fair)
	assert.Equal(t, DefaultTiers.Good, cfg.Scoring.Tiers.Good)
	assert.Equal(t, DefaultTiers.Excellent, cfg.Scoring.Tiers.Excellent)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "x", "y.yaml"), expandPath("~/x/y.yaml"))
	assert.Equal(t, "/etc/devopsaudit.yaml", expandPath("/etc/devopsaudit.yaml"))
}
