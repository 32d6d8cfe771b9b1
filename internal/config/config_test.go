package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-fit/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `{"api_key": "k", "port": 9090, "batch_concurrency": 2}`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 2, cfg.BatchConcurrency)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvPort, "7070")

	cfg := &Config{APIKey: "file-key", Port: 8080}
	cfg.ApplyEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 7070, cfg.Port)
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	bad := &Config{KeywordWeight: 0.5, FormatWeight: 0.3, SemanticWeight: 0.3}
	assert.Error(t, bad.Validate())

	good := &Config{KeywordWeight: 0.5, FormatWeight: 0.25, SemanticWeight: 0.25}
	assert.NoError(t, good.Validate())

	unset := &Config{}
	assert.NoError(t, unset.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

func TestEngineConfig_DefaultsWhenUnset(t *testing.T) {
	cfg := (&Config{}).EngineConfig()

	assert.Equal(t, scoring.DefaultWeights(), cfg.Weights)
}

func TestEngineConfig_CustomWeights(t *testing.T) {
	cfg := (&Config{KeywordWeight: 0.5, FormatWeight: 0.25, SemanticWeight: 0.25}).EngineConfig()

	assert.Equal(t, 0.5, cfg.Weights.FullKeywords)
	assert.Equal(t, 0.25, cfg.Weights.FullFormat)
	assert.Equal(t, 0.25, cfg.Weights.FullSemantic)
	// Quick weights keep their defaults.
	assert.Equal(t, 0.6, cfg.Weights.QuickKeywords)
}
