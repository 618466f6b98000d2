package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EDICT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Endpoint)
	assert.Equal(t, "llama3.2", cfg.LLM.Model)
	assert.False(t, cfg.HistoryDisabled)
	assert.Contains(t, cfg.HistoryPath, "history.db")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
llm:
  endpoint: http://gpu-box:11434
  model: qwen2.5
  max_attempts: 5
history:
  disabled: true
`)
	t.Setenv("EDICT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://gpu-box:11434", cfg.LLM.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.LLM.Model)
	assert.Equal(t, 5, cfg.LLM.MaxAttempts)
	assert.True(t, cfg.HistoryDisabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
llm:
  model: from-file
`)
	t.Setenv("EDICT_CONFIG", path)
	t.Setenv("EDICT_LLM_MODEL", "from-env")
	t.Setenv("EDICT_HISTORY", "/tmp/custom-history.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.Model)
	assert.Equal(t, "/tmp/custom-history.db", cfg.HistoryPath)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
llm:
  modle: typo
`)
	t.Setenv("EDICT_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestLoad_EmptyFileIsFine(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("EDICT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "llama3.2", cfg.LLM.Model)
}

func TestLoad_HistoryDisabledFromEnv(t *testing.T) {
	t.Setenv("EDICT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("EDICT_HISTORY_DISABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.HistoryDisabled)
}
