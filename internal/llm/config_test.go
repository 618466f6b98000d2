package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Contains(t, cfg.Tasks, TaskRules)
	assert.Contains(t, cfg.Tasks, TaskTasks)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("EDICT_LLM_ENDPOINT", "http://example:9999")
	t.Setenv("EDICT_LLM_MODEL", "qwen2.5")
	t.Setenv("EDICT_LLM_MAX_ATTEMPTS", "5")
	t.Setenv("EDICT_LLM_TASKS_TIMEOUT_MS", "1234")

	cfg := LoadConfig()
	assert.Equal(t, "http://example:9999", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskTasks))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 7000
	cfg.Tasks = map[TaskType]TaskConfig{}
	assert.Equal(t, 7000, cfg.TaskTimeout(TaskRules))
}
