package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of conversion being performed.
type TaskType string

const (
	TaskRules TaskType = "rules"
	TaskTasks TaskType = "tasks"
)

// DefaultMaxAttempts bounds the validated-retry loop when the caller
// passes no explicit budget.
const DefaultMaxAttempts = 3

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the oracle subsystem.
type Config struct {
	LogCalls    bool
	Endpoint    string
	Model       string
	TimeoutMs   int
	MaxAttempts int
	Tasks       map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults for a local
// Ollama instance.
func DefaultConfig() Config {
	return Config{
		LogCalls:    false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   60000,
		MaxAttempts: DefaultMaxAttempts,
		Tasks: map[TaskType]TaskConfig{
			TaskRules: {Temperature: 0.1, MaxTokens: 2048, TimeoutMs: 60000},
			TaskTasks: {Temperature: 0.1, MaxTokens: 4096, TimeoutMs: 90000},
		},
	}
}

// ApplyEnv overlays EDICT_LLM_* environment variables onto cfg. Called
// after any config-file layer so the environment always wins.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("EDICT_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("EDICT_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("EDICT_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("EDICT_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("EDICT_LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}

	applyTaskTimeoutEnv(cfg, TaskRules, "EDICT_LLM_RULES_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskTasks, "EDICT_LLM_TASKS_TIMEOUT_MS")
}

// LoadConfig reads oracle configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
