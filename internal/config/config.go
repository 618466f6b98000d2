// Package config layers edict's configuration: built-in defaults, an
// optional YAML file, then EDICT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nbarden/edict/internal/llm"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	LLM             llm.Config
	HistoryPath     string
	HistoryDisabled bool
}

// fileConfig mirrors the YAML config file. Decoding is strict: unknown
// fields are rejected so typos fail loudly instead of silently falling
// back to defaults.
type fileConfig struct {
	LLM struct {
		Endpoint    string `yaml:"endpoint"`
		Model       string `yaml:"model"`
		TimeoutMs   int    `yaml:"timeout_ms"`
		MaxAttempts int    `yaml:"max_attempts"`
		LogCalls    bool   `yaml:"log_calls"`
	} `yaml:"llm"`
	History struct {
		Disabled bool   `yaml:"disabled"`
		Path     string `yaml:"path"`
	} `yaml:"history"`
}

// Load resolves configuration from defaults, the config file, and the
// environment. A missing config file is not an error.
func Load() (Config, error) {
	cfg := Config{LLM: llm.DefaultConfig()}

	home, err := os.UserHomeDir()
	if err == nil {
		cfg.HistoryPath = filepath.Join(home, ".edict", "history.db")
	}

	path := os.Getenv("EDICT_CONFIG")
	if path == "" && home != "" {
		path = filepath.Join(home, ".edict", "config.yaml")
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	llm.ApplyEnv(&cfg.LLM)
	if v := os.Getenv("EDICT_HISTORY"); v != "" {
		cfg.HistoryPath = v
	}
	if v := os.Getenv("EDICT_HISTORY_DISABLED"); v != "" {
		cfg.HistoryDisabled, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if fc.LLM.Endpoint != "" {
		cfg.LLM.Endpoint = fc.LLM.Endpoint
	}
	if fc.LLM.Model != "" {
		cfg.LLM.Model = fc.LLM.Model
	}
	if fc.LLM.TimeoutMs > 0 {
		cfg.LLM.TimeoutMs = fc.LLM.TimeoutMs
	}
	if fc.LLM.MaxAttempts > 0 {
		cfg.LLM.MaxAttempts = fc.LLM.MaxAttempts
	}
	if fc.LLM.LogCalls {
		cfg.LLM.LogCalls = true
	}
	if fc.History.Path != "" {
		cfg.HistoryPath = fc.History.Path
	}
	if fc.History.Disabled {
		cfg.HistoryDisabled = true
	}
	return nil
}
