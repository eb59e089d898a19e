// Package config resolves JoyShift settings from defaults, an optional
// YAML file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"github.com/alexanderramin/joyshift/internal/llm"
	"gopkg.in/yaml.v3"
)

// Config is the resolved application configuration.
type Config struct {
	DataDir string        `yaml:"data_dir"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
	Theme   string        `yaml:"theme"` // initial theme before one is saved
	LLM     LLMSection    `yaml:"llm"`

	// Path of the YAML file that was read, empty when none existed.
	Source string `yaml:"-"`
}

type StoreConfig struct {
	Kind string `yaml:"kind"` // sqlite or file
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // "stderr" logs to the terminal
}

// LLMSection mirrors the file-settable subset of llm.LLMConfig. The API key
// is read from the environment only.
type LLMSection struct {
	Enabled         *bool  `yaml:"enabled"`
	LogCalls        *bool  `yaml:"log_calls"`
	Provider        string `yaml:"provider"`
	Endpoint        string `yaml:"endpoint"`
	Model           string `yaml:"model"`
	TimeoutMs       int    `yaml:"timeout_ms"`
	ReportTimeoutMs int    `yaml:"report_timeout_ms"`
	MaxRetries      *int   `yaml:"max_retries"`
}

// Default returns the configuration used when nothing is set. Empty file
// paths are derived from DataDir once all sources are merged.
func Default(home string) *Config {
	dataDir := filepath.Join(home, ".joyshift")
	return &Config{
		DataDir: dataDir,
		Store:   StoreConfig{Kind: kvstore.KindSQLite},
		Logging: LoggingConfig{Level: "info"},
		Theme:   domain.ThemeLight,
	}
}

// Load resolves configuration. The file is JOYSHIFT_CONFIG when set,
// otherwise ~/.joyshift/config.yaml; a missing file is not an error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	path := os.Getenv("JOYSHIFT_CONFIG")
	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.Source = path
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("JOYSHIFT_STORE"); v != "" {
		c.Store.Kind = v
	}
	if v := os.Getenv("JOYSHIFT_DB"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("JOYSHIFT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("JOYSHIFT_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("JOYSHIFT_THEME"); v != "" {
		c.Theme = v
	}
}

func (c *Config) normalize() {
	c.DataDir = expandHome(c.DataDir)
	c.Store.Kind = strings.ToLower(strings.TrimSpace(c.Store.Kind))
	if c.Store.Kind == "" {
		c.Store.Kind = kvstore.KindSQLite
	}
	if c.Store.Path == "" {
		name := "joyshift.db"
		if c.Store.Kind == kvstore.KindFile {
			name = "joyshift.json"
		}
		c.Store.Path = filepath.Join(c.DataDir, name)
	}
	c.Store.Path = expandHome(c.Store.Path)
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(c.DataDir, "joyshift.log")
	}
	if c.Logging.File != "stderr" {
		c.Logging.File = expandHome(c.Logging.File)
	}
	c.Theme = domain.NormalizeTheme(c.Theme)
}

// LLMConfig builds the llm settings: defaults, then the file section,
// then JOYSHIFT_LLM_* and API key variables.
func (c *Config) LLMConfig() llm.LLMConfig {
	cfg := llm.DefaultConfig()
	s := c.LLM
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.LogCalls != nil {
		cfg.LogCalls = *s.LogCalls
	}
	if s.Provider != "" {
		cfg.Provider = strings.ToLower(s.Provider)
	}
	if s.Endpoint != "" {
		cfg.Endpoint = s.Endpoint
	}
	if s.Model != "" {
		cfg.Model = s.Model
	}
	if s.TimeoutMs > 0 {
		cfg.TimeoutMs = s.TimeoutMs
	}
	if s.MaxRetries != nil && *s.MaxRetries >= 0 {
		cfg.MaxRetries = *s.MaxRetries
	}
	if s.ReportTimeoutMs > 0 {
		tc := cfg.Tasks[llm.TaskReport]
		tc.TimeoutMs = s.ReportTimeoutMs
		cfg.Tasks[llm.TaskReport] = tc
	}
	llm.ApplyEnv(&cfg)
	return cfg
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
