package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskReport TaskType = "report"
)

// Provider names accepted in configuration.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

const (
	defaultGeminiModel = "gemini-2.5-flash"
	defaultOllamaModel = "llama3.2"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   string
	Endpoint   string // ollama only
	Model      string // empty picks the provider default
	APIKey     string // gemini only
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults. The Gemini
// provider stays inert until an API key is supplied.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    true,
		LogCalls:   false,
		Provider:   ProviderGemini,
		Endpoint:   "http://localhost:11434",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskReport: {Temperature: 0.4, MaxTokens: 2048, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overlays JOYSHIFT_LLM_* variables onto cfg. The API key also
// falls back to GEMINI_API_KEY and API_KEY.
func ApplyEnv(cfg *LLMConfig) {
	if v := os.Getenv("JOYSHIFT_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("JOYSHIFT_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("JOYSHIFT_LLM_PROVIDER"); v != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("JOYSHIFT_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("JOYSHIFT_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	for _, name := range []string{"JOYSHIFT_LLM_API_KEY", "GEMINI_API_KEY", "API_KEY"} {
		if v := os.Getenv(name); v != "" {
			cfg.APIKey = v
			break
		}
	}
	if v := os.Getenv("JOYSHIFT_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("JOYSHIFT_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(cfg, TaskReport, "JOYSHIFT_LLM_REPORT_TIMEOUT_MS")
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// EffectiveModel returns Model or the provider's default.
func (c LLMConfig) EffectiveModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderOllama {
		return defaultOllamaModel
	}
	return defaultGeminiModel
}

// HasCredential reports whether the provider has what it needs to be
// called. A local Ollama server needs no key.
func (c LLMConfig) HasCredential() bool {
	if c.Provider == ProviderOllama {
		return true
	}
	return strings.TrimSpace(c.APIKey) != ""
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	if cfg.Tasks == nil {
		cfg.Tasks = map[TaskType]TaskConfig{}
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
