package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"JOYSHIFT_LLM_API_KEY", "GEMINI_API_KEY", "API_KEY"} {
		t.Setenv(name, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.EffectiveModel())
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskReport))
	assert.False(t, cfg.HasCredential())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("JOYSHIFT_LLM_PROVIDER", " Ollama ")
	t.Setenv("JOYSHIFT_LLM_ENDPOINT", "http://gpu-box:11434")
	t.Setenv("JOYSHIFT_LLM_TIMEOUT_MS", "9000")
	t.Setenv("JOYSHIFT_LLM_REPORT_TIMEOUT_MS", "15000")
	t.Setenv("JOYSHIFT_LLM_MAX_RETRIES", "3")

	cfg := LoadConfig()

	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "llama3.2", cfg.EffectiveModel())
	assert.Equal(t, "http://gpu-box:11434", cfg.Endpoint)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskReport))
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.HasCredential())
}

func TestLoadConfig_APIKeyFallbacks(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("API_KEY", "generic")
	assert.Equal(t, "generic", LoadConfig().APIKey)

	t.Setenv("GEMINI_API_KEY", "gemini")
	assert.Equal(t, "gemini", LoadConfig().APIKey)

	t.Setenv("JOYSHIFT_LLM_API_KEY", "explicit")
	cfg := LoadConfig()
	assert.Equal(t, "explicit", cfg.APIKey)
	assert.True(t, cfg.HasCredential())
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("JOYSHIFT_LLM_REPORT_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 30000, cfg.TaskTimeout(TaskReport))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks = nil
	cfg.TimeoutMs = 1234
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskReport))
}
