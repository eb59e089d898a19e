package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"github.com/alexanderramin/joyshift/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears every variable Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{
		"JOYSHIFT_CONFIG", "JOYSHIFT_STORE", "JOYSHIFT_DB", "JOYSHIFT_LOG_LEVEL",
		"JOYSHIFT_LOG_FILE", "JOYSHIFT_THEME", "JOYSHIFT_LLM_PROVIDER", "JOYSHIFT_LLM_MODEL",
		"JOYSHIFT_LLM_API_KEY", "GEMINI_API_KEY", "API_KEY", "JOYSHIFT_LLM_REPORT_TIMEOUT_MS",
	} {
		t.Setenv(name, "")
	}
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("JOYSHIFT_CONFIG", path)
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".joyshift"), cfg.DataDir)
	assert.Equal(t, kvstore.KindSQLite, cfg.Store.Kind)
	assert.Equal(t, filepath.Join(home, ".joyshift", "joyshift.db"), cfg.Store.Path)
	assert.Equal(t, filepath.Join(home, ".joyshift", "joyshift.log"), cfg.Logging.File)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, domain.ThemeLight, cfg.Theme)
	assert.Empty(t, cfg.Source)
}

func TestLoad_YAMLFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
data_dir: /srv/joyshift
store:
  kind: FILE
logging:
  level: debug
  file: stderr
theme: dark
llm:
  provider: ollama
  model: qwen2.5
  report_timeout_ms: 45000
  max_retries: 0
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, kvstore.KindFile, cfg.Store.Kind)
	assert.Equal(t, filepath.Join("/srv/joyshift", "joyshift.json"), cfg.Store.Path)
	assert.Equal(t, "stderr", cfg.Logging.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, domain.ThemeDark, cfg.Theme)

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderOllama, llmCfg.Provider)
	assert.Equal(t, "qwen2.5", llmCfg.EffectiveModel())
	assert.Equal(t, 45000, llmCfg.TaskTimeout(llm.TaskReport))
	assert.Equal(t, 0, llmCfg.MaxRetries)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	writeConfig(t, "store:\n  kind: file\n  path: /tmp/from-file.json\ntheme: dark\n")
	t.Setenv("JOYSHIFT_STORE", "sqlite")
	t.Setenv("JOYSHIFT_DB", "/tmp/from-env.db")
	t.Setenv("JOYSHIFT_THEME", "light")
	t.Setenv("JOYSHIFT_LOG_LEVEL", "warn")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, kvstore.KindSQLite, cfg.Store.Kind)
	assert.Equal(t, "/tmp/from-env.db", cfg.Store.Path)
	assert.Equal(t, domain.ThemeLight, cfg.Theme)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.LLMConfig().HasCredential())
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := isolate(t)
	writeConfig(t, "store:\n  path: ~/shifts/ledger.db\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "shifts", "ledger.db"), cfg.Store.Path)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	writeConfig(t, "store: [unterminated")

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}
