package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearProviderEnv blanks every variable ConfigFromEnv reads, so tests
// are insulated from the developer's shell.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ATELIER_LLM_PROVIDER",
		"ATELIER_GEMINI_API_KEY", "GEMINI_API_KEY", "ATELIER_GEMINI_MODEL",
		"ATELIER_OPENAI_API_KEY", "OPENAI_API_KEY", "ATELIER_OPENAI_MODEL", "ATELIER_OPENAI_BASE_URL",
		"ATELIER_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY", "ATELIER_ANTHROPIC_MODEL",
		"ATELIER_NO_GROUNDING",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model)
	assert.True(t, cfg.Grounding)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestConfigFromEnvPrefixedKeyWins(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ATELIER_GEMINI_API_KEY", "prefixed")
	t.Setenv("GEMINI_API_KEY", "plain")

	cfg := ConfigFromEnv()
	assert.Equal(t, "prefixed", cfg.Gemini.APIKey)
}

func TestConfigFromEnvFallbackKeys(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "gk")
	t.Setenv("OPENAI_API_KEY", "ok")
	t.Setenv("ANTHROPIC_API_KEY", "ak")

	cfg := ConfigFromEnv()
	assert.Equal(t, "gk", cfg.Gemini.APIKey)
	assert.Equal(t, "ok", cfg.OpenAI.APIKey)
	assert.Equal(t, "ak", cfg.Anthropic.APIKey)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ATELIER_LLM_PROVIDER", "openai")
	t.Setenv("ATELIER_OPENAI_MODEL", "gpt-4o")
	t.Setenv("ATELIER_OPENAI_BASE_URL", "https://openrouter.ai/api/v1")
	t.Setenv("ATELIER_NO_GROUNDING", "1")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenAI.BaseURL)
	assert.False(t, cfg.Grounding)
}

func TestWithCredential(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.WithCredential("fresh-key")
	assert.Equal(t, "fresh-key", got.Gemini.APIKey)
	assert.Empty(t, cfg.Gemini.APIKey, "original config stays untouched")

	cfg.Provider = "anthropic"
	got = cfg.WithCredential("ak")
	assert.Equal(t, "ak", got.Anthropic.APIKey)
	assert.Empty(t, got.Gemini.APIKey)

	same := cfg.WithCredential("")
	assert.Equal(t, cfg, same)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()

	var missing *ErrMissingCredential
	err := cfg.Validate()
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "gemini", missing.Provider)

	cfg.Gemini.APIKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "llamafile"
	require.ErrorAs(t, cfg.Validate(), &missing)
	assert.Equal(t, "llamafile", missing.Provider)
}
