package llm

import (
	"testing"

	"github.com/nkuroda/purposesurvey/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderDefaultsToGemini(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.GeminiAPIKey = "test-key"

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "gemini", provider.Name())
}

func TestNewProviderGeminiRequiresKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "gemini"

	_, err := NewProvider(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewProviderAnthropic(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "anthropic"
	cfg.LLM.AnthropicAPIKey = "test-key"

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", provider.Name())
}

func TestNewProviderAnthropicRequiresKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "anthropic"

	_, err := NewProvider(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestNewProviderUnknown(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "openai"

	_, err := NewProvider(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}

func TestResolveDefaults(t *testing.T) {
	full, temp, tokens := resolve("hello", nil)
	assert.Equal(t, "hello", full)
	assert.Equal(t, 0.7, temp)
	assert.Equal(t, 4096, tokens)
}

func TestResolveOverridesAndSystemPrompt(t *testing.T) {
	full, temp, tokens := resolve("hello", &GenerateOptions{
		Temperature:  0.2,
		MaxTokens:    128,
		SystemPrompt: "You are terse.",
	})
	assert.Equal(t, "You are terse.\n\nhello", full)
	assert.Equal(t, 0.2, temp)
	assert.Equal(t, 128, tokens)
}
