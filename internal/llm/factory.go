package llm

import (
	"fmt"

	"github.com/nkuroda/purposesurvey/config"
	"github.com/rs/zerolog/log"
)

// NewProvider selects the vendor gateway from configuration. The flag is
// read once at startup and never re-selected mid-process; construction fails
// when the selected vendor's credential is absent.
func NewProvider(cfg *config.Config) (Provider, error) {
	providerType := cfg.LLM.Provider
	if providerType == "" {
		providerType = "gemini"
	}

	log.Info().Str("provider", providerType).Msg("Selecting LLM provider")

	switch providerType {
	case "gemini":
		if cfg.LLM.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set in environment variables")
		}
		return NewGemini(cfg.LLM.GeminiAPIKey)
	case "anthropic":
		if cfg.LLM.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set in environment variables")
		}
		return NewAnthropic(cfg.LLM.AnthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (supported providers: gemini, anthropic)", providerType)
	}
}
