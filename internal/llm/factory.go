package llm

import (
	"fmt"

	"writewise/internal/config"
)

// NewProvider creates a provider from config. A missing API key is not an
// error here; the provider reports ErrMissingAPIKey on first use.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil

	case "openai":
		baseURL := OpenAIBaseURL
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		return NewOpenAIProvider("openai", cfg.APIKey, baseURL, cfg.Model), nil

	case "openrouter":
		return NewOpenRouterProvider(cfg.APIKey, cfg.Model), nil

	case "custom":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("custom provider requires base_url")
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("custom provider requires model")
		}
		return NewOpenAIProvider("custom", cfg.APIKey, cfg.BaseURL, cfg.Model).AllowAnonymous(), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
