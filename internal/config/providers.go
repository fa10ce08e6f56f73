package config

type ProviderInfo struct {
	ID           string
	Name         string
	Description  string
	KeyEnv       string
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:           "gemini",
		Name:         "Gemini",
		Description:  "Google Gemini API",
		KeyEnv:       "GEMINI_API_KEY",
		SignupURL:    "https://aistudio.google.com/apikey",
		Models:       []string{"gemini-3-flash-preview", "gemini-2.5-flash", "gemini-2.5-pro"},
		DefaultModel: "gemini-3-flash-preview",
	},
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "GPT models",
		KeyEnv:       "OPENAI_API_KEY",
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o-mini", "gpt-4o"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		Description:  "Access all models",
		KeyEnv:       "OPENROUTER_API_KEY",
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"google/gemini-3-flash-preview", "openai/gpt-oss-120b:free"},
		DefaultModel: "google/gemini-3-flash-preview",
	},
	{
		ID:          "custom",
		Name:        "Custom",
		Description: "Any OpenAI-compatible endpoint",
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
