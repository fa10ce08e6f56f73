package llm

import (
	"context"
	"errors"
)

var (
	// ErrMissingAPIKey is returned on first use when no credential was configured.
	ErrMissingAPIKey = errors.New("no API key configured")
	// ErrEmptyResponse means the provider answered without any candidates.
	ErrEmptyResponse = errors.New("provider returned no choices")
)

// Provider is the interface all LLM providers must implement
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one completion request and returns the full response
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest is a single-turn request: one system instruction and
// one user prompt.
type CompletionRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float64
}

// CompletionResponse represents the full response
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewRequest creates a simple completion request
func NewRequest(model, systemPrompt, userPrompt string, temperature float64) *CompletionRequest {
	return &CompletionRequest{
		Model:       model,
		System:      systemPrompt,
		Prompt:      userPrompt,
		Temperature: temperature,
	}
}
