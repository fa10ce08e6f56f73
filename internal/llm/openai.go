package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIBaseURL     = "https://api.openai.com/v1"
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// OpenAIProvider serves any OpenAI-compatible chat completions endpoint:
// OpenAI itself, OpenRouter, or a custom base URL.
type OpenAIProvider struct {
	name        string
	apiKey      string
	model       string
	keyOptional bool
	client      openai.Client
}

func NewOpenAIProvider(name, apiKey, baseURL, model string, extra ...option.RequestOption) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		// One attempt per generation; callers surface the failure instead.
		option.WithMaxRetries(0),
	}
	opts = append(opts, extra...)
	return &OpenAIProvider{
		name:   name,
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(opts...),
	}
}

// NewOpenRouterProvider sets the attribution headers OpenRouter asks for.
func NewOpenRouterProvider(apiKey, model string) *OpenAIProvider {
	return NewOpenAIProvider("openrouter", apiKey, OpenRouterBaseURL, model,
		option.WithHeader("HTTP-Referer", "https://github.com/writewise/writewise"),
		option.WithHeader("X-Title", "Write Wise"),
	)
}

// AllowAnonymous lets requests through without a key, for local
// OpenAI-compatible servers.
func (p *OpenAIProvider) AllowAnonymous() *OpenAIProvider {
	p.keyOptional = true
	return p
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

func (p *OpenAIProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if p.apiKey == "" && !p.keyOptional {
		return nil, fmt.Errorf("%s: %w", p.name, ErrMissingAPIKey)
	}

	model := req.Model
	if model == "" {
		model = p.model
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       model,
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("%s completion failed: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &CompletionResponse{
		Content:      resp.Choices[0].Message.Content,
		Model:        resp.Model,
		FinishReason: resp.Choices[0].FinishReason,
		Usage: Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}
