package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"writewise/internal/llm"
	"writewise/internal/models"
	"writewise/internal/tools"
)

const (
	// Temperature used for every generation.
	Temperature = 0.7

	MsgEmptyInput     = "Please provide some text to process."
	MsgNoContent      = "No content generated."
	MsgGenerateFailed = "Failed to generate content. Please try again."
)

type Request struct {
	Tool  models.ToolID
	Input string
	Mode  models.Mode
}

type Kind int

const (
	// KindRemote covers transport failures and provider errors.
	KindRemote Kind = iota
	// KindConfig means the provider is not usable, typically a missing key.
	KindConfig
	// KindRequest means the request itself was rejected before any call.
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRequest:
		return "request"
	default:
		return "remote"
	}
}

// Error is the only failure Generate returns. Its message is fixed and safe
// to show to users; the cause is kept for logs and errors.Is.
type Error struct {
	Kind      Kind
	RequestID string
	Err       error
}

func (e *Error) Error() string {
	return MsgGenerateFailed
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Generator turns a Request into model output. It holds no per-request state
// and is safe for concurrent use.
type Generator struct {
	provider llm.Provider
	model    string
	system   string
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*Generator)

func WithModel(model string) Option {
	return func(g *Generator) { g.model = model }
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func New(provider llm.Provider, opts ...Option) *Generator {
	g := &Generator{
		provider: provider,
		system:   tools.SystemPrompt,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) ProviderName() string {
	return g.provider.Name()
}

func (g *Generator) Model() string {
	return g.model
}

// Prompt composes the full prompt for req: the tool template first, then
// the mode directive.
func Prompt(req Request) (string, error) {
	prompt, err := tools.BuildPrompt(req.Tool, req.Input)
	if err != nil {
		return "", err
	}
	return tools.ApplyMode(prompt, req.Tool, req.Mode), nil
}

// Generate runs one generation. Blank input short-circuits with an
// instructional message and no remote call. Every failure is an *Error.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Input) == "" {
		return MsgEmptyInput, nil
	}

	requestID := uuid.NewString()
	log := g.logger.With(
		zap.String("request_id", requestID),
		zap.Stringer("tool", req.Tool),
		zap.Stringer("mode", req.Mode),
		zap.String("provider", g.provider.Name()),
	)

	prompt, err := Prompt(req)
	if err != nil {
		log.Error("prompt build failed", zap.Error(err))
		return "", &Error{Kind: KindRequest, RequestID: requestID, Err: err}
	}
	log.Debug("prompt built", zap.Int("prompt_chars", len(prompt)))

	start := g.now()
	resp, err := g.provider.Complete(ctx, llm.NewRequest(g.model, g.system, prompt, Temperature))
	elapsed := g.now().Sub(start)

	if errors.Is(err, llm.ErrEmptyResponse) {
		log.Warn("generation returned no choices", zap.Duration("duration", elapsed))
		return MsgNoContent, nil
	}
	if err != nil {
		kind := KindRemote
		if errors.Is(err, llm.ErrMissingAPIKey) {
			kind = KindConfig
		}
		log.Error("generation failed",
			zap.Stringer("kind", kind),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return "", &Error{Kind: kind, RequestID: requestID, Err: err}
	}

	log.Info("generation finished",
		zap.Duration("duration", elapsed),
		zap.String("finish_reason", resp.FinishReason),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	if resp.Content == "" {
		return MsgNoContent, nil
	}
	return resp.Content, nil
}
