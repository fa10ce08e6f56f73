package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"writewise/internal/llm"
	"writewise/internal/models"
	"writewise/internal/tools"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// started by the genai dependency at init
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
	)
}

type fakeProvider struct {
	mu       sync.Mutex
	requests []*llm.CompletionRequest
	reply    func(req *llm.CompletionRequest) (*llm.CompletionResponse, error)
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.reply(req)
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func echo() *fakeProvider {
	return &fakeProvider{reply: func(req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return &llm.CompletionResponse{Content: req.Prompt}, nil
	}}
}

func replying(content string, err error) *fakeProvider {
	return &fakeProvider{reply: func(*llm.CompletionRequest) (*llm.CompletionResponse, error) {
		if err != nil {
			return nil, err
		}
		return &llm.CompletionResponse{Content: content}, nil
	}}
}

func TestGenerateBlankInputSkipsRemoteCall(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t \n"} {
		p := echo()
		out, err := New(p).Generate(context.Background(), Request{Tool: models.Paraphraser, Input: input})
		require.NoError(t, err)
		assert.Equal(t, MsgEmptyInput, out)
		assert.Zero(t, p.calls())
	}
}

func TestGenerateEchoMatchesTemplate(t *testing.T) {
	g := New(echo())
	for id := models.ToolID(0); id < models.NumTools; id++ {
		want, err := tools.BuildPrompt(id, "hello")
		require.NoError(t, err)

		got, err := g.Generate(context.Background(), Request{Tool: id, Input: "hello", Mode: models.ModeDefault})
		require.NoError(t, err)
		assert.Equal(t, want, got, id.String())
	}
}

func TestGenerateSendsSystemPromptAndTemperature(t *testing.T) {
	p := echo()
	g := New(p, WithModel("gemini-test"))

	_, err := g.Generate(context.Background(), Request{Tool: models.SlugGen, Input: "Ten Tips"})
	require.NoError(t, err)

	require.Equal(t, 1, p.calls())
	req := p.requests[0]
	assert.Equal(t, tools.SystemPrompt, req.System)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, "gemini-test", req.Model)
}

func TestGenerateArticleRewriterSEOScenario(t *testing.T) {
	p := replying("The feline reclined.", nil)
	g := New(p)

	out, err := g.Generate(context.Background(), Request{
		Tool:  models.ArticleRewriter,
		Input: "The cat sat.",
		Mode:  models.ModeSEO,
	})
	require.NoError(t, err)
	assert.Equal(t, "The feline reclined.", out)

	require.Equal(t, 1, p.calls())
	prompt := p.requests[0].Prompt
	assert.Contains(t, prompt, "Rewrite the following article.")
	assert.Contains(t, prompt, "The cat sat.")
	assert.Contains(t, prompt, "\nFOCUS: SEO optimization")
}

func TestGenerateModeIgnoredForOtherTools(t *testing.T) {
	p := echo()
	g := New(p)

	out, err := g.Generate(context.Background(), Request{Tool: models.GrammarFixer, Input: "teh", Mode: models.ModeProfessional})
	require.NoError(t, err)
	want, _ := tools.BuildPrompt(models.GrammarFixer, "teh")
	assert.Equal(t, want, out)
}

func TestGenerateEmptyReply(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		out, err := New(replying("", nil)).Generate(context.Background(), Request{Tool: models.YTTags, Input: "go"})
		require.NoError(t, err)
		assert.Equal(t, MsgNoContent, out)
	})

	t.Run("no choices", func(t *testing.T) {
		out, err := New(replying("", llm.ErrEmptyResponse)).Generate(context.Background(), Request{Tool: models.YTTags, Input: "go"})
		require.NoError(t, err)
		assert.Equal(t, MsgNoContent, out)
	})
}

func TestGenerateFailureHidesCause(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cause := errors.New("upstream 503: secret-internal-detail")
	p := replying("", fmt.Errorf("wrapped: %w", cause))
	g := New(p, WithLogger(zap.New(core)))

	out, err := g.Generate(context.Background(), Request{Tool: models.AdCopy, Input: "shoes"})
	assert.Empty(t, out)
	require.Error(t, err)
	assert.Equal(t, MsgGenerateFailed, err.Error())
	assert.NotContains(t, err.Error(), "secret-internal-detail")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, p.calls(), "no retries")

	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindRemote, genErr.Kind)
	assert.NotEmpty(t, genErr.RequestID)

	entries := logs.FilterMessage("generation failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, genErr.RequestID, fields["request_id"])
	assert.Equal(t, "AD_COPY", fields["tool"])
	assert.Contains(t, fields["error"], "secret-internal-detail")
}

func TestGenerateMissingKeyIsConfigError(t *testing.T) {
	g := New(llm.NewGeminiProvider("", "", ""))

	_, err := g.Generate(context.Background(), Request{Tool: models.CTAGen, Input: "sign up"})
	require.Error(t, err)
	assert.Equal(t, MsgGenerateFailed, err.Error())
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)

	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindConfig, genErr.Kind)
}

func TestGenerateUnknownTool(t *testing.T) {
	p := echo()
	_, err := New(p).Generate(context.Background(), Request{Tool: models.NumTools, Input: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, tools.ErrUnknownTool)
	assert.Zero(t, p.calls())
}

func TestGenerateLogsSuccess(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	g := New(replying("ok", nil), WithLogger(zap.New(core)))

	_, err := g.Generate(context.Background(), Request{Tool: models.HashtagGen, Input: "go"})
	require.NoError(t, err)

	entries := logs.FilterMessage("generation finished").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "HASHTAG_GEN", entries[0].ContextMap()["tool"])
}

func TestGenerateConcurrentUse(t *testing.T) {
	g := New(echo())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := fmt.Sprintf("input %d", i)
			out, err := g.Generate(context.Background(), Request{Tool: models.Shortener, Input: input})
			assert.NoError(t, err)
			assert.Contains(t, out, input)
		}(i)
	}
	wg.Wait()
}
