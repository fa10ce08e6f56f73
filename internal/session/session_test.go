package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"writewise/internal/generator"
	"writewise/internal/models"
	"writewise/internal/tools"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// started by the genai dependency at init
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
	)
}

type funcGenerator func(ctx context.Context, req generator.Request) (string, error)

func (f funcGenerator) Generate(ctx context.Context, req generator.Request) (string, error) {
	return f(ctx, req)
}

// blockingGenerator holds each call until release is closed.
type blockingGenerator struct {
	started chan generator.Request
	release chan struct{}
	calls   int
}

func newBlocking() *blockingGenerator {
	return &blockingGenerator{started: make(chan generator.Request, 1), release: make(chan struct{})}
}

func (b *blockingGenerator) Generate(_ context.Context, req generator.Request) (string, error) {
	b.calls++
	b.started <- req
	<-b.release
	return "done", nil
}

func TestNewDefaultsInvalidTool(t *testing.T) {
	assert.Equal(t, tools.DefaultTool, New(models.NumTools).Tool())
	assert.Equal(t, models.SlugGen, New(models.SlugGen).Tool())
}

func TestGenerateSuccess(t *testing.T) {
	s := New(models.ArticleRewriter)
	s.SetInput("The cat sat.")
	require.True(t, s.SetMode(models.ModeSEO))

	var got generator.Request
	out, err := s.Generate(context.Background(), funcGenerator(func(_ context.Context, req generator.Request) (string, error) {
		got = req
		return "The feline reclined.", nil
	}))
	require.NoError(t, err)
	assert.Equal(t, "The feline reclined.", out)
	assert.Equal(t, generator.Request{Tool: models.ArticleRewriter, Input: "The cat sat.", Mode: models.ModeSEO}, got)

	st := s.State()
	assert.Equal(t, StatusSucceeded, st.Status)
	assert.Equal(t, "The feline reclined.", st.Output)
	assert.Empty(t, st.Error)
}

func TestGenerateFailureKeepsPreviousOutput(t *testing.T) {
	s := New(models.Paraphraser)
	s.SetInput("hi")

	_, err := s.Generate(context.Background(), funcGenerator(func(context.Context, generator.Request) (string, error) {
		return "first", nil
	}))
	require.NoError(t, err)

	_, err = s.Generate(context.Background(), funcGenerator(func(context.Context, generator.Request) (string, error) {
		return "", &generator.Error{Err: errors.New("boom")}
	}))
	require.Error(t, err)

	st := s.State()
	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, generator.MsgGenerateFailed, st.Error)
	assert.Equal(t, "first", st.Output)

	_, err = s.Generate(context.Background(), funcGenerator(func(context.Context, generator.Request) (string, error) {
		return "second", nil
	}))
	require.NoError(t, err)
	st = s.State()
	assert.Empty(t, st.Error, "a new request clears the previous error")
	assert.Equal(t, "second", st.Output)
}

func TestGenerateRejectsOverlap(t *testing.T) {
	s := New(models.Expander)
	s.SetInput("short")
	b := newBlocking()

	done := make(chan error, 1)
	go func() {
		_, err := s.Generate(context.Background(), b)
		done <- err
	}()
	<-b.started

	assert.True(t, s.Busy())
	_, err := s.Generate(context.Background(), b)
	assert.ErrorIs(t, err, ErrBusy)
	assert.ErrorIs(t, s.SelectTool(models.Shortener), ErrBusy)
	assert.ErrorIs(t, s.Clear(), ErrBusy)
	assert.Equal(t, models.Expander, s.Tool())

	close(b.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, b.calls)
	assert.False(t, s.Busy())

	require.NoError(t, s.SelectTool(models.Shortener))
}

func TestRunAppliesToolModeAndInput(t *testing.T) {
	s := New(models.Paraphraser)
	s.SetInput("stale")

	var got generator.Request
	out, err := s.Run(context.Background(), funcGenerator(func(_ context.Context, req generator.Request) (string, error) {
		got = req
		return "rewritten", nil
	}), models.ArticleRewriter, models.ModeProfessional, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "rewritten", out)
	assert.Equal(t, generator.Request{Tool: models.ArticleRewriter, Input: "fresh", Mode: models.ModeProfessional}, got)

	st := s.State()
	assert.Equal(t, models.ArticleRewriter, st.Tool)
	assert.Equal(t, StatusSucceeded, st.Status)
	assert.Equal(t, "rewritten", st.Output)
}

func TestRunDropsModeForOtherTools(t *testing.T) {
	s := New(models.Paraphraser)

	var got generator.Request
	_, err := s.Run(context.Background(), funcGenerator(func(_ context.Context, req generator.Request) (string, error) {
		got = req
		return "ok", nil
	}), models.Paraphraser, models.ModeSEO, "text")
	require.NoError(t, err)
	assert.Equal(t, models.ModeDefault, got.Mode)
	assert.Equal(t, models.ModeDefault, s.State().Mode)
}

func TestRunRejectsUnknownTool(t *testing.T) {
	s := New(models.Paraphraser)
	_, err := s.Run(context.Background(), funcGenerator(func(context.Context, generator.Request) (string, error) {
		t.Fatal("generator called for an unknown tool")
		return "", nil
	}), models.NumTools, models.ModeDefault, "text")
	assert.ErrorIs(t, err, tools.ErrUnknownTool)
}

func TestRunWhileBusyLeavesStateAlone(t *testing.T) {
	s := New(models.ArticleRewriter)
	b := newBlocking()

	done := make(chan error, 1)
	go func() {
		_, err := s.Run(context.Background(), b, models.ArticleRewriter, models.ModeSEO, "first")
		done <- err
	}()
	req := <-b.started
	assert.Equal(t, "first", req.Input)

	_, err := s.Run(context.Background(), b, models.Shortener, models.ModeDefault, "second")
	assert.ErrorIs(t, err, ErrBusy)

	st := s.State()
	assert.Equal(t, models.ArticleRewriter, st.Tool)
	assert.Equal(t, models.ModeSEO, st.Mode)
	assert.Equal(t, "first", st.Input)
	assert.Equal(t, StatusRequesting, st.Status)

	close(b.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, b.calls)

	st = s.State()
	assert.Equal(t, "first", st.Input)
	assert.Equal(t, "done", st.Output)
}

func TestSelectToolResets(t *testing.T) {
	s := New(models.ArticleRewriter)
	s.SetInput("text")
	s.SetMode(models.ModeProfessional)
	_, err := s.Generate(context.Background(), funcGenerator(func(context.Context, generator.Request) (string, error) {
		return "out", nil
	}))
	require.NoError(t, err)

	require.NoError(t, s.SelectTool(models.ArticleRewriter))
	assert.Equal(t, "out", s.State().Output, "reselecting the same tool keeps state")

	require.NoError(t, s.SelectTool(models.FAQGen))
	assert.Equal(t, State{Tool: models.FAQGen}, s.State())

	assert.ErrorIs(t, s.SelectTool(models.ToolID(-3)), tools.ErrUnknownTool)
}

func TestModeOnlyForArticleRewriter(t *testing.T) {
	s := New(models.GrammarFixer)
	assert.False(t, s.SetMode(models.ModeSEO))
	assert.Equal(t, models.ModeDefault, s.State().Mode)
	assert.Equal(t, models.ModeDefault, s.CycleMode())

	require.NoError(t, s.SelectTool(models.ArticleRewriter))
	assert.Equal(t, models.ModeSEO, s.CycleMode())
	assert.Equal(t, models.ModeSimple, s.CycleMode())
	assert.Equal(t, models.ModeProfessional, s.CycleMode())
	assert.Equal(t, models.ModeDefault, s.CycleMode())
}

func TestClear(t *testing.T) {
	s := New(models.ArticleRewriter)
	s.SetMode(models.ModeSimple)
	s.SetInput("x")
	require.NoError(t, s.Clear())

	st := s.State()
	assert.Empty(t, st.Input)
	assert.Equal(t, models.ModeSimple, st.Mode)
	assert.Equal(t, StatusIdle, st.Status)
}

func TestTextStats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Stats
	}{
		{"empty", "", Stats{}},
		{"blank", "   \n ", Stats{Words: 0, Chars: 5, ReadTime: 0}},
		{"short", "The cat sat.", Stats{Words: 3, Chars: 12, ReadTime: 1}},
		{"unicode", "café naïve", Stats{Words: 2, Chars: 10, ReadTime: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextStats(tt.text))
		})
	}

	long := ""
	for i := 0; i < 201; i++ {
		long += "word "
	}
	assert.Equal(t, 2, TextStats(long).ReadTime)
}
