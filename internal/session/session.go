package session

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/semaphore"

	"writewise/internal/generator"
	"writewise/internal/models"
	"writewise/internal/tools"
)

// ErrBusy is returned when an action conflicts with a generation in flight.
var ErrBusy = errors.New("generation already in progress")

type Status int

const (
	StatusIdle Status = iota
	StatusRequesting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRequesting:
		return "requesting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Generator is the part of *generator.Generator a session needs.
type Generator interface {
	Generate(ctx context.Context, req generator.Request) (string, error)
}

// State is a copy of a session's workspace.
type State struct {
	Tool   models.ToolID
	Mode   models.Mode
	Input  string
	Output string
	Error  string
	Status Status
}

// Session is one user's workspace: the active tool, its mode, the input and
// the last result. At most one generation runs at a time.
type Session struct {
	mu       sync.Mutex
	state    State
	inflight *semaphore.Weighted
}

func New(tool models.ToolID) *Session {
	if !tool.Valid() {
		tool = tools.DefaultTool
	}
	return &Session{
		state:    State{Tool: tool},
		inflight: semaphore.NewWeighted(1),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Tool() models.ToolID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Tool
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Status == StatusRequesting
}

// SelectTool switches the active tool and clears input, output, error and
// mode. Selecting the current tool is a no-op. Switching is refused while a
// generation is in flight.
func (s *Session) SelectTool(id models.ToolID) error {
	if !id.Valid() {
		return tools.ErrUnknownTool
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status == StatusRequesting {
		return ErrBusy
	}
	if s.state.Tool == id {
		return nil
	}
	s.state = State{Tool: id}
	return nil
}

// SetMode stores mode for tools that support it and reports whether it was
// stored. Other tools always run in the default mode.
func (s *Session) SetMode(mode models.Mode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !tools.SupportsMode(s.state.Tool) {
		s.state.Mode = models.ModeDefault
		return false
	}
	s.state.Mode = mode
	return true
}

// CycleMode advances to the next mode and returns the one now active.
func (s *Session) CycleMode() models.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tools.SupportsMode(s.state.Tool) {
		s.state.Mode = s.state.Mode.Next()
	}
	return s.state.Mode
}

func (s *Session) SetInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Input = input
}

// Clear empties input, output and error but keeps the tool and mode.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status == StatusRequesting {
		return ErrBusy
	}
	s.state.Input = ""
	s.state.Output = ""
	s.state.Error = ""
	s.state.Status = StatusIdle
	return nil
}

// Generate runs the current input through g. It returns ErrBusy without
// calling g if another generation on this session has not finished. On
// failure the previous output is kept and the error message is recorded.
func (s *Session) Generate(ctx context.Context, g Generator) (string, error) {
	if !s.inflight.TryAcquire(1) {
		return "", ErrBusy
	}
	defer s.inflight.Release(1)

	s.mu.Lock()
	req := s.beginLocked()
	s.mu.Unlock()

	return s.finish(g.Generate(ctx, req))
}

// Run selects tool, applies mode and input, and generates, all as one step.
// When another generation holds the session it returns ErrBusy and leaves
// the state untouched. A mode is only kept for tools that support one.
func (s *Session) Run(ctx context.Context, g Generator, tool models.ToolID, mode models.Mode, input string) (string, error) {
	if !tool.Valid() {
		return "", tools.ErrUnknownTool
	}
	if !s.inflight.TryAcquire(1) {
		return "", ErrBusy
	}
	defer s.inflight.Release(1)

	s.mu.Lock()
	if s.state.Tool != tool {
		s.state = State{Tool: tool}
	}
	if !tools.SupportsMode(tool) {
		mode = models.ModeDefault
	}
	s.state.Mode = mode
	s.state.Input = input
	req := s.beginLocked()
	s.mu.Unlock()

	return s.finish(g.Generate(ctx, req))
}

func (s *Session) beginLocked() generator.Request {
	s.state.Status = StatusRequesting
	s.state.Error = ""
	return generator.Request{Tool: s.state.Tool, Input: s.state.Input, Mode: s.state.Mode}
}

func (s *Session) finish(out string, err error) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Status = StatusFailed
		s.state.Error = err.Error()
		return "", err
	}
	s.state.Status = StatusSucceeded
	s.state.Output = out
	return out, nil
}

// Stats summarizes a piece of text for display.
type Stats struct {
	Words    int
	Chars    int
	ReadTime int // minutes at 200 words per minute, rounded up
}

const wordsPerMinute = 200

func TextStats(text string) Stats {
	words := len(strings.Fields(text))
	return Stats{
		Words:    words,
		Chars:    utf8.RuneCountInString(text),
		ReadTime: int(math.Ceil(float64(words) / wordsPerMinute)),
	}
}
