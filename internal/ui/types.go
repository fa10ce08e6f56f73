package ui

import (
	"context"
	"database/sql"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"writewise/internal/models"
	"writewise/internal/session"
)

const (
	MaxContentWidth = 100
	MaxInputHeight  = 8
)

var ModalWidth = 60

// Generator is what the workspace needs from *generator.Generator.
type Generator interface {
	session.Generator
	ProviderName() string
	Model() string
}

// GenerationDoneMsg carries the result of one generation back to Update.
type GenerationDoneMsg struct {
	Tool   models.ToolID
	Output string
	Err    error
}

type Model struct {
	Ctx       context.Context
	Session   *session.Session
	Generator Generator
	DB        *sql.DB
	Logger    *zap.Logger

	Viewport     viewport.Model
	ToolViewport viewport.Model
	TextInput    textarea.Model
	Spinner      spinner.Model
	Renderer     *glamour.TermRenderer

	Tools             []models.ToolDescriptor
	SelectedToolIndex int
	ToolSelectorOpen  bool
	ShortcutsOpen     bool

	Theme   models.Theme
	Loading bool
	Notice  string
	Err     error

	WindowWidth  int
	WindowHeight int

	Program *tea.Program
}
