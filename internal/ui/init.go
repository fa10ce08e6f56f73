package ui

import (
	"context"
	"database/sql"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"writewise/internal/db"
	"writewise/internal/models"
	"writewise/internal/session"
	"writewise/internal/styles"
	"writewise/internal/tools"
)

// Options configures the workspace. Tool, when non-empty, is a deep link
// and wins over the stored preference.
type Options struct {
	Ctx       context.Context
	Generator Generator
	DB        *sql.DB
	Logger    *zap.Logger
	Tool      string
}

func InitialModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	var prefs models.Preferences
	if opts.DB != nil {
		p, err := db.LoadPreferences(opts.DB)
		if err != nil {
			logger.Warn("load preferences", zap.Error(err))
		} else {
			prefs = p
		}
	}

	tool := tools.DefaultTool
	switch {
	case opts.Tool != "":
		tool = tools.Resolve(opts.Tool)
	case prefs.HasActiveTool:
		tool = prefs.ActiveTool
	}

	theme := styles.InitTheme(prefs.Theme)

	ti := textarea.New()
	ti.Prompt = "❯ "
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.MaxHeight = MaxInputHeight
	ti.SetHeight(3)
	ti.SetWidth(80)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	all := tools.All()
	selected := 0
	for i, d := range all {
		if d.ID == tool {
			selected = i
			break
		}
	}

	m := Model{
		Ctx:               ctx,
		Session:           session.New(tool),
		Generator:         opts.Generator,
		DB:                opts.DB,
		Logger:            logger,
		TextInput:         ti,
		Viewport:          viewport.New(60, 15),
		ToolViewport:      viewport.New(ModalWidth-4, 15),
		Spinner:           sp,
		Tools:             all,
		SelectedToolIndex: selected,
		Theme:             theme,
	}
	m.applyTheme()
	m.applyToolPlaceholder()
	return m
}

// applyTheme restyles the widgets that do not read the styles package on
// every render.
func (m *Model) applyTheme() {
	t := styles.CurrentTheme
	prompt := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	placeholder := lipgloss.NewStyle().Foreground(t.TextMuted)
	m.TextInput.FocusedStyle.Prompt = prompt
	m.TextInput.BlurredStyle.Prompt = prompt
	m.TextInput.FocusedStyle.Placeholder = placeholder
	m.TextInput.BlurredStyle.Placeholder = placeholder
	m.TextInput.FocusedStyle.CursorLine = lipgloss.NewStyle()
	m.TextInput.BlurredStyle.CursorLine = lipgloss.NewStyle()
	m.Spinner.Style = lipgloss.NewStyle().Foreground(t.Primary)
}

func (m *Model) applyToolPlaceholder() {
	if d, err := tools.Describe(m.Session.Tool()); err == nil {
		m.TextInput.Placeholder = d.Placeholder
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.TextInput.Cursor.BlinkCmd(),
		m.Spinner.Tick,
	)
}

func NewProgram(opts Options) *tea.Program {
	m := InitialModel(opts)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	m.Program = p
	return p
}
