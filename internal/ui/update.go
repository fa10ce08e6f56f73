package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"writewise/internal/db"
	"writewise/internal/session"
	"writewise/internal/styles"
	"writewise/internal/tools"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.Spinner, spCmd = m.Spinner.Update(msg)
		if m.Loading {
			m.UpdateViewport()
		}
		return m, spCmd

	case tea.KeyMsg:
		if m.ToolSelectorOpen {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "ctrl+b":
				m.ToolSelectorOpen = false
				return m, nil
			case "up", "k":
				m.SelectedToolIndex--
				if m.SelectedToolIndex < 0 {
					m.SelectedToolIndex = len(m.Tools) - 1
				}
				m.SyncToolViewportScroll()
				m.UpdateToolSelectorContent()
				return m, nil
			case "down", "j":
				m.SelectedToolIndex++
				if m.SelectedToolIndex >= len(m.Tools) {
					m.SelectedToolIndex = 0
				}
				m.SyncToolViewportScroll()
				m.UpdateToolSelectorContent()
				return m, nil
			case "enter":
				m.SelectTool(m.SelectedToolIndex)
				m.ToolSelectorOpen = false
				return m, nil
			}
			return m, nil
		}

		if m.ShortcutsOpen {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "enter", "?", "ctrl+s":
				m.ShortcutsOpen = false
				return m, nil
			}
			return m, nil
		}

		m.Notice = ""

		if isNewlineShortcut(msg) {
			m.TextInput.InsertString("\n")
			m.syncInput()
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlN:
			if err := m.Session.Clear(); err != nil {
				m.Notice = busyNotice
				return m, nil
			}
			m.TextInput.Reset()
			m.syncInput()
			m.UpdateViewport()
			return m, nil

		case tea.KeyCtrlA:
			if !tools.SupportsMode(m.Session.Tool()) {
				m.Notice = "Modes apply to the Article Rewriter only"
				return m, nil
			}
			mode := m.Session.CycleMode()
			m.Notice = fmt.Sprintf("Mode: %s", mode.Label())
			return m, nil

		case tea.KeyCtrlB:
			if m.Loading {
				m.Notice = busyNotice
				return m, nil
			}
			m.ToolSelectorOpen = true
			m.ShortcutsOpen = false
			m.UpdateToolSelectorContent()
			m.SyncToolViewportScroll()
			return m, nil

		case tea.KeyCtrlS:
			m.ShortcutsOpen = true
			m.ToolSelectorOpen = false
			return m, nil

		case tea.KeyCtrlT:
			m.ToggleTheme()
			return m, nil

		case tea.KeyCtrlY:
			m.CopyOutput()
			return m, nil

		case tea.KeyCtrlD:
			m.DownloadOutput()
			return m, nil

		case tea.KeyEnter:
			if m.Loading {
				return m, nil
			}
			m.syncInput()
			m.Loading = true
			m.Err = nil
			m.UpdateViewport()
			return m, tea.Batch(m.GenerateCmd(), m.Spinner.Tick)
		}

	case GenerationDoneMsg:
		m.Loading = false
		m.Err = msg.Err
		if msg.Err != nil && !errors.Is(msg.Err, session.ErrBusy) {
			m.Logger.Debug("generation failed", zap.Stringer("tool", msg.Tool), zap.Error(msg.Err))
		}
		m.UpdateViewport()
		return m, nil

	case tea.WindowSizeMsg:
		m.WindowWidth = msg.Width
		m.WindowHeight = msg.Height

		ModalWidth = msg.Width - 10
		if ModalWidth > 60 {
			ModalWidth = 60
		}
		if ModalWidth < 30 {
			ModalWidth = 30
		}
		styles.ContentWidth = ModalWidth - 6
		styles.Apply(styles.CurrentTheme)

		m.ToolViewport.Width = styles.ContentWidth
		m.ToolViewport.Height = msg.Height - 15
		if m.ToolViewport.Height > 20 {
			m.ToolViewport.Height = 20
		}
		if m.ToolViewport.Height < 5 {
			m.ToolViewport.Height = 5
		}

		m.Viewport.Width = m.contentWidth() - 2
		m.updateInputLayout()
		m.buildRenderer()
		m.UpdateViewport()
		return m, nil
	}

	m.TextInput, tiCmd = m.TextInput.Update(msg)

	// Terminal background color queries and cursor reports can leak into the input
	val := m.TextInput.Value()
	if strings.Contains(val, "]11;rgb:") || strings.Contains(val, "1;rgb:") || strings.Contains(val, "[1;1R") {
		m.TextInput.Reset()
	}
	m.syncInput()

	m.Viewport, vpCmd = m.Viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

const busyNotice = "Wait for the current generation to finish"

func isNewlineShortcut(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "shift+enter", "shift+return", "ctrl+j", "ctrl+enter", "alt+enter":
		return true
	default:
		return false
	}
}

// GenerateCmd runs the session's current input through the generator off
// the update loop.
func (m *Model) GenerateCmd() tea.Cmd {
	ctx, sess, gen := m.Ctx, m.Session, m.Generator
	tool := sess.Tool()
	return func() tea.Msg {
		out, err := sess.Generate(ctx, gen)
		return GenerationDoneMsg{Tool: tool, Output: out, Err: err}
	}
}

// SelectTool switches the workspace to the tool at index i of m.Tools and
// remembers it for the next launch.
func (m *Model) SelectTool(i int) {
	if i < 0 || i >= len(m.Tools) {
		return
	}
	id := m.Tools[i].ID
	if id == m.Session.Tool() {
		return
	}
	if err := m.Session.SelectTool(id); err != nil {
		m.Notice = busyNotice
		return
	}
	m.SelectedToolIndex = i
	m.Err = nil
	m.TextInput.Reset()
	m.applyToolPlaceholder()
	m.updateInputLayout()
	m.UpdateViewport()

	if m.DB != nil {
		if err := db.SaveActiveTool(m.DB, id); err != nil {
			m.Logger.Warn("save active tool", zap.Error(err))
		}
	}
}

func (m *Model) ToggleTheme() {
	m.Theme = styles.ToggleTheme()
	m.applyTheme()
	m.buildRenderer()
	m.UpdateViewport()
	if m.DB != nil {
		if err := db.SaveTheme(m.DB, m.Theme); err != nil {
			m.Logger.Warn("save theme", zap.Error(err))
		}
	}
}

func (m *Model) CopyOutput() {
	out := m.Session.State().Output
	if out == "" {
		m.Notice = "Nothing to copy yet"
		return
	}
	if err := writeClipboard(out); err != nil {
		m.Logger.Warn("copy to clipboard", zap.Error(err))
		m.Notice = "Clipboard unavailable"
		return
	}
	m.Notice = "Copied to clipboard"
}

// DownloadOutput writes the output to writewise-<tool>.txt in the working
// directory.
func (m *Model) DownloadOutput() {
	st := m.Session.State()
	if st.Output == "" {
		m.Notice = "Nothing to download yet"
		return
	}
	name := tools.DownloadFilename(st.Tool)
	if err := os.WriteFile(name, []byte(st.Output), 0o644); err != nil {
		m.Logger.Warn("download output", zap.String("file", name), zap.Error(err))
		m.Notice = "Could not save " + name
		return
	}
	m.Notice = "Saved to " + name
}

func (m *Model) syncInput() {
	m.Session.SetInput(m.TextInput.Value())
	m.updateInputLayout()
}

func (m *Model) contentWidth() int {
	w := m.WindowWidth - 2
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) buildRenderer() {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(styles.GlamourStyle()),
		glamour.WithWordWrap(m.contentWidth()-6),
	)
	if err != nil {
		m.Logger.Warn("markdown renderer", zap.Error(err))
		m.Renderer = nil
		return
	}
	m.Renderer = r
}

func (m *Model) updateInputLayout() {
	if m.WindowWidth == 0 || m.WindowHeight == 0 {
		return
	}

	inputWidth := m.contentWidth() - 4
	contentWidth := inputWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
	}

	lineCount := WrappedLineCount(m.TextInput.Value(), contentWidth)
	if lineCount < 3 {
		lineCount = 3
	}
	if lineCount > MaxInputHeight {
		lineCount = MaxInputHeight
	}
	m.TextInput.MaxHeight = MaxInputHeight
	m.TextInput.SetWidth(inputWidth)
	m.TextInput.SetHeight(lineCount)

	// header (title, tool, modes) + input box + stats + bottom bar
	inputBoxHeight := m.TextInput.Height() + 2
	reserved := inputBoxHeight + 10
	viewportHeight := m.WindowHeight - reserved
	if viewportHeight < 5 {
		viewportHeight = 5
	}
	m.Viewport.Height = viewportHeight
}
