package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"writewise/internal/models"
	"writewise/internal/session"
	"writewise/internal/styles"
	"writewise/internal/tools"
)

func (m *Model) UpdateToolSelectorContent() {
	var items []string
	var lastCategory string
	current := m.Session.Tool()

	for i, d := range m.Tools {
		if d.Category != lastCategory {
			if lastCategory != "" {
				items = append(items, "")
			}
			header := styles.ModalHeaderStyle.
				Foreground(styles.GetCategoryColor(d.Category)).
				Render(d.Category)
			items = append(items, header)
			lastCategory = d.Category
		}

		isSelected := i == m.SelectedToolIndex
		isCurrent := d.ID == current

		marker := "  "
		if isCurrent {
			marker = "● "
		}
		displayName := TruncateRunes(marker+d.Icon+" "+d.Name, styles.ContentWidth-2)

		var styledItem string
		switch {
		case isSelected:
			styledItem = styles.ModalSelectedStyle.Render(displayName)
		case isCurrent:
			styledItem = styles.ModalCurrentStyle.Render(displayName)
		default:
			styledItem = styles.ModalItemStyle.Render(displayName)
		}
		items = append(items, styledItem)
	}

	m.ToolViewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func (m *Model) RenderToolSelector() string {
	title := styles.ModalTitleStyle.Render("Select a Tool")

	var desc string
	if m.SelectedToolIndex >= 0 && m.SelectedToolIndex < len(m.Tools) {
		desc = styles.ToolDescStyle.
			Width(styles.ContentWidth).
			PaddingTop(1).
			Render(m.Tools[m.SelectedToolIndex].Description)
	}

	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("↑/↓: navigate • Enter: select • Esc: close")

	return lipgloss.JoinVertical(lipgloss.Left, title, m.ToolViewport.View(), desc, hint)
}

func (m *Model) RenderShortcutsModal() string {
	title := styles.ModalTitleStyle.Render("Keyboard Shortcuts")

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Generate"},
		{"Shift+Enter", "New Line"},
		{"Ctrl+B", "Select Tool"},
		{"Ctrl+A", "Cycle Rewrite Mode"},
		{"Ctrl+Y", "Copy Output"},
		{"Ctrl+D", "Download Output"},
		{"Ctrl+N", "Clear Workspace"},
		{"Ctrl+T", "Toggle Light/Dark"},
		{"Ctrl+S", "View Shortcuts (this menu)"},
		{"Esc", "Quit"},
	}

	descStyle := lipgloss.NewStyle().Foreground(styles.CurrentTheme.TextPrimary)

	var items []string
	for _, s := range shortcuts {
		line := fmt.Sprintf("%s %s", styles.KeyStyle.Render(s.key), descStyle.Render(s.desc))
		items = append(items, styles.ModalItemStyle.Render(line))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, items...))

	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("Esc/Enter: close")

	return lipgloss.JoinVertical(lipgloss.Left, content, hint)
}

// RenderToolHeader shows the active tool and, for the article rewriter, the
// mode switcher.
func (m *Model) RenderToolHeader() string {
	st := m.Session.State()
	d, err := tools.Describe(st.Tool)
	if err != nil {
		return ""
	}

	name := styles.ToolIconStyle.Render(d.Icon) + styles.ToolNameStyle.Render(d.Name)
	desc := styles.ToolDescStyle.Render(TruncateRunes(d.Description, m.contentWidth()-4))
	lines := []string{name, desc}

	if tools.SupportsMode(st.Tool) {
		var chips []string
		for _, mode := range models.Modes {
			label := mode.Icon() + " " + mode.Label()
			if mode == st.Mode {
				chips = append(chips, styles.ModeActiveStyle.Render(label))
			} else {
				chips = append(chips, styles.ModeIdleStyle.Render(label))
			}
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, chips...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) RenderBottomBar() string {
	st := m.Session.State()
	t := styles.CurrentTheme

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.BgSurface).
		Background(t.Primary).
		Padding(0, 1).
		Render(strings.ToUpper(st.Mode.Label()))

	toolName := st.Tool.String()
	if d, err := tools.Describe(st.Tool); err == nil {
		toolName = d.Name
	}
	tool := lipgloss.NewStyle().
		Foreground(t.TextSecondary).
		Render(TruncateRunes(toolName, 28))

	var modelText string
	if m.Generator != nil {
		modelText = TruncateRunes(m.Generator.ProviderName()+" · "+m.Generator.Model(), 30)
	}
	model := lipgloss.NewStyle().
		Foreground(t.Primary).
		Render(modelText)

	stats := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Render(FormatStats(session.TextStats(st.Input)))

	help := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Render("Help: ^S")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, badge, "  ", tool, "  ", model)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Center, stats, "  ", help)

	availableWidth := m.WindowWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide) - 2
	if availableWidth < 0 {
		availableWidth = 0
	}
	spacer := strings.Repeat(" ", availableWidth)

	bar := lipgloss.JoinHorizontal(lipgloss.Center, leftSide, spacer, rightSide)

	return lipgloss.NewStyle().
		Width(m.WindowWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(bar)
}

var welcomeFeatures = []struct {
	title string
	desc  string
}{
	{"42 writing tools", "Rewrite, humanize, expand and polish any text"},
	{"SEO ready", "Titles, meta descriptions, slugs, FAQs and snippets"},
	{"Marketing & social", "Ad copy, CTAs, captions, hashtags and YouTube metadata"},
	{"Rewrite modes", "Standard, SEO, Simple and Business focus for the article rewriter"},
}

func GetWelcomeScreen(width, height int) string {
	art := `
 ╭──────────────────────────────────────────────╮
 │                                              │
 │   W R I T E   W I S E   A I                  │
 │   ─────────────────────────                  │
 │   prompt-powered writing tools               │
 │                                              │
 ╰──────────────────────────────────────────────╯
`
	subtitle := "Pick a tool with Ctrl+B, paste your text, press Enter."

	var rows []string
	for _, f := range welcomeFeatures {
		rows = append(rows, styles.FeatureTitleStyle.Render("• "+f.title)+"  "+styles.InfoStyle.Render(f.desc))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.WelcomeArtStyle.Render(art),
		styles.WelcomeSubtitleStyle.Render(subtitle),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderOutput(out string) string {
	if m.Renderer == nil {
		return out
	}
	rendered, err := m.Renderer.Render(out)
	if err != nil {
		return out
	}
	return strings.TrimSpace(rendered)
}

func (m *Model) UpdateViewport() {
	st := m.Session.State()
	if st.Output == "" && st.Error == "" && !m.Loading {
		m.Viewport.SetContent(GetWelcomeScreen(m.Viewport.Width, m.Viewport.Height))
		return
	}

	var parts []string
	if st.Output != "" {
		label := styles.OutputLabel.Render("RESULT")
		words := styles.InfoStyle.Render(fmt.Sprintf(" %d words", session.TextStats(st.Output).Words))
		parts = append(parts, label+words, styles.OutputBoxStyle.Render(m.renderOutput(st.Output)))
	}
	if st.Error != "" && !m.Loading {
		parts = append(parts, styles.ErrorStyle.Render(st.Error))
	}
	if m.Loading {
		parts = append(parts, fmt.Sprintf("%s Generating...", m.Spinner.View()))
	}

	m.Viewport.SetContent(strings.Join(parts, "\n\n"))
	m.Viewport.GotoTop()
}

func (m *Model) overlay(modal string) string {
	modal = styles.ModalStyle.Width(ModalWidth).Render(modal)
	return lipgloss.Place(
		m.WindowWidth,
		m.WindowHeight,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func (m *Model) View() string {
	if m.ToolSelectorOpen {
		return m.overlay(m.RenderToolSelector())
	}
	if m.ShortcutsOpen {
		return m.overlay(m.RenderShortcutsModal())
	}

	inputBox := styles.InputBoxStyle.Width(m.contentWidth() - 2).Render(m.TextInput.View())

	notice := ""
	if m.Notice != "" {
		notice = styles.SuccessStyle.Render(m.Notice)
	}

	mainContent := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("WRITE WISE AI"),
		m.RenderToolHeader(),
		"",
		inputBox,
		notice,
		m.Viewport.View(),
	)
	mainArea := lipgloss.PlaceHorizontal(m.WindowWidth, lipgloss.Center, mainContent)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, m.RenderBottomBar())
}
