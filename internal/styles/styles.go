package styles

import "github.com/charmbracelet/lipgloss"

var (
	ContentWidth = 54
)

var (
	TitleStyle      lipgloss.Style
	InfoStyle       lipgloss.Style
	ErrorStyle      lipgloss.Style
	SuccessStyle    lipgloss.Style
	ToolIconStyle   lipgloss.Style
	ToolNameStyle   lipgloss.Style
	ToolDescStyle   lipgloss.Style
	InputBoxStyle   lipgloss.Style
	OutputBoxStyle  lipgloss.Style
	OutputLabel     lipgloss.Style
	ModeActiveStyle lipgloss.Style
	ModeIdleStyle   lipgloss.Style

	WelcomeArtStyle      lipgloss.Style
	WelcomeSubtitleStyle lipgloss.Style
	FeatureTitleStyle    lipgloss.Style

	ModalStyle         lipgloss.Style
	ModalTitleStyle    lipgloss.Style
	ModalItemStyle     lipgloss.Style
	ModalHeaderStyle   lipgloss.Style
	ModalSelectedStyle lipgloss.Style
	ModalCurrentStyle  lipgloss.Style
	KeyStyle           lipgloss.Style

	HintColor lipgloss.Color
)

// Apply rebuilds the package styles from t.
func Apply(t Theme) {
	HintColor = t.TextMuted

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
		Foreground(t.TextMuted)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	ToolIconStyle = lipgloss.NewStyle().
		MarginRight(1)

	ToolNameStyle = lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	ToolDescStyle = lipgloss.NewStyle().
		Foreground(t.TextSecondary)

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)

	OutputBoxStyle = lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.Secondary).
		PaddingLeft(1)

	OutputLabel = lipgloss.NewStyle().
		Foreground(t.BgSurface).
		Background(t.Secondary).
		Bold(true).
		Padding(0, 1)

	ModeActiveStyle = lipgloss.NewStyle().
		Foreground(t.BgSurface).
		Background(t.ModeActive).
		Bold(true).
		Padding(0, 1)

	ModeIdleStyle = lipgloss.NewStyle().
		Foreground(t.ModeIdle).
		Padding(0, 1)

	WelcomeArtStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	WelcomeSubtitleStyle = lipgloss.NewStyle().
		Foreground(t.TextSecondary).
		Italic(true)

	FeatureTitleStyle = lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Width(ContentWidth).
		MarginBottom(1)

	ModalItemStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Width(ContentWidth).
		Foreground(t.TextPrimary)

	ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		PaddingLeft(1).
		Width(ContentWidth)

	ModalSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Width(ContentWidth).
		Background(t.BgElevated).
		Foreground(t.Primary).
		Bold(true)

	ModalCurrentStyle = ModalItemStyle.
		Foreground(t.Secondary)

	KeyStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true).
		Width(12)
}
