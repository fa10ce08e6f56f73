package styles

import (
	"github.com/charmbracelet/lipgloss"

	"writewise/internal/models"
)

// Theme defines a complete color scheme for the application
type Theme struct {
	Name models.Theme

	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Background colors
	BgBase     lipgloss.Color
	BgSurface  lipgloss.Color
	BgElevated lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border  lipgloss.Color
	Divider lipgloss.Color

	// Mode switcher
	ModeActive lipgloss.Color
	ModeIdle   lipgloss.Color
}

// DarkTheme is the dark mode color scheme
var DarkTheme = Theme{
	Name: models.ThemeDark,

	Primary:   lipgloss.Color("#818CF8"), // Indigo 400
	Secondary: lipgloss.Color("#22D3EE"), // Cyan 400
	Accent:    lipgloss.Color("#F472B6"), // Pink 400

	BgBase:     lipgloss.Color("#0B0B0F"),
	BgSurface:  lipgloss.Color("#141419"),
	BgElevated: lipgloss.Color("#1E1E2A"),

	TextPrimary:   lipgloss.Color("#F1F5F9"), // Slate 100
	TextSecondary: lipgloss.Color("#94A3B8"), // Slate 400
	TextMuted:     lipgloss.Color("#64748B"), // Slate 500

	Success: lipgloss.Color("#34D399"), // Emerald 400
	Warning: lipgloss.Color("#FBBF24"), // Amber 400
	Error:   lipgloss.Color("#FB7185"), // Rose 400
	Info:    lipgloss.Color("#60A5FA"), // Blue 400

	Border:  lipgloss.Color("#27272A"), // Zinc 800
	Divider: lipgloss.Color("#1F2937"), // Gray 800

	ModeActive: lipgloss.Color("#818CF8"),
	ModeIdle:   lipgloss.Color("#64748B"),
}

// LightTheme is the light mode color scheme
var LightTheme = Theme{
	Name: models.ThemeLight,

	Primary:   lipgloss.Color("#4F46E5"), // Indigo 600
	Secondary: lipgloss.Color("#0891B2"), // Cyan 600
	Accent:    lipgloss.Color("#DB2777"), // Pink 600

	BgBase:     lipgloss.Color("#FAFAFA"),
	BgSurface:  lipgloss.Color("#FFFFFF"),
	BgElevated: lipgloss.Color("#F4F4F5"), // Zinc 100

	TextPrimary:   lipgloss.Color("#18181B"), // Zinc 900
	TextSecondary: lipgloss.Color("#52525B"), // Zinc 600
	TextMuted:     lipgloss.Color("#A1A1AA"), // Zinc 400

	Success: lipgloss.Color("#10B981"), // Emerald 500
	Warning: lipgloss.Color("#F59E0B"), // Amber 500
	Error:   lipgloss.Color("#EF4444"), // Red 500
	Info:    lipgloss.Color("#3B82F6"), // Blue 500

	Border:  lipgloss.Color("#E4E4E7"), // Zinc 200
	Divider: lipgloss.Color("#F4F4F5"), // Zinc 100

	ModeActive: lipgloss.Color("#4F46E5"),
	ModeIdle:   lipgloss.Color("#A1A1AA"),
}

// CurrentTheme holds the active theme
var CurrentTheme = DarkTheme

func init() {
	Apply(CurrentTheme)
}

// CategoryColorMap colors the category headers in the tool selector
var CategoryColorMap = map[string]lipgloss.Color{
	"Rewriting & Humanizing": lipgloss.Color("#A78BFA"), // Purple
	"Content Generators":     lipgloss.Color("#22D3EE"), // Cyan
	"SEO Tools":              lipgloss.Color("#34D399"), // Emerald
	"Marketing Tools":        lipgloss.Color("#FBBF24"), // Amber
	"Social Media Tools":     lipgloss.Color("#F472B6"), // Pink
	"Blogger Utilities":      lipgloss.Color("#60A5FA"), // Blue
}

// GetCategoryColor returns the color for a category header
func GetCategoryColor(category string) lipgloss.Color {
	if c, ok := CategoryColorMap[category]; ok {
		return c
	}
	return CurrentTheme.Primary
}

// ThemeFor maps a stored preference to a Theme.
func ThemeFor(name models.Theme) Theme {
	if name == models.ThemeLight {
		return LightTheme
	}
	return DarkTheme
}

// SetTheme switches the active theme and rebuilds every style.
func SetTheme(name models.Theme) {
	CurrentTheme = ThemeFor(name)
	Apply(CurrentTheme)
}

// ToggleTheme flips between light and dark and returns the new theme.
func ToggleTheme() models.Theme {
	next := CurrentTheme.Name.Toggle()
	SetTheme(next)
	return next
}

// InitTheme applies the stored preference, falling back to the terminal
// background when nothing is stored.
func InitTheme(pref models.Theme) models.Theme {
	if !pref.Valid() {
		pref = models.ThemeLight
		if lipgloss.HasDarkBackground() {
			pref = models.ThemeDark
		}
	}
	SetTheme(pref)
	return pref
}

// GlamourStyle is the glamour standard style matching the current theme.
func GlamourStyle() string {
	if CurrentTheme.Name == models.ThemeLight {
		return "light"
	}
	return "dark"
}
