package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"writewise/internal/models"
)

func TestToggleTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(models.ThemeDark) })

	SetTheme(models.ThemeDark)
	assert.Equal(t, "dark", GlamourStyle())

	assert.Equal(t, models.ThemeLight, ToggleTheme())
	assert.Equal(t, LightTheme.Primary, CurrentTheme.Primary)
	assert.Equal(t, "light", GlamourStyle())
	assert.Equal(t, LightTheme.Error, ErrorStyle.GetForeground())

	assert.Equal(t, models.ThemeDark, ToggleTheme())
	assert.Equal(t, DarkTheme.Error, ErrorStyle.GetForeground())
}

func TestInitThemeUsesStoredPreference(t *testing.T) {
	t.Cleanup(func() { SetTheme(models.ThemeDark) })

	assert.Equal(t, models.ThemeLight, InitTheme(models.ThemeLight))
	assert.Equal(t, models.ThemeLight, CurrentTheme.Name)

	got := InitTheme("")
	assert.True(t, got.Valid())
}

func TestGetCategoryColor(t *testing.T) {
	assert.Equal(t, CategoryColorMap["SEO Tools"], GetCategoryColor("SEO Tools"))
	assert.Equal(t, CurrentTheme.Primary, GetCategoryColor("Unknown"))
}
