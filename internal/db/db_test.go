package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"writewise/internal/models"
)

func openTemp(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(filepath.Join(t.TempDir(), "nested", "writewise.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestPreferenceRoundTrip(t *testing.T) {
	conn := openTemp(t)

	_, ok, err := GetPreference(conn, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, SetPreference(conn, "k", "v1"))
	require.NoError(t, SetPreference(conn, "k", "v2"))

	v, ok, err := GetPreference(conn, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestLoadPreferencesEmpty(t *testing.T) {
	prefs, err := LoadPreferences(openTemp(t))
	require.NoError(t, err)
	assert.False(t, prefs.HasActiveTool)
	assert.Empty(t, prefs.Theme)
}

func TestSaveAndLoadPreferences(t *testing.T) {
	conn := openTemp(t)
	require.NoError(t, SaveActiveTool(conn, models.YTDesc))
	require.NoError(t, SaveTheme(conn, models.ThemeLight))

	prefs, err := LoadPreferences(conn)
	require.NoError(t, err)
	assert.True(t, prefs.HasActiveTool)
	assert.Equal(t, models.YTDesc, prefs.ActiveTool)
	assert.Equal(t, models.ThemeLight, prefs.Theme)
}

func TestLoadPreferencesIgnoresGarbage(t *testing.T) {
	conn := openTemp(t)
	require.NoError(t, SetPreference(conn, KeyActiveTool, "NOT_A_TOOL"))
	require.NoError(t, SetPreference(conn, KeyTheme, "sepia"))

	prefs, err := LoadPreferences(conn)
	require.NoError(t, err)
	assert.False(t, prefs.HasActiveTool)
	assert.Empty(t, prefs.Theme)
}

func TestOpenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "writewise.db")

	conn, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, SaveTheme(conn, models.ThemeDark))
	require.NoError(t, conn.Close())

	conn, err = Open(path)
	require.NoError(t, err)
	defer conn.Close()
	prefs, err := LoadPreferences(conn)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, prefs.Theme)
}
