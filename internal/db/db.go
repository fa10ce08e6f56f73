package db

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"writewise/internal/models"
	_ "modernc.org/sqlite"
)

const (
	KeyActiveTool = "active_tool"
	KeyTheme      = "theme"
)

// DefaultPath is where the preferences database lives when no path is
// configured.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "writewise", "writewise.db"), nil
}

// Open opens (creating if needed) the sqlite database at path and ensures
// the schema exists. An empty path uses DefaultPath.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// GetPreference returns the stored value for key and whether it exists.
func GetPreference(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func SetPreference(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		`INSERT INTO preferences(key, value, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		time.Now().Unix(),
	)
	return err
}

// LoadPreferences reads the active tool and theme. Unknown or missing
// values are left unset rather than reported as errors.
func LoadPreferences(db *sql.DB) (models.Preferences, error) {
	var prefs models.Preferences

	tool, ok, err := GetPreference(db, KeyActiveTool)
	if err != nil {
		return prefs, err
	}
	if ok {
		if id, found := models.LookupToolID(tool); found {
			prefs.ActiveTool = id
			prefs.HasActiveTool = true
		}
	}

	theme, ok, err := GetPreference(db, KeyTheme)
	if err != nil {
		return prefs, err
	}
	if ok && models.Theme(theme).Valid() {
		prefs.Theme = models.Theme(theme)
	}

	return prefs, nil
}

func SaveActiveTool(db *sql.DB, id models.ToolID) error {
	return SetPreference(db, KeyActiveTool, id.String())
}

func SaveTheme(db *sql.DB, theme models.Theme) error {
	return SetPreference(db, KeyTheme, string(theme))
}
