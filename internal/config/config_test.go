package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WRITEWISE_PROVIDER", "WRITEWISE_MODEL", "WRITEWISE_BASE_URL",
		"API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Model)
	assert.Empty(t, cfg.APIKey, "a missing key is not an error at load time")
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "writewise.log", filepath.Base(cfg.LogFile))
	assert.Equal(t, "writewise.db", filepath.Base(cfg.DBPath))
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`provider: openrouter
api_key: file-key
server:
  addr: 127.0.0.1:9000
  session_ttl: 5m
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openrouter", cfg.Provider)
	assert.Equal(t, "google/gemini-3-flash-preview", cfg.Model)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadFileProviderDefaultModel(t *testing.T) {
	tests := []struct {
		provider string
		model    string
	}{
		{"gemini", "gemini-3-flash-preview"},
		{"openai", "gpt-4o-mini"},
		{"openrouter", "google/gemini-3-flash-preview"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			clearEnv(t)

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte("provider: "+tt.provider+"\n"), 0o600))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.model, cfg.Model)
		})
	}
}

func TestDefaultConfigLeavesModelToProvider(t *testing.T) {
	assert.Empty(t, DefaultConfig().Model)
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("WRITEWISE_PROVIDER", "carrier-pigeon")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "unknown provider")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("provider key variable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "gem-key")
		t.Setenv("OPENAI_API_KEY", "ignored")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "gem-key", cfg.APIKey)
	})

	t.Run("API_KEY wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "gem-key")
		t.Setenv("API_KEY", "generic")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "generic", cfg.APIKey)
	})

	t.Run("switching provider resets model", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WRITEWISE_PROVIDER", "openai")
		t.Setenv("OPENAI_API_KEY", "sk-test")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "gpt-4o-mini", cfg.Model)
		assert.Equal(t, "sk-test", cfg.APIKey)
	})

	t.Run("explicit model", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WRITEWISE_MODEL", "gemini-2.5-pro")
		t.Setenv("WRITEWISE_BASE_URL", "http://localhost:1234")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-pro", cfg.Model)
		assert.Equal(t, "http://localhost:1234", cfg.BaseURL)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.Model = "gpt-4o"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", loaded.Provider)
	assert.Equal(t, "gpt-4o", loaded.Model)
	assert.Equal(t, cfg.Server.SessionTTL, loaded.Server.SessionTTL)
}

func TestGetProvider(t *testing.T) {
	assert.NotNil(t, GetProvider("gemini"))
	assert.Nil(t, GetProvider("nope"))
}
