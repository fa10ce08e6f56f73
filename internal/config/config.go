package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "writewise"

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	LogFile string `yaml:"log_file,omitempty"`
	DBPath  string `yaml:"db_path,omitempty"`

	Server ServerConfig `yaml:"server"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	SessionTTL      time.Duration `yaml:"session_ttl"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "gemini",
		Server: ServerConfig{
			Addr:            ":8080",
			SessionTTL:      30 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file at path (the default location when empty),
// layers it over DefaultConfig and applies environment overrides. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets the environment override the file. Provider-specific key
// variables only apply to their provider; API_KEY applies to any.
func (c *Config) applyEnv() {
	if v := os.Getenv("WRITEWISE_PROVIDER"); v != "" {
		if v != c.Provider {
			c.Model = ""
		}
		c.Provider = v
	}
	if v := os.Getenv("WRITEWISE_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("WRITEWISE_BASE_URL"); v != "" {
		c.BaseURL = v
	}

	if info := GetProvider(c.Provider); info != nil && info.KeyEnv != "" {
		if v := os.Getenv(info.KeyEnv); v != "" {
			c.APIKey = v
		}
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.APIKey = v
	}
}

func (c *Config) fillDefaults() error {
	info := GetProvider(c.Provider)
	if info == nil {
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}
	if c.Model == "" {
		c.Model = info.DefaultModel
	}

	if c.LogFile == "" || c.DBPath == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		if c.LogFile == "" {
			c.LogFile = filepath.Join(dir, appName+".log")
		}
		if c.DBPath == "" {
			c.DBPath = filepath.Join(dir, appName+".db")
		}
	}

	defaults := DefaultConfig().Server
	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Addr
	}
	if c.Server.SessionTTL <= 0 {
		c.Server.SessionTTL = defaults.SessionTTL
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = defaults.ShutdownTimeout
	}
	return nil
}

// Save writes c to path, or to the default location when path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
