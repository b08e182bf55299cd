// Package config loads gardenplan settings from an optional YAML file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// Dir is the per-user settings directory under the home directory.
	Dir = ".gardenplan"

	EnvConfig      = "GARDENPLAN_CONFIG"
	EnvDB          = "GARDENPLAN_DB"
	EnvLogUseCases = "GARDENPLAN_LOG_USE_CASES"
	EnvLogLevel    = "GARDENPLAN_LOG_LEVEL"
)

// Config models ~/.gardenplan/config.yaml.
type Config struct {
	DBPath      string `yaml:"db_path"`
	LogUseCases bool   `yaml:"log_use_cases"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the settings used when no file exists, rooted at home.
func Default(home string) Config {
	return Config{
		DBPath:   filepath.Join(home, Dir, "garden.db"),
		LogLevel: "info",
	}
}

// Path returns the config file location: $GARDENPLAN_CONFIG or
// ~/.gardenplan/config.yaml.
func Path(home string) string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads the config file if present, then applies environment overrides.
// A missing file yields the defaults.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return LoadFrom(Path(home), home)
}

// LoadFrom is Load with explicit paths.
func LoadFrom(path, home string) (Config, error) {
	cfg := Default(home)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	cfg.DBPath = expandHome(cfg.DBPath, home)
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel parses LogLevel. An empty value means info.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Write stores cfg as YAML at path, creating the directory.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
