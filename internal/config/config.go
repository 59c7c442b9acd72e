// Package config resolves tracker settings from defaults, an optional TOML
// file and TRACKER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultLogFileName = ".tracker_time"
	defaultDirName     = ".tracker"
)

// Config holds every runtime setting of the tracker.
type Config struct {
	LogPath  string `toml:"log_path"`
	DBPath   string `toml:"db_path"`
	LogLevel string `toml:"log_level"`
	LogCalls bool   `toml:"log_calls"`
}

// DefaultConfig returns the settings used when nothing is configured.
// The interval log lives directly in the home directory.
func DefaultConfig(home string) Config {
	return Config{
		LogPath:  filepath.Join(home, defaultLogFileName),
		DBPath:   filepath.Join(home, defaultDirName, "ledger.db"),
		LogLevel: "info",
	}
}

// DefaultConfigPath returns ~/.tracker/config.toml.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, defaultDirName, "config.toml")
}

// Load builds the effective configuration. The TOML file is read from
// TRACKER_CONFIG or the default path; a missing file is not an error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}

	path := os.Getenv("TRACKER_CONFIG")
	if path == "" {
		path = DefaultConfigPath(home)
	}
	return LoadFrom(path, home)
}

// LoadFrom is Load with an explicit config file path and home directory.
func LoadFrom(path, home string) (Config, error) {
	cfg := DefaultConfig(home)

	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)

	cfg.LogPath = expandHome(cfg.LogPath, home)
	cfg.DBPath = expandHome(cfg.DBPath, home)

	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel for the structured logger.
func (c Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg from the environment. Unparsable values are ignored.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TRACKER_LOG"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("TRACKER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		if _, err := log.ParseLevel(v); err == nil {
			cfg.LogLevel = v
		}
	}
	if v := os.Getenv("TRACKER_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogCalls = b
		}
	}
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
