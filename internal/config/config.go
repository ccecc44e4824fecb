// Package config holds runtime settings for ls-blackbody: defaults,
// BLACKBODY_ environment overrides, command-line flags and the prefs file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable the app reads.
const EnvPrefix = "BLACKBODY_"

// Config holds the configuration for an ls-blackbody run
type Config struct {
	// Presentation
	Theme string // auto, light or dark

	// Logging
	LogLevel string
	LogFile  string

	// Persistence
	PrefsPath string

	// Event log size in the TUI
	MaxEventHistory int
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Theme:           "auto",
		LogLevel:        "info",
		LogFile:         "",
		PrefsPath:       "",
		MaxEventHistory: 100,
	}
}

// LoadFromEnv loads configuration from environment variables with BLACKBODY_ prefix
func (c *Config) LoadFromEnv() {
	if v := os.Getenv(EnvPrefix + "THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvPrefix + "PREFS"); v != "" {
		c.PrefsPath = v
	}
	if v := os.Getenv(EnvPrefix + "MAX_EVENT_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxEventHistory = n
		}
	}
}

// BindFlags registers the shared flags on fs. Values already loaded
// (defaults, environment) become the flag defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Theme, "theme", c.Theme, "Colour theme (auto, light, dark)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file")
	fs.StringVar(&c.PrefsPath, "prefs", c.PrefsPath, "Preferences file (default: user config dir)")
	fs.IntVar(&c.MaxEventHistory, "max-event-history", c.MaxEventHistory, "Events kept in the TUI event log")
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want auto, light or dark)", c.Theme)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	if c.MaxEventHistory < 1 {
		return fmt.Errorf("max event history must be at least 1, got %d", c.MaxEventHistory)
	}

	return nil
}

// PrefsFile returns the prefs path, falling back to DefaultPrefsPath.
func (c *Config) PrefsFile() (string, error) {
	if c.PrefsPath != "" {
		return c.PrefsPath, nil
	}
	return DefaultPrefsPath()
}

// DefaultPrefsPath is prefs.yaml under the user config directory.
func DefaultPrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "ls-blackbody", "prefs.yaml"), nil
}
