package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := NewConfig()

	assert.Equal(t, "auto", c.Theme)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.LogFile)
	assert.Empty(t, c.PrefsPath)
	assert.Equal(t, 100, c.MaxEventHistory)
	assert.NoError(t, c.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BLACKBODY_THEME", "dark")
	t.Setenv("BLACKBODY_LOG_LEVEL", "debug")
	t.Setenv("BLACKBODY_LOG_FILE", "/tmp/bb.log")
	t.Setenv("BLACKBODY_PREFS", "/tmp/prefs.yaml")
	t.Setenv("BLACKBODY_MAX_EVENT_HISTORY", "25")

	c := NewConfig()
	c.LoadFromEnv()

	assert.Equal(t, "dark", c.Theme)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/tmp/bb.log", c.LogFile)
	assert.Equal(t, "/tmp/prefs.yaml", c.PrefsPath)
	assert.Equal(t, 25, c.MaxEventHistory)
}

func TestLoadFromEnv_BadNumberKeepsDefault(t *testing.T) {
	t.Setenv("BLACKBODY_MAX_EVENT_HISTORY", "lots")

	c := NewConfig()
	c.LoadFromEnv()

	assert.Equal(t, 100, c.MaxEventHistory)
}

func TestBindFlags(t *testing.T) {
	c := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--theme", "light", "--log-level=warn", "--prefs", "p.yaml"}))

	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "p.yaml", c.PrefsPath)
	assert.Equal(t, 100, c.MaxEventHistory)
}

func TestBindFlags_EnvBecomesDefault(t *testing.T) {
	t.Setenv("BLACKBODY_THEME", "dark")

	c := NewConfig()
	c.LoadFromEnv()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, "dark", c.Theme)
	assert.Equal(t, "dark", fs.Lookup("theme").DefValue)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"uppercase theme", func(c *Config) { c.Theme = "DARK" }, false},
		{"bad theme", func(c *Config) { c.Theme = "sepia" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"warning alias", func(c *Config) { c.LogLevel = "warning" }, false},
		{"zero history", func(c *Config) { c.MaxEventHistory = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrefsFile(t *testing.T) {
	c := NewConfig()
	c.PrefsPath = "/etc/custom.yaml"

	p, err := c.PrefsFile()
	require.NoError(t, err)
	assert.Equal(t, "/etc/custom.yaml", p)
}

func TestDefaultPrefsPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	p, err := DefaultPrefsPath()
	require.NoError(t, err)
	assert.Equal(t, "prefs.yaml", filepath.Base(p))
	assert.Equal(t, "ls-blackbody", filepath.Base(filepath.Dir(p)))
}

func TestPrefs_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	require.NoError(t, SavePrefs(path, Prefs{Theme: "dark"}))

	got, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme: dark\n", string(data))
}

func TestLoadPrefs_Missing(t *testing.T) {
	got, err := LoadPrefs(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Prefs{}, got)
}

func TestLoadPrefs_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

	_, err := LoadPrefs(path)
	assert.Error(t, err)
}
