package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sash/window"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "sash", cfg.Window.Title)
	assert.Equal(t, window.Size{Width: 720, Height: 640}, cfg.WindowSize())
	assert.Equal(t, window.ThemeLight, cfg.WindowTheme())
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sash.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
title = "Editor"
width = 1024
height = 768
theme = "dark"

[logging]
level = "debug"
format = "json"
`), 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "Editor", cfg.Window.Title)
	assert.Equal(t, window.Size{Width: 1024, Height: 768}, cfg.WindowSize())
	assert.Equal(t, window.ThemeDark, cfg.WindowTheme())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  title: Editor
  width: 800
  height: 600
  theme: dark
`), 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Editor", cfg.Window.Title)
	assert.Equal(t, int32(800), cfg.Window.Width)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Window, cfg.Window)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"oversized window", func(c *Config) { c.Window.Width = 100000 }},
		{"unknown theme", func(c *Config) { c.Window.Theme = "solarized" }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SASH_WINDOW_TITLE", "FromEnv")
	t.Setenv("SASH_WINDOW_THEME", "dark")
	t.Setenv("SASH_LOG_LEVEL", "debug")
	t.Setenv("SASH_WINDOW_WIDTH", "1111")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "FromEnv", cfg.Window.Title)
	assert.Equal(t, "dark", cfg.Window.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int32(1111), cfg.Window.Width)
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sash.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"before\"\n"), 0o644))

	loader := NewLoader(path)
	t.Cleanup(func() { loader.Close() })

	_, err := loader.Load()
	require.NoError(t, err)

	changed := make(chan *Config, 1)
	loader.OnChange(func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	require.NoError(t, loader.Watch())

	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"after\"\n"), 0o644))

	select {
	case cfg := <-changed:
		assert.Equal(t, "after", cfg.Window.Title)
		assert.Equal(t, "after", loader.Config().Window.Title)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
}

func TestWatchIgnoresInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sash.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"good\"\n"), 0o644))

	loader := NewLoader(path)
	t.Cleanup(func() { loader.Close() })

	_, err := loader.Load()
	require.NoError(t, err)
	require.NoError(t, loader.Watch())

	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = -5\n"), 0o644))

	select {
	case err := <-loader.Errors():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("invalid reload produced no error")
	}
	// The previous good configuration is still in effect.
	assert.Equal(t, "good", loader.Config().Window.Title)
}
