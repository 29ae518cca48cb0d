// Package config handles configuration loading and validation for sash
// applications.
package config

import (
	"fmt"
	"os"
	"strconv"

	"sash/internal/logging"
	"sash/window"
)

// Config holds the complete application configuration.
type Config struct {
	// Window configuration for the main window.
	Window WindowConfig `toml:"window" json:"window" yaml:"window"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// WindowConfig holds main window configuration.
type WindowConfig struct {
	// Title shown in the title bar and task manager.
	Title string `toml:"title" json:"title" yaml:"title"`

	// Width and Height of the client area in device-independent pixels.
	// Scaled to the monitor's DPI when the window is created.
	Width  int32 `toml:"width" json:"width" yaml:"width"`
	Height int32 `toml:"height" json:"height" yaml:"height"`

	// Theme of the title bar: "light" or "dark".
	Theme string `toml:"theme" json:"theme" yaml:"theme"`

	// IconID is an icon resource compiled into the executable; 0 uses the
	// generic application icon.
	IconID uint16 `toml:"icon_id" json:"icon_id" yaml:"icon_id"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum level to log: debug, info, warn or error.
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is "stdout" or "stderr".
	Output string `toml:"output" json:"output" yaml:"output"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "sash",
			Width:  720,
			Height: 640,
			Theme:  "light",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Width > 16384 || c.Window.Height > 16384 {
		return fmt.Errorf("window size %dx%d exceeds the 16384 pixel limit", c.Window.Width, c.Window.Height)
	}
	if _, err := window.ParseTheme(c.Window.Theme); err != nil {
		return fmt.Errorf("window.theme: %w", err)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("logging.format: %w", err)
	}
	return nil
}

// ApplyEnvOverrides overrides configuration values from SASH_* environment
// variables, which take precedence over the file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SASH_WINDOW_TITLE"); v != "" {
		c.Window.Title = v
	}
	if v := os.Getenv("SASH_WINDOW_THEME"); v != "" {
		c.Window.Theme = v
	}
	if v := os.Getenv("SASH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SASH_WINDOW_WIDTH"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Window.Width = int32(n)
		}
	}
	if v := os.Getenv("SASH_WINDOW_HEIGHT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Window.Height = int32(n)
		}
	}
}

// WindowTheme returns the parsed window theme. Call Validate first; an
// unparseable theme falls back to light.
func (c *Config) WindowTheme() window.Theme {
	theme, err := window.ParseTheme(c.Window.Theme)
	if err != nil {
		return window.ThemeLight
	}
	return theme
}

// WindowSize returns the configured client-area size.
func (c *Config) WindowSize() window.Size {
	return window.Size{Width: c.Window.Width, Height: c.Window.Height}
}

// LoggerConfig converts the logging section into the logging package's
// configuration, with unparseable values falling back to defaults.
func (c *Config) LoggerConfig() *logging.Config {
	cfg := logging.DefaultConfig()
	if lvl, err := logging.ParseLevel(c.Logging.Level); err == nil {
		cfg.Level = lvl
	}
	if format, err := logging.ParseFormat(c.Logging.Format); err == nil {
		cfg.Format = format
	}
	if c.Logging.Output != "" {
		cfg.Output = c.Logging.Output
	}
	return cfg
}
