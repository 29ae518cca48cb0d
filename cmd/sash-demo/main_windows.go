//go:build windows

// Command sash-demo opens a configured window and logs the text typed
// into it. It demonstrates the builder, the message pump, keyboard
// draining and config hot-reload.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"sash/internal/config"
	"sash/internal/logging"
	"sash/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sash-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "sash.toml", "path to the configuration file")
	flag.Parse()

	loader := config.NewLoader(*configPath)
	defer loader.Close()

	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LoggerConfig())
	logging.SetDefault(logger)

	if !window.EnableHeapProtection() {
		logger.Warn("heap protection is not available on this system")
	}

	// Win32 windows are bound to their creating thread, so the message
	// loop owns this OS thread for the life of the process.
	runtime.LockOSThread()

	com, err := window.AcquireComApartment()
	if err != nil {
		return fmt.Errorf("initialize COM: %w", err)
	}
	defer com.Release()

	builder := window.NewBuilder().
		WithTitle(cfg.Window.Title).
		WithSize(cfg.WindowSize()).
		WithTheme(cfg.WindowTheme())
	if cfg.Window.IconID != 0 {
		builder.WithIcon(cfg.Window.IconID)
	}

	w, err := builder.Build()
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	// Config changes arrive on the watcher goroutine but the window only
	// accepts calls from this thread, so reloads are parked here and
	// applied between messages.
	var pending atomic.Pointer[config.Config]
	loader.OnChange(func(next *config.Config) {
		pending.Store(next)
	})
	if err := loader.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	logger.Info("window ready", "title", w.Title(), "dpi", uint32(w.DPI()))

	for {
		more, err := window.PumpMessage()
		if err != nil {
			return fmt.Errorf("message pump: %w", err)
		}
		if !more {
			return nil
		}

		if next := pending.Swap(nil); next != nil {
			applyConfig(w, next, logger)
		}

		if buf := w.DrainInput(); len(buf.Chars()) > 0 || buf.NumBackspaces() > 0 {
			logger.Info("text input",
				"text", buf.String(),
				"backspaces", buf.NumBackspaces())
		}

		if w.IsRequestingPaint() {
			// No drawing in the demo; just acknowledge the request.
			w.ClearPaintRequest()
		}

		if w.IsRequestingClose() {
			w.ClearCloseRequest()
			logger.Info("close requested, shutting down")
			if err := w.Destroy(); err != nil {
				return fmt.Errorf("destroy window: %w", err)
			}
			window.Quit(0)
		}
	}
}

// applyConfig applies the reloadable parts of a new configuration to the
// live window.
func applyConfig(w *window.Window, cfg *config.Config, logger *logging.Logger) {
	logger.Info("applying reloaded configuration")

	if cfg.Window.Title != w.Title() {
		if err := w.SetTitle(cfg.Window.Title); err != nil {
			logger.Error("failed to set window title", "error", err)
		}
	}
	if theme := cfg.WindowTheme(); theme != w.CurrentTheme() {
		if err := w.SetTheme(theme); err != nil {
			logger.Error("failed to set window theme", "error", err)
		}
	}
}
