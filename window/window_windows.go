//go:build windows

package window

import (
	"fmt"
	"log/slog"
	"runtime/cgo"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"sash/internal/w32"
	"sash/keyboard"
)

const mainWindowClass = "SashMainWindow"

// Window is a native Win32 window.
//
// The window must be driven by its owning thread's message pump (see
// PumpMessage); native operations from any other thread fail with
// ErrWrongThread. Close and paint requests arrive asynchronously through
// the window procedure and are surfaced as flags for the caller's update
// loop to poll.
type Window struct {
	class *windowClass
	hwnd  w32.HWND

	// handle is the cgo handle stored in the native window's user data,
	// resolving window-procedure calls back to this object.
	handle cgo.Handle

	// threadID identifies the owning thread; native entry points refuse
	// calls from any other.
	threadID uint32

	size  Size
	title string
	theme Theme

	closeRequest atomic.Bool
	paintRequest atomic.Bool

	// kb accumulates key and text state fed by the window procedure. The
	// lock lets the owner read press state while a dispatch is in flight.
	mu sync.RWMutex
	kb *keyboard.Keyboard

	destroyed bool
	logger    *slog.Logger
}

// newWindow creates and shows a native window for the builder's settings.
//
// The window is created hidden with an empty size first so the hosting
// monitor's DPI can be detected, then resized to the scaled dimensions and
// shown.
func newWindow(b *Builder) (*Window, error) {
	w := &Window{
		threadID: windows.GetCurrentThreadId(),
		size:     b.size,
		title:    b.title,
		theme:    b.theme,
		kb:       keyboard.New(),
		logger:   slog.Default().With("component", "window"),
	}
	// Ask for an initial paint.
	w.paintRequest.Store(true)

	w.logger.Debug("creating window", "title", b.title, "size", b.size.String())

	class, err := acquireWindowClass(mainWindowClass, b.iconID, b.hasIcon)
	if err != nil {
		return nil, err
	}
	w.class = class

	title16, err := windows.UTF16PtrFromString(b.title)
	if err != nil {
		class.release()
		return nil, fmt.Errorf("invalid window title %q: %w", b.title, err)
	}

	module, err := windows.GetModuleHandle(nil)
	if err != nil {
		class.release()
		return nil, fmt.Errorf("failed to get module handle to create window: %w", err)
	}

	w.handle = cgo.NewHandle(w)
	hwnd, err := w32.CreateWindowEx(
		0,
		class.name16,
		title16,
		w32.WS_OVERLAPPEDWINDOW,
		w32.CW_USEDEFAULT, w32.CW_USEDEFAULT,
		// Zero size; the real size is applied below once the DPI is known.
		0, 0,
		0, 0, module,
		uintptr(w.handle),
	)
	if err != nil {
		w.handle.Delete()
		class.release()
		return nil, err
	}
	w.hwnd = hwnd

	if err := w.applyScaledSize(); err != nil {
		w.logger.Error("failed to size window", "title", w.title, "error", err)
		_ = w32.DestroyWindow(hwnd)
		return nil, err
	}

	if err := w.applyTheme(b.theme); err != nil {
		// DWM attributes are unavailable on older systems; the window is
		// still usable with the stock title bar.
		w.logger.Warn("failed to apply window theme", "theme", b.theme, "error", err)
	}

	w32.ShowWindow(hwnd, w32.SW_SHOWNORMAL)
	w32.UpdateWindow(hwnd)

	w.logger.Debug("created window", "title", w.title, "dpi", uint32(w.DPI()))
	return w, nil
}

// applyScaledSize resizes the native window so its client area matches the
// builder size scaled to the monitor's DPI, chrome included.
func (w *Window) applyScaledSize() error {
	dpi := detectDPI(w.hwnd)
	scaled := dpi.ScaleSize(w.size)

	rect := w32.RECT{Right: scaled.Width, Bottom: scaled.Height}
	if err := w32.AdjustWindowRectExForDpi(&rect, w32.WS_OVERLAPPEDWINDOW, false, 0, uint32(dpi)); err != nil {
		return err
	}

	return w32.SetWindowPos(
		w.hwnd, 0,
		0, 0,
		rect.Right-rect.Left, rect.Bottom-rect.Top,
		w32.SWP_NOMOVE,
	)
}

func (w *Window) checkThread() error {
	if windows.GetCurrentThreadId() != w.threadID {
		return ErrWrongThread
	}
	if w.destroyed {
		return ErrDestroyed
	}
	return nil
}

// Handle returns the native window handle, for interoperating with other
// Win32 APIs.
func (w *Window) Handle() w32.HWND {
	return w.hwnd
}

// Size returns the client-area size in device-independent pixels. The
// window chrome is in addition to this size.
func (w *Window) Size() Size {
	return w.size
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// SetTitle changes the window's title bar text.
func (w *Window) SetTitle(title string) error {
	if err := w.checkThread(); err != nil {
		return err
	}
	title16, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("invalid window title %q: %w", title, err)
	}
	if err := w32.SetWindowText(w.hwnd, title16); err != nil {
		return err
	}
	w.title = title
	return nil
}

// DPI returns the dots-per-inch value of the monitor hosting the window.
func (w *Window) DPI() DPI {
	return detectDPI(w.hwnd)
}

// CurrentTheme returns the theme most recently applied to the window.
func (w *Window) CurrentTheme() Theme {
	return w.theme
}

// SetTheme recolors the native title bar. This currently controls only the
// title bar, not the client area.
func (w *Window) SetTheme(theme Theme) error {
	if err := w.checkThread(); err != nil {
		return err
	}
	return w.applyTheme(theme)
}

func (w *Window) applyTheme(theme Theme) error {
	var dark int32
	if theme == ThemeDark {
		dark = 1
	}
	err := w32.DwmSetWindowAttribute(
		w.hwnd,
		w32.DWMWA_USE_IMMERSIVE_DARK_MODE,
		unsafe.Pointer(&dark),
		uint32(unsafe.Sizeof(dark)),
	)
	if err != nil {
		return err
	}
	w.theme = theme
	return nil
}

// IsRequestingClose reports whether the native side has asked for the
// window to close. The window is not actually closed until Destroy is
// called; the request can also be ignored and cleared.
func (w *Window) IsRequestingClose() bool {
	return w.closeRequest.Load()
}

// ClearCloseRequest clears a pending close request, either after acting on
// it or to ignore it.
func (w *Window) ClearCloseRequest() {
	w.closeRequest.Store(false)
}

// IsRequestingPaint reports whether the window needs painting. This
// package provides no drawing; the caller paints with GDI, Direct2D or
// Direct3D as appropriate.
func (w *Window) IsRequestingPaint() bool {
	return w.paintRequest.Load()
}

// ClearPaintRequest clears a pending paint request after painting, or to
// skip the paint.
func (w *Window) ClearPaintRequest() {
	w.paintRequest.Store(false)
}

// IsKeyPressed reports whether the key is currently held down in this
// window.
func (w *Window) IsKeyPressed(code keyboard.KeyCode) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.kb.IsKeyPressed(code)
}

// DrainInput takes all text typed into the window since the previous
// drain. Call once per update tick; the keyboard buffer is bounded and
// drops its oldest characters when full.
func (w *Window) DrainInput() keyboard.InputBuffer {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.kb.DrainInput()
}

// ResetKeyboard clears all of the window's keyboard state, for example
// after losing focus.
func (w *Window) ResetKeyboard() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.kb.Reset()
}

// Destroy closes the native window and releases its class registration.
// Further native operations fail with ErrDestroyed.
func (w *Window) Destroy() error {
	if err := w.checkThread(); err != nil {
		return err
	}
	w.logger.Debug("destroying window", "title", w.title)
	if err := w32.DestroyWindow(w.hwnd); err != nil {
		return err
	}
	return nil
}

// handleMessage processes one message for this window. It reports whether
// the message was fully handled; unhandled (or tapped) messages continue
// to the default window procedure.
func (w *Window) handleMessage(umsg uint32, wparam, lparam uintptr) bool {
	if keyboard.HandlesMessage(umsg) {
		if evt, ok := keyboard.EventFromMessage(umsg, wparam, lparam); ok {
			w.mu.Lock()
			w.kb.ProcessEvent(evt)
			w.mu.Unlock()
		}
		return true
	}

	switch umsg {
	case w32.WM_PAINT:
		w.paintRequest.Store(true)
		return false

	case w32.WM_CLOSE:
		w.closeRequest.Store(true)
		return true

	case w32.WM_NCDESTROY:
		w.logger.Debug("window destroyed", "title", w.title)
		// The native window is gone: drop the back-reference stored in its
		// user data and release our side.
		if _, err := w32.SetWindowLongPtr(w.hwnd, w32.GWLP_USERDATA, 0); err != nil {
			w.logger.Error("failed to clear window back-reference", "error", err)
		}
		w.handle.Delete()
		w.destroyed = true
		w.hwnd = 0
		w.class.release()
		return false

	default:
		return false
	}
}

// windowProc is the window procedure shared by all windows of this
// package. WM_NCCREATE carries the cgo handle of the owning Window in its
// creation parameters; it is stored in the native window's user data and
// resolved on every subsequent message.
func windowProc(hwnd w32.HWND, umsg uint32, wparam, lparam uintptr) uintptr {
	if umsg == w32.WM_NCCREATE {
		cs := (*w32.CREATESTRUCT)(unsafe.Pointer(lparam))
		if _, err := w32.SetWindowLongPtr(hwnd, w32.GWLP_USERDATA, cs.CreateParams); err != nil {
			slog.Error("failed to store window back-reference", "error", err)
		}
		return w32.DefWindowProc(hwnd, umsg, wparam, lparam)
	}

	ptr, err := w32.GetWindowLongPtr(hwnd, w32.GWLP_USERDATA)
	if err == nil && ptr != 0 {
		w := cgo.Handle(ptr).Value().(*Window)
		if w.handleMessage(umsg, wparam, lparam) {
			return 0
		}
	}

	return w32.DefWindowProc(hwnd, umsg, wparam, lparam)
}
