//go:build windows

package window

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"sash/internal/w32"
)

// classRegistry tracks live Win32 window class registrations for the
// process. A class is registered the first time a window needs it and
// unregistered again when the last window using it is destroyed; a later
// window re-registers it lazily.
var classRegistry = struct {
	sync.Mutex
	classes map[string]*windowClass
}{classes: make(map[string]*windowClass)}

// windowClass is one refcounted Win32 window class registration.
type windowClass struct {
	name   string
	name16 *uint16
	refs   int
}

// wndProcPtr is the single native callback shared by every class this
// package registers. windows.NewCallback never releases its trampoline, so
// it is created exactly once.
var wndProcPtr = sync.OnceValue(func() uintptr {
	return windows.NewCallback(windowProc)
})

// acquireWindowClass returns a handle to an existing registration with the
// same name and icon, or registers the class with the system.
func acquireWindowClass(prefix string, iconID uint16, hasIcon bool) (*windowClass, error) {
	name := prefix
	if hasIcon {
		name = fmt.Sprintf("%s-%d", prefix, iconID)
	}

	classRegistry.Lock()
	defer classRegistry.Unlock()

	if c, ok := classRegistry.classes[name]; ok {
		c.refs++
		return c, nil
	}

	c, err := registerWindowClass(name, iconID, hasIcon)
	if err != nil {
		return nil, err
	}
	classRegistry.classes[name] = c
	return c, nil
}

func registerWindowClass(name string, iconID uint16, hasIcon bool) (*windowClass, error) {
	slog.Debug("registering window class", "class", name)

	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid window class name %q: %w", name, err)
	}

	module, err := windows.GetModuleHandle(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get module handle to register window class: %w", err)
	}

	cursor, err := w32.LoadCursor(w32.IDC_ARROW)
	if err != nil {
		return nil, err
	}

	var icon windows.Handle
	if hasIcon {
		// Icon resource identifiers are passed as integer atoms.
		icon, err = w32.LoadIcon(module, uintptr(iconID))
		if err != nil {
			return nil, err
		}
	}

	wc := w32.WNDCLASSEX{
		Style:     w32.CS_HREDRAW | w32.CS_VREDRAW,
		WndProc:   wndProcPtr(),
		Instance:  module,
		Icon:      icon,
		Cursor:    cursor,
		ClassName: name16,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))

	if _, err := w32.RegisterClassEx(&wc); err != nil {
		return nil, err
	}

	return &windowClass{name: name, name16: name16, refs: 1}, nil
}

// release drops one reference; the last reference unregisters the class
// with the system.
func (c *windowClass) release() {
	classRegistry.Lock()
	defer classRegistry.Unlock()

	c.refs--
	if c.refs > 0 {
		return
	}
	delete(classRegistry.classes, c.name)

	slog.Debug("unregistering window class", "class", c.name)

	module, err := windows.GetModuleHandle(nil)
	if err != nil {
		slog.Error("failed to get module handle to unregister window class", "class", c.name, "error", err)
		return
	}
	if err := w32.UnregisterClass(c.name16, module); err != nil {
		slog.Error("failed to unregister window class", "class", c.name, "error", err)
	}
}
