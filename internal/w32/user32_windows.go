//go:build windows

package w32

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procRegisterClassExW         = user32.NewProc("RegisterClassExW")
	procUnregisterClassW         = user32.NewProc("UnregisterClassW")
	procCreateWindowExW          = user32.NewProc("CreateWindowExW")
	procDestroyWindow            = user32.NewProc("DestroyWindow")
	procDefWindowProcW           = user32.NewProc("DefWindowProcW")
	procGetWindowLongPtrW        = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW        = user32.NewProc("SetWindowLongPtrW")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procShowWindow               = user32.NewProc("ShowWindow")
	procUpdateWindow             = user32.NewProc("UpdateWindow")
	procSetWindowTextW           = user32.NewProc("SetWindowTextW")
	procLoadCursorW              = user32.NewProc("LoadCursorW")
	procLoadImageW               = user32.NewProc("LoadImageW")
	procGetMessageW              = user32.NewProc("GetMessageW")
	procTranslateMessage         = user32.NewProc("TranslateMessage")
	procDispatchMessageW         = user32.NewProc("DispatchMessageW")
	procPostQuitMessage          = user32.NewProc("PostQuitMessage")
	procGetDpiForWindow          = user32.NewProc("GetDpiForWindow")
	procAdjustWindowRectExForDpi = user32.NewProc("AdjustWindowRectExForDpi")

	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

// errnoOr returns err if it carries a real errno, otherwise a fallback
// wrapping EINVAL. The lazy proc Call interface always returns a non-nil
// error value.
func errnoOr(err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno != 0 {
		return errno
	}
	return syscall.EINVAL
}

// RegisterClassEx registers a window class and returns its atom.
func RegisterClassEx(wc *WNDCLASSEX) (uint16, error) {
	r0, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(wc)))
	if r0 == 0 {
		return 0, NewError("RegisterClassExW", "failed to register window class", errnoOr(err))
	}
	return uint16(r0), nil
}

// UnregisterClass removes a window class registration.
func UnregisterClass(className *uint16, instance windows.Handle) error {
	r0, _, err := procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), uintptr(instance))
	if r0 == 0 {
		return NewError("UnregisterClassW", "failed to unregister window class", errnoOr(err))
	}
	return nil
}

// CreateWindowEx creates a window of a registered class.
func CreateWindowEx(exStyle uint32, className, windowName *uint16, style uint32, x, y, width, height uintptr, parent HWND, menu, instance windows.Handle, param uintptr) (HWND, error) {
	r0, _, err := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowName)),
		uintptr(style),
		x, y, width, height,
		uintptr(parent),
		uintptr(menu),
		uintptr(instance),
		param,
	)
	if r0 == 0 {
		return 0, NewError("CreateWindowExW", "failed to create window", errnoOr(err))
	}
	return HWND(r0), nil
}

// DestroyWindow destroys a window.
func DestroyWindow(hwnd HWND) error {
	r0, _, err := procDestroyWindow.Call(uintptr(hwnd))
	if r0 == 0 {
		return NewError("DestroyWindow", "failed to destroy window", errnoOr(err))
	}
	return nil
}

// DefWindowProc invokes the default window procedure.
func DefWindowProc(hwnd HWND, umsg uint32, wparam, lparam uintptr) uintptr {
	r0, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(umsg), wparam, lparam)
	return r0
}

// GetWindowLongPtr reads a value from the window's extra data.
//
// A zero return is ambiguous between "stored zero" and failure, so the
// last-error value is cleared first and consulted after, per the Win32
// contract for this function.
func GetWindowLongPtr(hwnd HWND, index int32) (uintptr, error) {
	windows.SetLastError(0)
	r0, _, err := procGetWindowLongPtrW.Call(uintptr(hwnd), uintptr(index))
	if r0 == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return 0, NewError("GetWindowLongPtrW", "failed to read window data", errno)
		}
	}
	return r0, nil
}

// SetWindowLongPtr stores a value in the window's extra data and returns the
// previous value.
func SetWindowLongPtr(hwnd HWND, index int32, value uintptr) (uintptr, error) {
	windows.SetLastError(0)
	r0, _, err := procSetWindowLongPtrW.Call(uintptr(hwnd), uintptr(index), value)
	if r0 == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return 0, NewError("SetWindowLongPtrW", "failed to store window data", errno)
		}
	}
	return r0, nil
}

// SetWindowPos changes the size, position and Z order of a window.
func SetWindowPos(hwnd, after HWND, x, y, cx, cy int32, flags uint32) error {
	r0, _, err := procSetWindowPos.Call(
		uintptr(hwnd), uintptr(after),
		uintptr(x), uintptr(y), uintptr(cx), uintptr(cy),
		uintptr(flags),
	)
	if r0 == 0 {
		return NewError("SetWindowPos", "failed to position window", errnoOr(err))
	}
	return nil
}

// ShowWindow sets the window's show state.
func ShowWindow(hwnd HWND, cmd int32) {
	procShowWindow.Call(uintptr(hwnd), uintptr(cmd))
}

// UpdateWindow forces an immediate WM_PAINT if the update region is non-empty.
func UpdateWindow(hwnd HWND) {
	procUpdateWindow.Call(uintptr(hwnd))
}

// SetWindowText sets the window's title bar text.
func SetWindowText(hwnd HWND, text *uint16) error {
	r0, _, err := procSetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(text)))
	if r0 == 0 {
		return NewError("SetWindowTextW", "failed to set window title", errnoOr(err))
	}
	return nil
}

// LoadCursor loads a standard system cursor.
func LoadCursor(id uintptr) (windows.Handle, error) {
	r0, _, err := procLoadCursorW.Call(0, id)
	if r0 == 0 {
		return 0, NewError("LoadCursorW", "failed to load cursor", errnoOr(err))
	}
	return windows.Handle(r0), nil
}

// LoadIcon loads an icon resource from the given module.
func LoadIcon(instance windows.Handle, resource uintptr) (windows.Handle, error) {
	r0, _, err := procLoadImageW.Call(uintptr(instance), resource, IMAGE_ICON, 0, 0, LR_DEFAULTSIZE)
	if r0 == 0 {
		return 0, NewError("LoadImageW", "failed to load icon", errnoOr(err))
	}
	return windows.Handle(r0), nil
}

// GetMessage retrieves the next message from the calling thread's queue,
// blocking until one is available. Returns false when WM_QUIT is received.
func GetMessage(msg *MSG) (bool, error) {
	r0, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, 0, 0)
	if int32(r0) == -1 {
		return false, NewError("GetMessageW", "message pump failure", errnoOr(err))
	}
	return int32(r0) != 0, nil
}

// TranslateMessage produces WM_CHAR messages from virtual-key messages.
func TranslateMessage(msg *MSG) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
}

// DispatchMessage routes a message to its window procedure.
func DispatchMessage(msg *MSG) {
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
}

// PostQuitMessage posts WM_QUIT to the calling thread's queue.
func PostQuitMessage(exitCode int32) {
	procPostQuitMessage.Call(uintptr(exitCode))
}

// GetDpiForWindow returns the DPI of the monitor hosting the window.
func GetDpiForWindow(hwnd HWND) uint32 {
	r0, _, _ := procGetDpiForWindow.Call(uintptr(hwnd))
	return uint32(r0)
}

// AdjustWindowRectExForDpi grows a desired client rect to the full window
// rect (including chrome) at the given DPI.
func AdjustWindowRectExForDpi(rect *RECT, style uint32, menu bool, exStyle, dpi uint32) error {
	var hasMenu uintptr
	if menu {
		hasMenu = 1
	}
	r0, _, err := procAdjustWindowRectExForDpi.Call(
		uintptr(unsafe.Pointer(rect)),
		uintptr(style), hasMenu, uintptr(exStyle), uintptr(dpi),
	)
	if r0 == 0 {
		return NewError("AdjustWindowRectExForDpi", "failed to calculate high-DPI window size", errnoOr(err))
	}
	return nil
}

// DwmSetWindowAttribute sets a Desktop Window Manager attribute.
func DwmSetWindowAttribute(hwnd HWND, attribute uint32, value unsafe.Pointer, size uint32) error {
	r0, _, _ := procDwmSetWindowAttribute.Call(uintptr(hwnd), uintptr(attribute), uintptr(value), uintptr(size))
	if r0 != 0 { // non-zero HRESULT is failure
		return NewError("DwmSetWindowAttribute", "failed to set window attribute", syscall.Errno(r0))
	}
	return nil
}
