// Package window wraps native Win32 windows behind a safe Go API.
//
// A Window is created through a Builder, displayed at a size scaled to the
// monitor's DPI, and driven by the thread's message pump. The window owns a
// keyboard state machine fed from its window procedure; callers poll
// IsRequestingClose/IsRequestingPaint and drain keyboard input once per
// update tick.
//
// Win32 windows belong to the thread that created them. Methods that touch
// the native window verify they run on the creating thread and fail with
// ErrWrongThread otherwise; callers should lock the OS thread before
// building a window. On non-Windows platforms Build fails with
// ErrNotSupported.
package window
