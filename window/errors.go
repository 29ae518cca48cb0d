package window

import "errors"

var (
	// ErrNotSupported is returned on platforms without a native window
	// implementation.
	ErrNotSupported = errors.New("native windows are not supported on this platform")

	// ErrWrongThread is returned when a window is used from a thread other
	// than the one that created it.
	ErrWrongThread = errors.New("window used outside its owning thread")

	// ErrDestroyed is returned when operating on a window whose native
	// handle has already been destroyed.
	ErrDestroyed = errors.New("window has been destroyed")
)
