//go:build !windows

package window

// Window is not available on this platform.
type Window struct{}

func newWindow(*Builder) (*Window, error) {
	return nil, ErrNotSupported
}

// PumpMessage is not available on this platform.
func PumpMessage() (bool, error) {
	return false, ErrNotSupported
}
