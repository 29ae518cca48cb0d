package w32

import "fmt"

// Error records which Win32 function failed along with what the caller was
// doing at the time. The underlying system error (usually a syscall.Errno)
// is preserved for errors.Is/As.
type Error struct {
	// Proc is the name of the Win32 API function which failed.
	Proc string

	// Context describes what was happening at the time of the error.
	Context string

	// Err is the underlying system error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Context, e.Err, e.Proc)
	}
	return fmt.Sprintf("%v (%s)", e.Err, e.Proc)
}

// Unwrap returns the underlying system error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps a system error with the failing proc name and context.
func NewError(proc, context string, err error) *Error {
	return &Error{Proc: proc, Context: context, Err: err}
}
