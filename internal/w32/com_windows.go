//go:build windows

package w32

import (
	"syscall"

	"golang.org/x/sys/windows"
)

var (
	ole32 = windows.NewLazySystemDLL("ole32.dll")

	procCoInitializeEx = ole32.NewProc("CoInitializeEx")
	procCoUninitialize = ole32.NewProc("CoUninitialize")
)

// COINIT_APARTMENTTHREADED selects a single-threaded apartment, the model
// windowed applications use.
const COINIT_APARTMENTTHREADED = 0x2

// CoInitializeEx initializes the COM library on the calling thread.
// S_FALSE (the library was already initialized on this thread) is treated
// as success; the matching CoUninitialize is still required.
func CoInitializeEx(coInit uint32) error {
	hr, _, _ := procCoInitializeEx.Call(0, uintptr(coInit))
	// 0 is S_OK, 1 is S_FALSE.
	if hr != 0 && hr != 1 {
		return NewError("CoInitializeEx", "failed to initialize COM library", syscall.Errno(hr))
	}
	return nil
}

// CoUninitialize closes the COM library on the calling thread.
func CoUninitialize() {
	procCoUninitialize.Call()
}
