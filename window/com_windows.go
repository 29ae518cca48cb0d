//go:build windows

package window

import (
	"log/slog"
	"sync"

	"golang.org/x/sys/windows"

	"sash/internal/w32"
)

// comRefs counts outstanding apartment handles per thread, so the COM
// library is initialized once per thread and uninitialized when the last
// handle is released.
var comRefs = struct {
	sync.Mutex
	byThread map[uint32]int
}{byThread: make(map[uint32]int)}

// ComApartment keeps the COM library initialized for one thread, using the
// apartment-threaded concurrency model windowed applications require.
//
// Acquire one per thread that uses COM objects, ideally right after
// locking the OS thread, and release it before the thread exits. Repeated
// acquisition from the same thread is cheap and refcounted.
type ComApartment struct {
	threadID uint32
	released bool
}

// AcquireComApartment initializes the COM library for the calling thread
// if this is the thread's first outstanding handle.
func AcquireComApartment() (*ComApartment, error) {
	tid := windows.GetCurrentThreadId()

	comRefs.Lock()
	defer comRefs.Unlock()

	if comRefs.byThread[tid] == 0 {
		slog.Debug("initializing COM library", "thread", tid)
		if err := w32.CoInitializeEx(w32.COINIT_APARTMENTTHREADED); err != nil {
			return nil, err
		}
	}
	comRefs.byThread[tid]++
	return &ComApartment{threadID: tid}, nil
}

// Release drops the handle; the thread's last release uninitializes the
// COM library. Must be called on the acquiring thread.
func (a *ComApartment) Release() error {
	if windows.GetCurrentThreadId() != a.threadID {
		return ErrWrongThread
	}
	if a.released {
		return nil
	}
	a.released = true

	comRefs.Lock()
	defer comRefs.Unlock()

	comRefs.byThread[a.threadID]--
	if comRefs.byThread[a.threadID] == 0 {
		delete(comRefs.byThread, a.threadID)
		slog.Debug("uninitializing COM library", "thread", a.threadID)
		w32.CoUninitialize()
	}
	return nil
}
