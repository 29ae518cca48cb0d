//go:build windows

package window

import "sash/internal/w32"

// PumpMessage blocks until the calling thread's queue delivers a message,
// then translates and dispatches it. It returns false once the quit
// message arrives, ending the loop:
//
//	for {
//		more, err := window.PumpMessage()
//		if err != nil || !more {
//			break
//		}
//		// poll close/paint requests, drain input
//	}
//
// Must run on the thread that created the windows being pumped.
func PumpMessage() (bool, error) {
	var msg w32.MSG
	more, err := w32.GetMessage(&msg)
	if err != nil || !more {
		return false, err
	}
	w32.TranslateMessage(&msg)
	w32.DispatchMessage(&msg)
	return true, nil
}

// Quit posts the quit message to the calling thread's queue, making the
// next PumpMessage call return false.
func Quit(exitCode int32) {
	w32.PostQuitMessage(exitCode)
}
