//go:build windows

package window

import "sash/internal/w32"

// EnableHeapProtection enables the process-wide terminate-on-corruption
// heap feature. If the heap manager later detects corruption in any heap
// the process is terminated rather than left running with damaged state.
// Once enabled the feature cannot be disabled.
//
// Returns false if the OS could not honor the request.
func EnableHeapProtection() bool {
	return w32.EnableHeapProtection()
}
