//go:build windows

package w32

import "golang.org/x/sys/windows"

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procHeapSetInformation = kernel32.NewProc("HeapSetInformation")
)

// HeapEnableTerminationOnCorruption asks the heap manager to terminate the
// process on heap corruption instead of continuing with damaged state.
const HeapEnableTerminationOnCorruption = 1

// EnableHeapProtection turns on terminate-on-corruption for every heap in
// the process. Once enabled it cannot be disabled. Returns false if the
// system does not support the request.
func EnableHeapProtection() bool {
	r0, _, _ := procHeapSetInformation.Call(0, HeapEnableTerminationOnCorruption, 0, 0)
	return r0 != 0
}
