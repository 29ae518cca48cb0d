//go:build windows

package window

import "sash/internal/w32"

// detectDPI reads the DPI of the monitor hosting the window. Systems too
// old to report per-window DPI get the 96 DPI baseline.
func detectDPI(hwnd w32.HWND) DPI {
	if dpi := w32.GetDpiForWindow(hwnd); dpi != 0 {
		return DPI(dpi)
	}
	return BaseDPI
}
