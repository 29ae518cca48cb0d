//go:build windows

package w32

import "golang.org/x/sys/windows"

// HWND is a Win32 window handle.
type HWND = windows.Handle

// WndProc is the Win32 window procedure signature. Implementations are
// registered with the system via windows.NewCallback.
type WndProc func(hwnd HWND, umsg uint32, wparam, lparam uintptr) uintptr

// WNDCLASSEX mirrors the Win32 WNDCLASSEXW structure.
//
// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-wndclassexw
type WNDCLASSEX struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

// POINT mirrors the Win32 POINT structure.
type POINT struct {
	X int32
	Y int32
}

// RECT mirrors the Win32 RECT structure.
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// MSG mirrors the Win32 MSG structure used by the message pump.
type MSG struct {
	HWnd    HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

// CREATESTRUCT mirrors the Win32 CREATESTRUCTW structure delivered with
// WM_NCCREATE.
type CREATESTRUCT struct {
	CreateParams uintptr
	Instance     windows.Handle
	Menu         windows.Handle
	Parent       HWND
	Cy           int32
	Cx           int32
	Y            int32
	X            int32
	Style        int32
	Name         *uint16
	Class        *uint16
	ExStyle      uint32
}
