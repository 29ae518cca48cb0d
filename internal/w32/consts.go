// Package w32 holds the Win32 API surface used by sash.
//
// Message and virtual-key constants live in untagged files so that the
// keyboard adapter (and its tests) build on every platform. Anything that
// actually calls into user32/dwmapi is in *_windows.go files.
package w32

// Window messages.
//
// https://learn.microsoft.com/en-us/windows/win32/winmsg/about-messages-and-message-queues
const (
	WM_NCCREATE  = 0x0081
	WM_NCDESTROY = 0x0082
	WM_CLOSE     = 0x0010
	WM_DESTROY   = 0x0002
	WM_PAINT     = 0x000F

	WM_KEYDOWN    = 0x0100
	WM_KEYUP      = 0x0101
	WM_CHAR       = 0x0102
	WM_DEADCHAR   = 0x0103
	WM_SYSKEYDOWN = 0x0104
	WM_SYSKEYUP   = 0x0105
	WM_SYSCHAR    = 0x0106
)

// Virtual-key codes.
//
// https://learn.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
const (
	VK_BACK     = 0x08
	VK_TAB      = 0x09
	VK_RETURN   = 0x0D
	VK_SHIFT    = 0x10
	VK_CONTROL  = 0x11
	VK_MENU     = 0x12
	VK_PAUSE    = 0x13
	VK_CAPITAL  = 0x14
	VK_ESCAPE   = 0x1B
	VK_SPACE    = 0x20
	VK_PRIOR    = 0x21
	VK_NEXT     = 0x22
	VK_END      = 0x23
	VK_HOME     = 0x24
	VK_LEFT     = 0x25
	VK_UP       = 0x26
	VK_RIGHT    = 0x27
	VK_DOWN     = 0x28
	VK_SNAPSHOT = 0x2C
	VK_INSERT   = 0x2D
	VK_DELETE   = 0x2E

	// 0x30-0x39 are '0'-'9', 0x41-0x5A are 'A'-'Z'.

	VK_LWIN = 0x5B
	VK_RWIN = 0x5C
	VK_APPS = 0x5D

	VK_NUMPAD0   = 0x60
	VK_NUMPAD9   = 0x69
	VK_MULTIPLY  = 0x6A
	VK_ADD       = 0x6B
	VK_SEPARATOR = 0x6C
	VK_SUBTRACT  = 0x6D
	VK_DECIMAL   = 0x6E
	VK_DIVIDE    = 0x6F

	VK_F1  = 0x70
	VK_F12 = 0x7B

	VK_NUMLOCK = 0x90
	VK_SCROLL  = 0x91

	VK_LSHIFT   = 0xA0
	VK_RSHIFT   = 0xA1
	VK_LCONTROL = 0xA2
	VK_RCONTROL = 0xA3
	VK_LMENU    = 0xA4
	VK_RMENU    = 0xA5

	VK_OEM_1      = 0xBA // ';:' on US layouts
	VK_OEM_PLUS   = 0xBB
	VK_OEM_COMMA  = 0xBC
	VK_OEM_MINUS  = 0xBD
	VK_OEM_PERIOD = 0xBE
	VK_OEM_2      = 0xBF // '/?'
	VK_OEM_3      = 0xC0 // '`~'
	VK_OEM_4      = 0xDB // '[{'
	VK_OEM_5      = 0xDC // '\|'
	VK_OEM_6      = 0xDD // ']}'
	VK_OEM_7      = 0xDE // ''"'
)

// Window styles and related flags used when creating sash windows.
const (
	WS_OVERLAPPEDWINDOW = 0x00CF0000

	CW_USEDEFAULT = ^uintptr(0x7FFFFFFF) // 0x80000000, sign-extended

	SW_SHOWNORMAL = 1

	SWP_NOMOVE     = 0x0002
	SWP_NOZORDER   = 0x0004
	SWP_NOACTIVATE = 0x0010

	CS_HREDRAW = 0x0002
	CS_VREDRAW = 0x0001

	GWLP_USERDATA = -21

	HWND_MESSAGE = ^uintptr(2) // (HWND)-3

	IDC_ARROW = 32512

	IMAGE_ICON     = 1
	LR_DEFAULTSIZE = 0x0040

	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
)
