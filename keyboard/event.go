package keyboard

import (
	"fmt"

	"sash/internal/w32"
)

// EventKind discriminates the variants of KeyEvent.
type EventKind uint8

const (
	// KindKeyDown is a virtual-key press transition (or auto-repeat).
	KindKeyDown EventKind = iota + 1
	// KindKeyUp is a virtual-key release transition.
	KindKeyUp
	// KindInput is a committed text character, delivered as one UTF-16
	// code unit. Input events carry no key identity.
	KindInput
)

// String returns the kind's name.
func (k EventKind) String() string {
	switch k {
	case KindKeyDown:
		return "KeyDown"
	case KindKeyUp:
		return "KeyUp"
	case KindInput:
		return "Input"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// KeyEvent is a strongly-typed keyboard notification adapted from a raw
// window message. Events are transient: each is consumed once by
// Keyboard.ProcessEvent.
//
// Code is meaningful only for KindKeyDown/KindKeyUp; CodeUnit only for
// KindInput.
type KeyEvent struct {
	Kind     EventKind
	Code     KeyCode
	CodeUnit uint16
	Flags    KeystrokeFlags
}

// HandlesMessage reports whether the message identifier is a keyboard
// notification that EventFromMessage can adapt. This is the filter the
// window procedure applies before forwarding messages to the keyboard.
func HandlesMessage(umsg uint32) bool {
	switch umsg {
	case w32.WM_KEYDOWN, w32.WM_SYSKEYDOWN, w32.WM_KEYUP, w32.WM_SYSKEYUP, w32.WM_CHAR:
		return true
	default:
		return false
	}
}

// EventFromMessage adapts a raw window message into a KeyEvent.
//
// Key transitions whose virtual key falls outside the supported KeyCode
// table yield no event, as do message identifiers the keyboard does not
// handle. Character messages always adapt; the code unit is the low
// 16 bits of wparam.
func EventFromMessage(umsg uint32, wparam, lparam uintptr) (KeyEvent, bool) {
	flags := DecodeKeystrokeFlags(uint32(lparam))

	switch umsg {
	case w32.WM_KEYDOWN, w32.WM_SYSKEYDOWN:
		code, ok := KeyCodeFromVirtualKey(uint16(wparam))
		if !ok {
			return KeyEvent{}, false
		}
		return KeyEvent{Kind: KindKeyDown, Code: code, Flags: flags}, true

	case w32.WM_KEYUP, w32.WM_SYSKEYUP:
		code, ok := KeyCodeFromVirtualKey(uint16(wparam))
		if !ok {
			return KeyEvent{}, false
		}
		return KeyEvent{Kind: KindKeyUp, Code: code, Flags: flags}, true

	case w32.WM_CHAR:
		return KeyEvent{Kind: KindInput, CodeUnit: uint16(wparam), Flags: flags}, true

	default:
		return KeyEvent{}, false
	}
}
