package keyboard

import (
	"fmt"

	"sash/internal/w32"
)

// KeyCode identifies a key on the keyboard, independent of layout or
// modifier state. It is a closed set: virtual keys outside the supported
// table do not translate.
//
// The numeric value of a KeyCode indexes the pressed-key bitmap, so all
// values fit in 8 bits.
type KeyCode uint8

const (
	// KeyNone is the zero value and maps to no physical key.
	KeyNone KeyCode = iota

	// Letter keys.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Number-row digits.
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Numeric keypad.
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadMultiply
	KeyNumpadAdd
	KeyNumpadSeparator
	KeyNumpadSubtract
	KeyNumpadDecimal
	KeyNumpadDivide

	// Function keys.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Arrow keys.
	KeyLeft
	KeyUp
	KeyRight
	KeyDown

	// Navigation keys.
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete

	// Editing and whitespace keys.
	KeyBackspace
	KeyTab
	KeyEnter
	KeyEscape
	KeySpace

	// Modifier keys. Shift, Control and Alt are the side-agnostic codes
	// delivered by plain WM_KEYDOWN; the sided variants appear only when
	// the message source distinguishes them.
	KeyShift
	KeyControl
	KeyAlt
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyMenu

	// Lock and system keys.
	KeyCapsLock
	KeyNumLock
	KeyScrollLock
	KeyPause
	KeyPrintScreen

	// OEM punctuation keys, named for their US-layout legends.
	KeySemicolon
	KeyEqual
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeyGrave
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyApostrophe

	// keyCodeCount is one past the last valid KeyCode.
	keyCodeCount
)

// vkTable maps virtual keys with no contiguous range onto key codes.
// Letters, digits, numpad digits and function keys are translated
// arithmetically in KeyCodeFromVirtualKey.
var vkTable = map[uint16]KeyCode{
	w32.VK_BACK:     KeyBackspace,
	w32.VK_TAB:      KeyTab,
	w32.VK_RETURN:   KeyEnter,
	w32.VK_SHIFT:    KeyShift,
	w32.VK_CONTROL:  KeyControl,
	w32.VK_MENU:     KeyAlt,
	w32.VK_PAUSE:    KeyPause,
	w32.VK_CAPITAL:  KeyCapsLock,
	w32.VK_ESCAPE:   KeyEscape,
	w32.VK_SPACE:    KeySpace,
	w32.VK_PRIOR:    KeyPageUp,
	w32.VK_NEXT:     KeyPageDown,
	w32.VK_END:      KeyEnd,
	w32.VK_HOME:     KeyHome,
	w32.VK_LEFT:     KeyLeft,
	w32.VK_UP:       KeyUp,
	w32.VK_RIGHT:    KeyRight,
	w32.VK_DOWN:     KeyDown,
	w32.VK_SNAPSHOT: KeyPrintScreen,
	w32.VK_INSERT:   KeyInsert,
	w32.VK_DELETE:   KeyDelete,

	w32.VK_LWIN: KeyLeftSuper,
	w32.VK_RWIN: KeyRightSuper,
	w32.VK_APPS: KeyMenu,

	w32.VK_MULTIPLY:  KeyNumpadMultiply,
	w32.VK_ADD:       KeyNumpadAdd,
	w32.VK_SEPARATOR: KeyNumpadSeparator,
	w32.VK_SUBTRACT:  KeyNumpadSubtract,
	w32.VK_DECIMAL:   KeyNumpadDecimal,
	w32.VK_DIVIDE:    KeyNumpadDivide,

	w32.VK_NUMLOCK: KeyNumLock,
	w32.VK_SCROLL:  KeyScrollLock,

	w32.VK_LSHIFT:   KeyLeftShift,
	w32.VK_RSHIFT:   KeyRightShift,
	w32.VK_LCONTROL: KeyLeftControl,
	w32.VK_RCONTROL: KeyRightControl,
	w32.VK_LMENU:    KeyLeftAlt,
	w32.VK_RMENU:    KeyRightAlt,

	w32.VK_OEM_1:      KeySemicolon,
	w32.VK_OEM_PLUS:   KeyEqual,
	w32.VK_OEM_COMMA:  KeyComma,
	w32.VK_OEM_MINUS:  KeyMinus,
	w32.VK_OEM_PERIOD: KeyPeriod,
	w32.VK_OEM_2:      KeySlash,
	w32.VK_OEM_3:      KeyGrave,
	w32.VK_OEM_4:      KeyLeftBracket,
	w32.VK_OEM_5:      KeyBackslash,
	w32.VK_OEM_6:      KeyRightBracket,
	w32.VK_OEM_7:      KeyApostrophe,
}

// KeyCodeFromVirtualKey translates a Win32 virtual-key code into a KeyCode.
// The second return value is false for virtual keys outside the supported
// table, in which case no event should be produced for the key.
func KeyCodeFromVirtualKey(vk uint16) (KeyCode, bool) {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return KeyA + KeyCode(vk-'A'), true
	case vk >= '0' && vk <= '9':
		return Key0 + KeyCode(vk-'0'), true
	case vk >= w32.VK_NUMPAD0 && vk <= w32.VK_NUMPAD9:
		return KeyNumpad0 + KeyCode(vk-w32.VK_NUMPAD0), true
	case vk >= w32.VK_F1 && vk <= w32.VK_F12:
		return KeyF1 + KeyCode(vk-w32.VK_F1), true
	}
	code, ok := vkTable[vk]
	return code, ok
}

// keyNames covers the codes whose names cannot be derived arithmetically.
var keyNames = map[KeyCode]string{
	KeyNone:            "None",
	KeyNumpadMultiply:  "Numpad*",
	KeyNumpadAdd:       "Numpad+",
	KeyNumpadSeparator: "NumpadSeparator",
	KeyNumpadSubtract:  "Numpad-",
	KeyNumpadDecimal:   "Numpad.",
	KeyNumpadDivide:    "Numpad/",
	KeyLeft:            "Left",
	KeyUp:              "Up",
	KeyRight:           "Right",
	KeyDown:            "Down",
	KeyHome:            "Home",
	KeyEnd:             "End",
	KeyPageUp:          "PageUp",
	KeyPageDown:        "PageDown",
	KeyInsert:          "Insert",
	KeyDelete:          "Delete",
	KeyBackspace:       "Backspace",
	KeyTab:             "Tab",
	KeyEnter:           "Enter",
	KeyEscape:          "Escape",
	KeySpace:           "Space",
	KeyShift:           "Shift",
	KeyControl:         "Control",
	KeyAlt:             "Alt",
	KeyLeftShift:       "LeftShift",
	KeyRightShift:      "RightShift",
	KeyLeftControl:     "LeftControl",
	KeyRightControl:    "RightControl",
	KeyLeftAlt:         "LeftAlt",
	KeyRightAlt:        "RightAlt",
	KeyLeftSuper:       "LeftSuper",
	KeyRightSuper:      "RightSuper",
	KeyMenu:            "Menu",
	KeyCapsLock:        "CapsLock",
	KeyNumLock:         "NumLock",
	KeyScrollLock:      "ScrollLock",
	KeyPause:           "Pause",
	KeyPrintScreen:     "PrintScreen",
	KeySemicolon:       ";",
	KeyEqual:           "=",
	KeyComma:           ",",
	KeyMinus:           "-",
	KeyPeriod:          ".",
	KeySlash:           "/",
	KeyGrave:           "`",
	KeyLeftBracket:     "[",
	KeyBackslash:       `\`,
	KeyRightBracket:    "]",
	KeyApostrophe:      "'",
}

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return fmt.Sprintf("Numpad%c", '0'+k-KeyNumpad0)
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", uint8(k))
}

// AllKeyCodes returns every valid key code. Useful for exhaustive state
// checks in tests and diagnostics.
func AllKeyCodes() []KeyCode {
	codes := make([]KeyCode, 0, keyCodeCount-1)
	for k := KeyA; k < keyCodeCount; k++ {
		codes = append(codes, k)
	}
	return codes
}
