package keyboard

// KeystrokeFlags is the decoded form of the 32-bit metadata word that
// accompanies every keystroke and character message.
//
// Bitfield layout, per the Win32 keystroke message flags:
// https://learn.microsoft.com/en-us/windows/win32/inputdev/about-keyboard-input#keystroke-message-flags
type KeystrokeFlags struct {
	// IsKeyRelease is the transition state (bit 31): true if the key is
	// being released, false if it is being pressed.
	IsKeyRelease bool

	// WasPreviousStateDown is the previous key state (bit 30): true if the
	// key was already down before this message was sent. A key-down with
	// this set is an auto-repeat notification, not a fresh press.
	WasPreviousStateDown bool

	// IsAltPressed is the context code (bit 29): true if ALT was held when
	// the key was pressed. Always false for key-up messages.
	IsAltPressed bool

	// IsExtendedKey (bit 24) marks extended keys such as the right-hand
	// ALT and CTRL on enhanced keyboards.
	IsExtendedKey bool

	// ScanCode is the OEM-dependent hardware scan code (bits 16-23).
	ScanCode uint8

	// RepeatCount (bits 0-15) is the number of keystrokes represented by
	// this message as a result of the key being held. Not cumulative.
	RepeatCount uint16
}

// DecodeKeystrokeFlags extracts KeystrokeFlags from the raw 32-bit flags
// word. Total over all inputs: every bit pattern decodes, and the padding
// bits 25-28 are ignored. The same layout applies to key transition and
// character messages alike.
func DecodeKeystrokeFlags(bits uint32) KeystrokeFlags {
	return KeystrokeFlags{
		IsKeyRelease:         bits&(1<<31) != 0,
		WasPreviousStateDown: bits&(1<<30) != 0,
		IsAltPressed:         bits&(1<<29) != 0,
		IsExtendedKey:        bits&(1<<24) != 0,
		ScanCode:             uint8(bits >> 16),
		RepeatCount:          uint16(bits),
	}
}
