package keyboard

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sash/internal/w32"
)

// winMsg is one captured window message: identifier plus both parameters.
type winMsg struct {
	umsg   uint32
	wparam uintptr
	lparam uintptr
}

// feedMessages runs a captured message stream through the adapter and the
// keyboard, skipping messages the keyboard does not handle, the same way
// the window procedure does.
func feedMessages(kb *Keyboard, msgs []winMsg) {
	for _, m := range msgs {
		if evt, ok := EventFromMessage(m.umsg, m.wparam, m.lparam); ok {
			kb.ProcessEvent(evt)
		}
	}
}

// typeText feeds a string as a sequence of input events, one UTF-16 code
// unit per event, as WM_CHAR delivers it.
func typeText(kb *Keyboard, s string) {
	for _, unit := range utf16.Encode([]rune(s)) {
		kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: unit})
	}
}

func keyDown(code KeyCode) KeyEvent {
	return KeyEvent{Kind: KindKeyDown, Code: code, Flags: KeystrokeFlags{RepeatCount: 1}}
}

func keyDownRepeat(code KeyCode) KeyEvent {
	return KeyEvent{
		Kind: KindKeyDown,
		Code: code,
		Flags: KeystrokeFlags{
			RepeatCount:          1,
			WasPreviousStateDown: true,
		},
	}
}

func keyUp(code KeyCode) KeyEvent {
	return KeyEvent{
		Kind: KindKeyUp,
		Code: code,
		Flags: KeystrokeFlags{
			RepeatCount:          1,
			WasPreviousStateDown: true,
			IsKeyRelease:         true,
		},
	}
}

// Captured streams for single-key presses, lparam values recorded from a
// live session.
var (
	pressReleaseA = []winMsg{
		{w32.WM_KEYDOWN, 0x41, 0x001E0001},
		{w32.WM_CHAR, 0x61, 0x001E0001},
		{w32.WM_KEYUP, 0x41, 0xC01E0001},
	}
	pressReleaseB = []winMsg{
		{w32.WM_KEYDOWN, 0x42, 0x00300001},
		{w32.WM_CHAR, 0x62, 0x00300001},
		{w32.WM_KEYUP, 0x42, 0xC0300001},
	}
	pressReleaseC = []winMsg{
		{w32.WM_KEYDOWN, 0x43, 0x002E0001},
		{w32.WM_CHAR, 0x63, 0x002E0001},
		{w32.WM_KEYUP, 0x43, 0xC02E0001},
	}
	pressReleaseBackspace = []winMsg{
		{w32.WM_KEYDOWN, 0x08, 0x000E0001},
		{w32.WM_CHAR, 0x08, 0x000E0001},
		{w32.WM_KEYUP, 0x08, 0xC00E0001},
	}
)

func TestPressRelease(t *testing.T) {
	kb := New()

	kb.ProcessEvent(keyDown(KeyA))
	assert.True(t, kb.IsKeyPressed(KeyA))
	assert.False(t, kb.IsKeyPressed(KeyB))

	kb.ProcessEvent(keyUp(KeyA))
	assert.False(t, kb.IsKeyPressed(KeyA))
}

func TestPressReleaseMessageStream(t *testing.T) {
	kb := New()

	feedMessages(kb, pressReleaseA)
	feedMessages(kb, pressReleaseB)
	feedMessages(kb, pressReleaseC)

	for _, code := range AllKeyCodes() {
		assert.False(t, kb.IsKeyPressed(code), "%s still pressed", code)
	}

	buf := kb.DrainInput()
	assert.Equal(t, 0, buf.NumBackspaces())
	assert.Equal(t, "abc", buf.String())
}

func TestAutoRepeatDoesNotPress(t *testing.T) {
	kb := New()

	// A repeat notification with no prior press leaves the key up.
	kb.ProcessEvent(keyDownRepeat(KeyA))
	assert.False(t, kb.IsKeyPressed(KeyA))

	// Repeats while held leave the key down.
	kb.ProcessEvent(keyDown(KeyA))
	kb.ProcessEvent(keyDownRepeat(KeyA))
	assert.True(t, kb.IsKeyPressed(KeyA))

	kb.ProcessEvent(keyUp(KeyA))
	kb.ProcessEvent(keyDownRepeat(KeyA))
	assert.False(t, kb.IsKeyPressed(KeyA))
}

func TestPressedStateInterleaved(t *testing.T) {
	kb := New()

	kb.ProcessEvent(keyDown(KeyA))
	kb.ProcessEvent(keyDown(KeyLeft))
	kb.ProcessEvent(keyDown(KeySpace))
	kb.ProcessEvent(keyDownRepeat(KeyLeft))
	kb.ProcessEvent(keyUp(KeyA))
	kb.ProcessEvent(keyDownRepeat(KeyLeft))

	assert.False(t, kb.IsKeyPressed(KeyA))
	assert.True(t, kb.IsKeyPressed(KeyLeft))
	assert.True(t, kb.IsKeyPressed(KeySpace))
}

func TestPressedBitmapSpansAllCodes(t *testing.T) {
	kb := New()
	for _, code := range AllKeyCodes() {
		kb.ProcessEvent(keyDown(code))
	}
	for _, code := range AllKeyCodes() {
		assert.True(t, kb.IsKeyPressed(code), "%s", code)
	}
	for _, code := range AllKeyCodes() {
		kb.ProcessEvent(keyUp(code))
	}
	for _, code := range AllKeyCodes() {
		assert.False(t, kb.IsKeyPressed(code), "%s", code)
	}
}

func TestTypedTextIsQueued(t *testing.T) {
	kb := New()
	typeText(kb, "Hello, world!")

	buf := kb.DrainInput()
	assert.Equal(t, 0, buf.NumBackspaces())
	assert.Equal(t, "Hello, world!", buf.String())
	assert.Equal(t, []rune("Hello, world!"), buf.Chars())
}

func TestDrainInputResets(t *testing.T) {
	kb := New()
	typeText(kb, "abc")

	assert.Equal(t, "abc", kb.DrainInput().String())

	second := kb.DrainInput()
	assert.Equal(t, 0, second.NumBackspaces())
	assert.Empty(t, second.Chars())
	assert.Equal(t, "", second.String())
}

func TestSurrogatePair(t *testing.T) {
	kb := New()

	// U+1D11E MUSICAL SYMBOL G CLEF as its two halves.
	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: 0xD834})
	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: 0xDD1E})

	assert.Equal(t, "\U0001D11E", kb.DrainInput().String())
}

func TestPendingSurrogateSurvivesDrain(t *testing.T) {
	kb := New()

	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: 0xD834})
	assert.Empty(t, kb.DrainInput().Chars())

	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: 0xDD1E})
	assert.Equal(t, "\U0001D11E", kb.DrainInput().String())
}

func TestLoneLowSurrogate(t *testing.T) {
	kb := New()

	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: 0xDD1E})
	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: uint16('m')})

	assert.Equal(t, "�m", kb.DrainInput().String())
}

func TestHighSurrogateWithInvalidSuccessor(t *testing.T) {
	kb := New()

	// The unit after a high surrogate is consumed by the pairing attempt;
	// an invalid pair collapses to one replacement character.
	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: 0xD834})
	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: uint16('a')})
	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: uint16('b')})

	assert.Equal(t, "�b", kb.DrainInput().String())
}

func TestMultipleSurrogatePairs(t *testing.T) {
	kb := New()
	typeText(kb, "a\U0001F44C\U0001D11Eb")
	assert.Equal(t, "a\U0001F44C\U0001D11Eb", kb.DrainInput().String())
}

func TestControlCharactersAreFiltered(t *testing.T) {
	kb := New()
	for _, unit := range []uint16{0x07, 0x1B, 0x7F, '\t', 'x', '\n', '\r'} {
		kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: unit})
	}
	assert.Equal(t, "\tx\n\r", kb.DrainInput().String())
}

func TestBackspaceWithinBuffer(t *testing.T) {
	kb := New()
	typeText(kb, "ab\x08c")

	buf := kb.DrainInput()
	assert.Equal(t, 0, buf.NumBackspaces())
	assert.Equal(t, "ac", buf.String())
}

func TestBackspaceOnEmptyBufferIsCounted(t *testing.T) {
	kb := New()
	typeText(kb, "\x08\x08")

	buf := kb.DrainInput()
	assert.Equal(t, 2, buf.NumBackspaces())
	assert.Empty(t, buf.Chars())
}

func TestBackspaceMessageStream(t *testing.T) {
	kb := New()

	feedMessages(kb, pressReleaseBackspace)
	feedMessages(kb, pressReleaseBackspace)
	feedMessages(kb, pressReleaseA)
	feedMessages(kb, pressReleaseB)
	feedMessages(kb, pressReleaseBackspace)
	feedMessages(kb, pressReleaseC)

	assert.False(t, kb.IsKeyPressed(KeyBackspace))

	buf := kb.DrainInput()
	assert.Equal(t, 2, buf.NumBackspaces())
	assert.Equal(t, "ac", buf.String())
}

func TestQueueTrimsOldestCharacters(t *testing.T) {
	kb := New()
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	typeText(kb, letters)

	buf := kb.DrainInput()
	assert.Equal(t, 0, buf.NumBackspaces())
	assert.Len(t, buf.Chars(), InputQueueCapacity-1)
	assert.Equal(t, "vwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", buf.String())
}

func TestQueueTrimNeverSplitsSurrogatePairs(t *testing.T) {
	kb := New()

	var sb strings.Builder
	for i := 0; i < 16; i++ {
		sb.WriteString("\U0001D11E\U0001F309")
		sb.WriteByte(byte('0' + i%10))
	}
	input := sb.String()
	typeText(kb, input)

	chars := kb.DrainInput().Chars()
	require.Len(t, chars, InputQueueCapacity-1)

	runes := []rune(input)
	assert.Equal(t, runes[len(runes)-(InputQueueCapacity-1):], chars)
	assert.NotContains(t, chars, rune(0xFFFD))
}

// Dead-key composition on a German layout: shift+quote produces a dead
// diaeresis (WM_DEADCHAR, not handled), then 'o' commits the combined
// character through a single WM_CHAR.
func TestDeadKeyUmlautMessageStream(t *testing.T) {
	kb := New()

	feedMessages(kb, []winMsg{
		{w32.WM_KEYDOWN, 0x10, 0x002A0001},
		{w32.WM_KEYDOWN, 0xDE, 0x00280001},
		{w32.WM_DEADCHAR, 0x22, 0x00280001},
		{w32.WM_KEYUP, 0xDE, 0xC0280001},
		{w32.WM_KEYUP, 0x10, 0xC02A0001},
		{w32.WM_KEYDOWN, 0x4F, 0x00180001},
		{w32.WM_CHAR, 0xF6, 0x00180001},
		{w32.WM_KEYUP, 0x4F, 0xC0180001},
	})

	assert.Equal(t, "ö", kb.DrainInput().String())
	for _, code := range AllKeyCodes() {
		assert.False(t, kb.IsKeyPressed(code), "%s still pressed", code)
	}
}

// Emoji picker input: the IME composition messages are not keyboard
// notifications, and the committed emoji arrives as two WM_CHAR code
// units forming a surrogate pair.
func TestEmojiMessageStream(t *testing.T) {
	const (
		wmGetIcon             = 0x007F
		wmImeStartComposition = 0x010D
		wmImeEndComposition   = 0x010E
		wmImeNotify           = 0x0282
		wmImeRequest          = 0x0288
	)

	kb := New()

	feedMessages(kb, []winMsg{
		{w32.WM_KEYDOWN, 0x5B, 0x015B0001},
		{wmImeNotify, 0x02, 0},
		{wmImeRequest, 0x06, 0},
		{wmImeStartComposition, 0, 0},
		{wmGetIcon, 0, 0},
		{w32.WM_KEYUP, 0xBE, 0xC0340001},
		{w32.WM_KEYUP, 0x5B, 0xC15B0001},
		{wmImeNotify, 0x10D, 0},
		{w32.WM_CHAR, 0xD83D, 0x00010001},
		{w32.WM_CHAR, 0xDC4C, 0x00010001},
		{wmImeEndComposition, 0, 0},
	})

	assert.Equal(t, "\U0001F44C", kb.DrainInput().String())
	for _, code := range AllKeyCodes() {
		assert.False(t, kb.IsKeyPressed(code), "%s still pressed", code)
	}
}

func TestReset(t *testing.T) {
	kb := New()

	kb.ProcessEvent(keyDown(KeySpace))
	typeText(kb, "\x08abc")
	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: 0xD834})

	kb.Reset()

	assert.False(t, kb.IsKeyPressed(KeySpace))
	buf := kb.DrainInput()
	assert.Equal(t, 0, buf.NumBackspaces())
	assert.Empty(t, buf.Chars())

	// The pending surrogate was discarded too: a low surrogate arriving
	// now has nothing to pair with.
	kb.ProcessEvent(KeyEvent{Kind: KindInput, CodeUnit: 0xDD1E})
	assert.Equal(t, "�", kb.DrainInput().String())
}
