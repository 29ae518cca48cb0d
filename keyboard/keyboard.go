package keyboard

import (
	"log/slog"
	"unicode"
	"unicode/utf16"
)

// InputQueueCapacity bounds the text input queue. Once the queue reaches
// this length the earliest characters are dropped, so callers should drain
// at least once per update tick to avoid loss.
const InputQueueCapacity = 32

const backspace = '\x08'

// surrogateSelf is the lowest low-surrogate code unit; units in
// [surrogateMin, surrogateSelf) are high surrogates.
const (
	surrogateMin  = 0xD800
	surrogateSelf = 0xDC00
	surrogateMax  = 0xE000
)

// Keyboard tracks key press state and buffered text input for one window.
//
// It is mutated exclusively through ProcessEvent and read through
// IsKeyPressed and DrainInput. All access must come from the window's
// owning thread; the type performs no internal locking.
type Keyboard struct {
	// pressed is a 256-slot bitmap indexed by KeyCode value.
	pressed [4]uint64

	// inputQueue holds committed characters, already resolved to valid
	// Unicode, in arrival order.
	inputQueue []rune

	// nBackspaces counts backspace events that arrived while the queue
	// was empty. Their deletions must be applied by the caller to text
	// drained previously.
	nBackspaces int

	// pendingSurrogate holds an unpaired UTF-16 high surrogate awaiting
	// its low partner. At most one is outstanding.
	pendingSurrogate    uint16
	hasPendingSurrogate bool

	logger *slog.Logger
}

// New constructs an empty keyboard.
//
// A window manages its own Keyboard automatically; constructing one
// directly is useful mainly for tests and custom message loops.
func New() *Keyboard {
	return &Keyboard{
		inputQueue: make([]rune, 0, InputQueueCapacity),
		logger:     slog.Default().With("component", "keyboard"),
	}
}

// ProcessEvent applies one adapted keyboard notification to the state.
// The effect becomes visible through the next IsKeyPressed or DrainInput
// call. It never fails: malformed surrogate input degrades to U+FFFD.
func (k *Keyboard) ProcessEvent(evt KeyEvent) {
	switch evt.Kind {
	case KindKeyDown:
		// Auto-repeat notifications are not new presses.
		if !evt.Flags.WasPreviousStateDown {
			k.setPressed(evt.Code, true)
		}
	case KindKeyUp:
		k.setPressed(evt.Code, false)
	case KindInput:
		k.processCodeUnit(evt.CodeUnit)
	}
}

// IsKeyPressed reports whether the key is currently held down.
func (k *Keyboard) IsKeyPressed(code KeyCode) bool {
	return k.pressed[code>>6]&(1<<(code&63)) != 0
}

// DrainInput removes all buffered text and takes the pending backspace
// count, resetting both.
//
// The caller must apply NumBackspaces deletions to its previously drained
// text before appending the new characters; backspaces that arrived while
// characters were still queued have already been applied to the buffer.
func (k *Keyboard) DrainInput() InputBuffer {
	buf := InputBuffer{
		nBackspaces: k.nBackspaces,
		chars:       k.inputQueue,
	}
	k.nBackspaces = 0
	k.inputQueue = make([]rune, 0, InputQueueCapacity)
	return buf
}

// Reset clears all keyboard state: press bits, queued text, the pending
// surrogate and the pending backspace count.
func (k *Keyboard) Reset() {
	k.pressed = [4]uint64{}
	k.inputQueue = k.inputQueue[:0]
	k.nBackspaces = 0
	k.hasPendingSurrogate = false
	k.pendingSurrogate = 0
}

func (k *Keyboard) setPressed(code KeyCode, down bool) {
	if down {
		k.pressed[code>>6] |= 1 << (code & 63)
	} else {
		k.pressed[code>>6] &^= 1 << (code & 63)
	}
}

// processCodeUnit resolves one UTF-16 code unit into a character, holding
// high surrogates until their low partner arrives.
func (k *Keyboard) processCodeUnit(unit uint16) {
	if k.hasPendingSurrogate {
		high := rune(k.pendingSurrogate)
		k.hasPendingSurrogate = false
		// DecodeRune yields U+FFFD for any invalid pairing; there is no
		// recourse for recovery at this point, so the replacement
		// character stands in for the broken sequence.
		k.processChars(utf16.DecodeRune(high, rune(unit)))
		return
	}

	r := rune(unit)
	switch {
	case r >= surrogateMin && r < surrogateSelf:
		// High surrogate: wait for the following low surrogate.
		k.pendingSurrogate = unit
		k.hasPendingSurrogate = true
	case r >= surrogateSelf && r < surrogateMax:
		// A low surrogate with no preceding high half cannot pair.
		k.processChars(unicode.ReplacementChar)
	default:
		k.processChars(r)
	}
}

// processChars applies resolved characters to the input queue, accounting
// for backspace, and trims the queue back under capacity.
func (k *Keyboard) processChars(chars ...rune) {
	for _, c := range chars {
		switch {
		case c == backspace:
			if n := len(k.inputQueue); n > 0 {
				k.inputQueue = k.inputQueue[:n-1]
			} else {
				// Deletion applies to text the caller already drained.
				k.nBackspaces++
			}
		case unicode.IsControl(c) && !unicode.IsSpace(c):
			// Non-whitespace control characters are not text.
		default:
			k.inputQueue = append(k.inputQueue, c)
		}
	}

	// Trim the queue to avoid growing continuously if the caller is not
	// draining.
	for len(k.inputQueue) >= InputQueueCapacity {
		dropped := k.inputQueue[0]
		k.inputQueue = k.inputQueue[1:]
		k.logger.Debug("trimming keyboard input queue", "dropped", string(dropped))
	}
}

// InputBuffer is the result of Keyboard.DrainInput: the drained characters
// plus the number of backspace events that preceded them.
type InputBuffer struct {
	nBackspaces int
	chars       []rune
}

// NumBackspaces is the number of backspaces which preceded any text in
// Chars and which should be applied to previously drained input. Backspace
// events that occurred within the buffer are already reflected in Chars.
func (b InputBuffer) NumBackspaces() int {
	return b.nBackspaces
}

// Chars returns the drained characters in arrival order. The returned
// slice is owned by the caller.
func (b InputBuffer) Chars() []rune {
	return b.chars
}

// String returns the drained characters as a string.
func (b InputBuffer) String() string {
	return string(b.chars)
}
