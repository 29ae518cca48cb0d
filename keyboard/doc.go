// Package keyboard tracks keyboard press state and text input for a window.
//
// Windows communicates keyboard changes by posting messages to the owning
// thread's queue. Most applications are not prepared to act on those
// messages at the moment they arrive: a typical update loop has a
// well-defined point where key state is examined and pending text is
// consumed. This package buffers both concerns so they can be queried on
// the application's own schedule:
//
//   - Press state: a persistent view of which keys are currently held,
//     queryable at any time via Keyboard.IsKeyPressed.
//   - Text input: committed characters accumulate in a bounded queue and
//     are consumed with Keyboard.DrainInput.
//
// Text input has no 1:1 relationship with virtual-key events. Keyboard
// layouts, dead keys and IME composition all mean the same physical keys
// can produce different committed text, so the two streams are tracked
// independently.
//
// Committed characters arrive as UTF-16 code units with no validity
// guarantee. Characters outside the Basic Multilingual Plane arrive as a
// surrogate pair split across two messages; the high half is held
// internally until its partner arrives, and anything unpairable degrades
// to U+FFFD rather than producing invalid text. Draining therefore always
// yields well-formed Unicode.
//
// A Keyboard is not safe for concurrent use. It is owned by the thread
// that pumps its window's messages; the window wrapper serializes access.
package keyboard
