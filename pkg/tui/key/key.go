// ABOUTME: Defines the Key type and ParseKey for terminal keyboard input parsing.
// ABOUTME: Handles printable runes, control characters, and CSI/SS3 escape sequences.

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events a field can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyEscape                   // Escape
	KeyCtrlA                    // Ctrl+A
	KeyCtrlC                    // Ctrl+C
	KeyCtrlE                    // Ctrl+E
	KeyCtrlJ                    // Ctrl+J (line feed)
	KeyCtrlK                    // Ctrl+K
	KeyCtrlW                    // Ctrl+W
	KeyUnknown                  // Unrecognized input
)

var ctrlKeys = map[byte]Key{
	0x01: {Type: KeyCtrlA, Ctrl: true},
	0x03: {Type: KeyCtrlC, Ctrl: true},
	0x05: {Type: KeyCtrlE, Ctrl: true},
	0x0a: {Type: KeyCtrlJ, Ctrl: true},
	0x0b: {Type: KeyCtrlK, Ctrl: true},
	0x17: {Type: KeyCtrlW, Ctrl: true},
}

// ParseKey parses raw terminal input data into a Key.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// Rune builds a printable key event for r.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// IsNavigation reports whether the key is reserved for moving the highlight
// inside an open suggestion list.
func (k Key) IsNavigation() bool {
	return k.Type == KeyUp || k.Type == KeyDown
}

func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f, b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}

	if k, ok := ctrlKeys[b]; ok {
		return k
	}
	return Key{Type: KeyUnknown}
}

func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Alt+letter: ESC followed by a single printable byte
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyEscape:    "Escape",
	KeyCtrlA:     "Ctrl+A",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlE:     "Ctrl+E",
	KeyCtrlJ:     "Ctrl+J",
	KeyCtrlK:     "Ctrl+K",
	KeyCtrlW:     "Ctrl+W",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug logs.
func (k Key) String() string {
	if k.Type == KeyRune {
		if k.Alt {
			return fmt.Sprintf("Alt+%c", k.Rune)
		}
		return string(k.Rune)
	}
	name, ok := keyTypeNames[k.Type]
	if !ok {
		return "Unknown"
	}
	if k.Shift && k.Type != KeyBackTab {
		return "Shift+" + name
	}
	return name
}
