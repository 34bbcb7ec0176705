// ABOUTME: Armed/Disarmed state machine deciding whether keystrokes are a query
// ABOUTME: Arms when the trigger ends at the caret; derives the query from the nearest trigger

package trigger

import (
	"strings"
	"unicode/utf8"
)

// State is the arming state of a binding.
type State int

const (
	// Disarmed: keystrokes are plain typing.
	Disarmed State = iota
	// Armed: text between the nearest trigger and the caret is a query.
	Armed
)

func (s State) String() string {
	switch s {
	case Disarmed:
		return "disarmed"
	case Armed:
		return "armed"
	}
	return "unknown"
}

type armState struct {
	start string
	state State
	// anchor is the rune offset of the trigger occurrence the current query
	// is measured from.
	anchor int
	query  string
}

func newArmState(start string) armState {
	return armState{start: start}
}

// observe applies one change event and returns the query to forward, if any.
func (a *armState) observe(text string, caret int) (query string, emit bool) {
	prefix := runePrefix(text, caret)

	if a.state == Disarmed {
		if !strings.HasSuffix(prefix, a.start) {
			return "", false
		}
		a.state = Armed
		a.anchor = utf8.RuneCountInString(prefix) - utf8.RuneCountInString(a.start)
		a.query = ""
		return "", true
	}

	anchor, q, ok := queryBefore(prefix, a.start)
	if !ok {
		// Caret moved in front of every trigger occurrence.
		a.disarm()
		return "", false
	}
	a.anchor = anchor
	a.query = q
	return q, true
}

func (a *armState) disarm() {
	a.state = Disarmed
	a.anchor = 0
	a.query = ""
}

// QueryAt returns the query for a caret at rune offset caret in text: the
// runes between the last occurrence of start before the caret and the caret.
// ok is false when no occurrence precedes the caret.
func QueryAt(text string, caret int, start string) (query string, ok bool) {
	if start == "" {
		return "", false
	}
	_, q, ok := queryBefore(runePrefix(text, caret), start)
	return q, ok
}

func queryBefore(prefix, start string) (anchor int, query string, ok bool) {
	i := strings.LastIndex(prefix, start)
	if i < 0 {
		return 0, "", false
	}
	return utf8.RuneCountInString(prefix[:i]), prefix[i+len(start):], true
}

// runePrefix returns text up to rune offset n, clamped to the text.
func runePrefix(text string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range text {
		if n == 0 {
			return text[:i]
		}
		n--
	}
	return text
}
