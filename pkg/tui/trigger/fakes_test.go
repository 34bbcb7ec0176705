// ABOUTME: Test doubles for the trigger core: fields with each caret capability
// ABOUTME: and a suggester that records every call it receives

package trigger

import (
	"strings"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui/key"
)

// offsetField exposes the primary caret API.
type offsetField struct {
	text     []rune
	selStart int
	selEnd   int
	writes   int
}

func newOffsetField(text string) *offsetField {
	r := []rune(text)
	return &offsetField{text: r, selStart: len(r), selEnd: len(r)}
}

func (f *offsetField) Text() string { return string(f.text) }

func (f *offsetField) SetText(s string) {
	f.text = []rune(s)
	f.writes++
}

func (f *offsetField) SetSelection(start, end int) {
	f.selStart, f.selEnd = start, end
}

func (f *offsetField) SelectionStart() int { return min(f.selStart, f.selEnd) }

// typeRunes inserts s at the caret and notifies b after each rune, the way a
// host delivers one change event per keystroke.
func (f *offsetField) typeRunes(b *Binding, s string) {
	for _, r := range s {
		at := f.selStart
		f.text = append(f.text[:at], append([]rune{r}, f.text[at:]...)...)
		f.selStart, f.selEnd = at+1, at+1
		b.HandleKey(key.Rune(r))
	}
}

func (f *offsetField) backspace(b *Binding) {
	if at := f.selStart; at > 0 {
		f.text = append(f.text[:at-1], f.text[at:]...)
		f.selStart, f.selEnd = at-1, at-1
	}
	b.HandleKey(key.Key{Type: key.KeyBackspace})
}

func (f *offsetField) moveTo(b *Binding, offset int, k key.Key) {
	f.selStart, f.selEnd = offset, offset
	b.HandleKey(k)
}

// rowColField only reports a (row, col) cursor.
type rowColField struct {
	text   string
	offset int
}

func (f *rowColField) Text() string     { return f.text }
func (f *rowColField) SetText(s string) { f.text = s }

func (f *rowColField) SetSelection(start, _ int) { f.offset = start }

func (f *rowColField) CursorPos() (int, int) {
	before := []rune(f.text)[:f.offset]
	s := string(before)
	row := strings.Count(s, "\n")
	col := len([]rune(s[strings.LastIndex(s, "\n")+1:]))
	return row, col
}

// blindField has no caret capability at all.
type blindField struct{ text string }

func (f *blindField) Text() string          { return f.text }
func (f *blindField) SetText(s string)      { f.text = s }
func (f *blindField) SetSelection(int, int) {}

// recorder is a Suggester that logs calls.
type recorder struct {
	delegate Delegate
	searches []string
	closes   int
	unbinds  int
}

func (r *recorder) Bind(d Delegate)     { r.delegate = d }
func (r *recorder) Search(query string) { r.searches = append(r.searches, query) }
func (r *recorder) Close()              { r.closes++ }

func (r *recorder) Unbind() {
	r.delegate = nil
	r.unbinds++
}
