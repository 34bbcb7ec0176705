// ABOUTME: Multi-line text area that reports its caret only as (row, col)
// ABOUTME: Trigger bindings convert that position to a rune offset themselves

package component

import (
	"slices"
	"strings"
	"unicode"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/key"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/trigger"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/width"
)

// Textarea is a multi-line text field with word-wrapped rendering.
// It has no selection: SetSelection only moves the caret.
// Not safe for concurrent use; the host edits and renders it from its event
// goroutine.
type Textarea struct {
	lines       [][]rune
	row         int
	col         int
	focused     bool
	placeholder string
}

var (
	_ trigger.Field       = (*Textarea)(nil)
	_ trigger.RowColCaret = (*Textarea)(nil)
	_ tui.Component       = (*Textarea)(nil)
	_ tui.KeyHandler      = (*Textarea)(nil)
	_ tui.InputHandler    = (*Textarea)(nil)
)

// NewTextarea creates a new empty Textarea.
func NewTextarea() *Textarea {
	return &Textarea{lines: [][]rune{{}}}
}

// Text returns the full content with newline separators.
func (ta *Textarea) Text() string {
	parts := make([]string, len(ta.lines))
	for i, line := range ta.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// SetText replaces the content and moves the caret to the end. Lines split
// on '\n' only; any other rune, '\r' included, is kept so Text returns s
// unchanged and rune offsets into s stay valid.
func (ta *Textarea) SetText(s string) {
	raw := strings.Split(s, "\n")
	ta.lines = make([][]rune, len(raw))
	for i, l := range raw {
		ta.lines[i] = []rune(l)
	}
	ta.row = len(ta.lines) - 1
	ta.col = len(ta.lines[ta.row])
}

// CursorPos returns the caret as (row, col), both zero-based, col in runes.
func (ta *Textarea) CursorPos() (int, int) {
	return ta.row, ta.col
}

// SetSelection places the caret at rune offset end, counting one rune per
// line break. Offsets outside the text are clamped.
func (ta *Textarea) SetSelection(_, end int) {
	ta.row, ta.col = ta.rowCol(end)
}

func (ta *Textarea) rowCol(offset int) (int, int) {
	if offset <= 0 {
		return 0, 0
	}
	for row, line := range ta.lines {
		if offset <= len(line) {
			return row, offset
		}
		offset -= len(line) + 1
	}
	last := len(ta.lines) - 1
	return last, len(ta.lines[last])
}

// LineCount returns the number of logical lines.
func (ta *Textarea) LineCount() int {
	return len(ta.lines)
}

// SetPlaceholder sets dim hint text shown when the area is empty and focused.
func (ta *Textarea) SetPlaceholder(p string) {
	ta.placeholder = p
}

// SetFocused sets the focus state.
func (ta *Textarea) SetFocused(focused bool) {
	ta.focused = focused
}

// IsFocused returns the focus state.
func (ta *Textarea) IsFocused() bool {
	return ta.focused
}

// HandleInput processes raw terminal input data. Multi-rune printable data
// is treated as a paste and may contain line breaks.
func (ta *Textarea) HandleInput(data string) {
	k := key.ParseKey(data)
	if k.Type == key.KeyUnknown && isPrintable(data) {
		ta.InsertText(data)
		return
	}
	ta.HandleKey(k)
}

// HandleKey processes an already-parsed key event.
func (ta *Textarea) HandleKey(k key.Key) {
	switch k.Type {
	case key.KeyRune:
		if !k.Alt && !k.Ctrl {
			ta.insertRunes([]rune{k.Rune})
		}
	case key.KeyEnter, key.KeyCtrlJ:
		ta.insertNewline()
	case key.KeyBackspace:
		ta.backspace()
	case key.KeyDelete:
		ta.delete()
	case key.KeyLeft:
		ta.moveLeft()
	case key.KeyRight:
		ta.moveRight()
	case key.KeyUp:
		ta.moveVertical(-1)
	case key.KeyDown:
		ta.moveVertical(1)
	case key.KeyHome, key.KeyCtrlA:
		ta.col = 0
	case key.KeyEnd, key.KeyCtrlE:
		ta.col = len(ta.lines[ta.row])
	case key.KeyCtrlK:
		ta.killToEnd()
	}
}

// InsertText inserts s at the caret, splitting lines on '\n'. Other control
// characters are dropped.
func (ta *Textarea) InsertText(s string) {
	for i, part := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if i > 0 {
			ta.insertNewline()
		}
		runes := make([]rune, 0, len(part))
		for _, r := range part {
			if !unicode.IsControl(r) {
				runes = append(runes, r)
			}
		}
		if len(runes) > 0 {
			ta.insertRunes(runes)
		}
	}
}

func (ta *Textarea) insertRunes(runes []rune) {
	line := ta.lines[ta.row]
	next := make([]rune, 0, len(line)+len(runes))
	next = append(next, line[:ta.col]...)
	next = append(next, runes...)
	next = append(next, line[ta.col:]...)
	ta.lines[ta.row] = next
	ta.col += len(runes)
}

func (ta *Textarea) insertNewline() {
	line := ta.lines[ta.row]
	before := append([]rune(nil), line[:ta.col]...)
	after := append([]rune(nil), line[ta.col:]...)

	lines := make([][]rune, 0, len(ta.lines)+1)
	lines = append(lines, ta.lines[:ta.row]...)
	lines = append(lines, before, after)
	lines = append(lines, ta.lines[ta.row+1:]...)
	ta.lines = lines

	ta.row++
	ta.col = 0
}

func (ta *Textarea) backspace() {
	if ta.col > 0 {
		line := ta.lines[ta.row]
		ta.lines[ta.row] = append(line[:ta.col-1], line[ta.col:]...)
		ta.col--
		return
	}
	if ta.row == 0 {
		return
	}
	// Join with the previous line.
	prevLen := len(ta.lines[ta.row-1])
	ta.lines[ta.row-1] = append(ta.lines[ta.row-1], ta.lines[ta.row]...)
	ta.lines = append(ta.lines[:ta.row], ta.lines[ta.row+1:]...)
	ta.row--
	ta.col = prevLen
}

func (ta *Textarea) delete() {
	line := ta.lines[ta.row]
	if ta.col < len(line) {
		ta.lines[ta.row] = append(line[:ta.col], line[ta.col+1:]...)
		return
	}
	if ta.row >= len(ta.lines)-1 {
		return
	}
	ta.lines[ta.row] = append(ta.lines[ta.row], ta.lines[ta.row+1]...)
	ta.lines = append(ta.lines[:ta.row+1], ta.lines[ta.row+2:]...)
}

func (ta *Textarea) moveLeft() {
	if ta.col > 0 {
		ta.col--
	} else if ta.row > 0 {
		ta.row--
		ta.col = len(ta.lines[ta.row])
	}
}

func (ta *Textarea) moveRight() {
	if ta.col < len(ta.lines[ta.row]) {
		ta.col++
	} else if ta.row < len(ta.lines)-1 {
		ta.row++
		ta.col = 0
	}
}

func (ta *Textarea) moveVertical(delta int) {
	row := ta.row + delta
	if row < 0 || row >= len(ta.lines) {
		return
	}
	ta.row = row
	ta.col = min(ta.col, len(ta.lines[row]))
}

func (ta *Textarea) killToEnd() {
	line := ta.lines[ta.row]
	if ta.col >= len(line) {
		return
	}
	ta.lines[ta.row] = line[:ta.col]
}

// Render writes the content into the buffer, wrapping long lines. A focused
// area embeds tui.CursorMarker at the caret.
func (ta *Textarea) Render(out *tui.RenderBuffer, w int) {
	if w <= 0 {
		return
	}

	if ta.focused && len(ta.lines) == 1 && len(ta.lines[0]) == 0 && ta.placeholder != "" {
		out.WriteLine(tui.CursorMarker + "\x1b[2m" + width.TruncateToWidth(ta.placeholder, w-1) + "\x1b[0m")
		return
	}

	// One column stays free so a caret at the end of a full row still fits.
	ew := max(w-1, 1)
	for i, line := range ta.lines {
		segments := width.WrapRunes(displayRunes(line), ew)
		if !ta.focused || i != ta.row {
			for _, seg := range segments {
				out.WriteLine(string(seg))
			}
			continue
		}

		col, placed := ta.col, false
		for si, seg := range segments {
			last := si == len(segments)-1
			if placed || col > len(seg) || (col == len(seg) && !last) {
				col -= len(seg)
				out.WriteLine(string(seg))
				continue
			}
			out.WriteLine(string(seg[:col]) + tui.CursorMarker + string(seg[col:]))
			placed = true
		}
	}
}

// displayRunes replaces control runes kept by SetText with spaces. The
// result has the same length as line, so caret columns still apply.
func displayRunes(line []rune) []rune {
	if !slices.ContainsFunc(line, unicode.IsControl) {
		return line
	}
	out := slices.Clone(line)
	for i, r := range out {
		if unicode.IsControl(r) {
			out[i] = ' '
		}
	}
	return out
}
