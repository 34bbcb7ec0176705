// ABOUTME: Single-line text input with a caret and an optional selection range
// ABOUTME: Exposes its caret as a rune offset, so trigger bindings read it directly

package component

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/key"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/trigger"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/width"
)

// Input is a single-line text field. The selection spans anchor..cursor;
// when both are equal there is no selection and the caret sits at cursor.
type Input struct {
	text        []rune
	cursor      int
	anchor      int
	placeholder string
	focused     bool
	scrollOff   int
}

var (
	_ trigger.Field       = (*Input)(nil)
	_ trigger.OffsetCaret = (*Input)(nil)
	_ tui.Component       = (*Input)(nil)
	_ tui.KeyHandler      = (*Input)(nil)
	_ tui.InputHandler    = (*Input)(nil)
)

// NewInput creates a new empty Input component.
func NewInput() *Input {
	return &Input{text: make([]rune, 0, 64)}
}

// Text returns the current input text.
func (inp *Input) Text() string {
	return string(inp.text)
}

// SetText replaces the text and collapses the caret at the end.
func (inp *Input) SetText(s string) {
	inp.text = []rune(s)
	inp.cursor = len(inp.text)
	inp.anchor = inp.cursor
}

// SetSelection selects the rune range start..end. Offsets are clamped to the
// text; start == end places the caret without a selection.
func (inp *Input) SetSelection(start, end int) {
	inp.anchor = inp.clamp(start)
	inp.cursor = inp.clamp(end)
}

// SelectionStart returns the lower end of the selection, which is the caret
// offset when nothing is selected.
func (inp *Input) SelectionStart() int {
	return min(inp.anchor, inp.cursor)
}

// SelectionEnd returns the upper end of the selection.
func (inp *Input) SelectionEnd() int {
	return max(inp.anchor, inp.cursor)
}

// HasSelection reports whether a non-empty range is selected.
func (inp *Input) HasSelection() bool {
	return inp.anchor != inp.cursor
}

// Cursor returns the moving end of the selection in runes.
func (inp *Input) Cursor() int {
	return inp.cursor
}

// SetPlaceholder sets the placeholder text shown when the input is empty.
func (inp *Input) SetPlaceholder(p string) {
	inp.placeholder = p
}

// SetFocused sets the focus state.
func (inp *Input) SetFocused(focused bool) {
	inp.focused = focused
}

// IsFocused returns the focus state.
func (inp *Input) IsFocused() bool {
	return inp.focused
}

// HandleInput processes raw terminal input. Multi-rune printable data is
// treated as a paste.
func (inp *Input) HandleInput(data string) {
	k := key.ParseKey(data)
	if k.Type == key.KeyUnknown && isPrintable(data) {
		inp.InsertText(data)
		return
	}
	inp.HandleKey(k)
}

// HandleKey processes a parsed key event.
func (inp *Input) HandleKey(k key.Key) {
	switch k.Type {
	case key.KeyRune:
		if k.Alt || k.Ctrl {
			return
		}
		inp.replaceSelection([]rune{k.Rune})
	case key.KeyBackspace:
		inp.backspace()
	case key.KeyDelete:
		inp.delete()
	case key.KeyLeft:
		inp.moveLeft(k.Shift)
	case key.KeyRight:
		inp.moveRight(k.Shift)
	case key.KeyHome, key.KeyCtrlA:
		inp.moveTo(0, k.Shift)
	case key.KeyEnd, key.KeyCtrlE:
		inp.moveTo(len(inp.text), k.Shift)
	case key.KeyCtrlK:
		inp.killToEnd()
	case key.KeyCtrlW:
		inp.deleteWordBackward()
	}
}

// InsertText replaces the selection with s. Control characters, including
// line breaks, are dropped.
func (inp *Input) InsertText(s string) {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return
	}
	inp.replaceSelection(runes)
}

func (inp *Input) replaceSelection(runes []rune) {
	start, end := inp.SelectionStart(), inp.SelectionEnd()
	next := make([]rune, 0, len(inp.text)-(end-start)+len(runes))
	next = append(next, inp.text[:start]...)
	next = append(next, runes...)
	next = append(next, inp.text[end:]...)
	inp.text = next
	inp.cursor = start + len(runes)
	inp.anchor = inp.cursor
}

func (inp *Input) deleteSelection() bool {
	if !inp.HasSelection() {
		return false
	}
	inp.replaceSelection(nil)
	return true
}

func (inp *Input) backspace() {
	if inp.deleteSelection() || inp.cursor == 0 {
		return
	}
	inp.text = append(inp.text[:inp.cursor-1], inp.text[inp.cursor:]...)
	inp.cursor--
	inp.anchor = inp.cursor
}

func (inp *Input) delete() {
	if inp.deleteSelection() || inp.cursor >= len(inp.text) {
		return
	}
	inp.text = append(inp.text[:inp.cursor], inp.text[inp.cursor+1:]...)
}

func (inp *Input) moveLeft(extend bool) {
	switch {
	case extend:
		inp.moveTo(inp.cursor-1, true)
	case inp.HasSelection():
		inp.moveTo(inp.SelectionStart(), false)
	default:
		inp.moveTo(inp.cursor-1, false)
	}
}

func (inp *Input) moveRight(extend bool) {
	switch {
	case extend:
		inp.moveTo(inp.cursor+1, true)
	case inp.HasSelection():
		inp.moveTo(inp.SelectionEnd(), false)
	default:
		inp.moveTo(inp.cursor+1, false)
	}
}

// moveTo moves the cursor; unless extend is set the anchor follows it.
func (inp *Input) moveTo(pos int, extend bool) {
	inp.cursor = inp.clamp(pos)
	if !extend {
		inp.anchor = inp.cursor
	}
}

func (inp *Input) killToEnd() {
	if inp.cursor >= len(inp.text) {
		return
	}
	inp.text = inp.text[:inp.cursor]
	inp.anchor = inp.cursor
}

func (inp *Input) deleteWordBackward() {
	if inp.deleteSelection() || inp.cursor == 0 {
		return
	}
	pos := inp.cursor - 1
	for pos > 0 && inp.text[pos] == ' ' {
		pos--
	}
	for pos > 0 && inp.text[pos-1] != ' ' {
		pos--
	}
	inp.text = append(inp.text[:pos], inp.text[inp.cursor:]...)
	inp.cursor = pos
	inp.anchor = pos
}

func (inp *Input) clamp(pos int) int {
	return max(0, min(pos, len(inp.text)))
}

// Render writes the input line into the buffer. A focused input embeds
// tui.CursorMarker at the caret and shows the selection in reverse video.
func (inp *Input) Render(out *tui.RenderBuffer, w int) {
	if len(inp.text) == 0 {
		switch {
		case inp.focused && inp.placeholder != "":
			out.WriteLine(tui.CursorMarker + "\x1b[2m" + width.TruncateToWidth(inp.placeholder, w) + "\x1b[0m")
		case inp.focused:
			out.WriteLine(tui.CursorMarker)
		default:
			out.WriteLine("")
		}
		return
	}

	if !inp.focused {
		out.WriteLine(width.TruncateToWidth(string(inp.text), w))
		return
	}

	inp.updateScrollOffset(w)

	selStart, selEnd := inp.SelectionStart(), inp.SelectionEnd()
	visibleEnd := min(inp.scrollOff+w-1, len(inp.text)) // leave room for the cursor cell

	var b strings.Builder
	inSel := false
	for i := inp.scrollOff; i < visibleEnd; i++ {
		if i == inp.cursor {
			b.WriteString(tui.CursorMarker)
		}
		if sel := i >= selStart && i < selEnd; sel != inSel {
			b.WriteString(reverseVideo(sel))
			inSel = sel
		}
		b.WriteRune(inp.text[i])
	}
	if inSel {
		b.WriteString(reverseVideo(false))
	}
	if inp.cursor >= visibleEnd {
		b.WriteString(tui.CursorMarker)
	}
	out.WriteLine(b.String())
}

func (inp *Input) updateScrollOffset(w int) {
	if w <= 1 {
		inp.scrollOff = inp.cursor
		return
	}
	if inp.cursor < inp.scrollOff {
		inp.scrollOff = inp.cursor
	}
	if inp.cursor > inp.scrollOff+w-1 {
		inp.scrollOff = inp.cursor - w + 1
	}
}

func reverseVideo(on bool) string {
	if on {
		return "\x1b[7m"
	}
	return "\x1b[27m"
}

func isPrintable(data string) bool {
	if data == "" || strings.ContainsRune(data, '\x1b') {
		return false
	}
	for _, r := range data {
		if r == utf8.RuneError || (unicode.IsControl(r) && !unicode.IsSpace(r)) {
			return false
		}
	}
	return true
}
