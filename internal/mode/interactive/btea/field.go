// ABOUTME: boundField pairs one editable field with its suggestion list and binding
// ABOUTME: Routes keys list-first, then field, then binding, and renders the field

package btea

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/component"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/trigger"
)

// boundField is one row of the form. Exactly one of line, input and area
// is set.
type boundField struct {
	label   string
	line    *lineField
	input   *component.Input
	area    *component.Textarea
	list    *component.SuggestionList
	binding *trigger.Binding
}

func (f *boundField) field() trigger.Field {
	switch {
	case f.line != nil:
		return f.line
	case f.input != nil:
		return f.input
	}
	return f.area
}

func (f *boundField) focus() tea.Cmd {
	switch {
	case f.line != nil:
		return f.line.in.Focus()
	case f.input != nil:
		f.input.SetFocused(true)
	default:
		f.area.SetFocused(true)
	}
	return nil
}

func (f *boundField) blur() {
	f.list.Close()
	switch {
	case f.line != nil:
		f.line.in.Blur()
	case f.input != nil:
		f.input.SetFocused(false)
	default:
		f.area.SetFocused(false)
	}
}

// handleKey delivers msg. It reports whether the suggestion list consumed it.
func (f *boundField) handleKey(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	k := toKey(msg)
	if f.list.HandleKey(k) {
		return true, nil
	}

	paste := (msg.Type == tea.KeyRunes && len(msg.Runes) > 1) || msg.Paste
	switch {
	case f.line != nil:
		*f.line.in, cmd = f.line.in.Update(msg)
	case f.input != nil && paste:
		f.input.InsertText(string(msg.Runes))
	case f.input != nil:
		f.input.HandleKey(k)
	case paste:
		f.area.InsertText(string(msg.Runes))
	default:
		f.area.HandleKey(k)
	}

	f.binding.HandleKey(k)
	return false, cmd
}

// view renders the field body; the cursor marker of Input and Textarea
// becomes a reverse-video cell.
func (f *boundField) view(width int) string {
	if f.line != nil {
		f.line.in.Width = max(width-1, 1)
		return f.line.in.View()
	}

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	if f.input != nil {
		f.input.Render(buf, width)
	} else {
		f.area.Render(buf, width)
	}
	buf.ReplaceCursor(drawCursor)
	return buf.String()
}

func (f *boundField) suggestionsView(width int) string {
	if !f.list.IsOpen() {
		return ""
	}
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	f.list.Render(buf, width)
	return buf.String()
}

// drawCursor reverses the rune after the marker. Before an escape sequence
// (placeholder dimming, selection end) it draws a blank cell and consumes
// nothing, so the sequence stays intact.
func drawCursor(next string) (string, int) {
	if next == "" || next[0] == 0x1b {
		return cursorStyle.Render(" "), 0
	}
	r, n := utf8.DecodeRuneInString(next)
	return cursorStyle.Render(string(r)), n
}
