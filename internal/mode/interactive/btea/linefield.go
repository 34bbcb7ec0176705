// ABOUTME: lineField adapts a bubbles textinput to the trigger Field contract
// ABOUTME: Caret comes from Position(), so bindings use the offset strategy

package btea

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui/trigger"
)

// lineField exposes a textinput.Model owned elsewhere. The pointer keeps the
// adapter valid across Bubble Tea's value copies of the app model.
type lineField struct {
	in *textinput.Model
}

var (
	_ trigger.Field       = (*lineField)(nil)
	_ trigger.OffsetCaret = (*lineField)(nil)
)

func newLineField(placeholder string) *lineField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 0
	return &lineField{in: &in}
}

func (f *lineField) Text() string { return f.in.Value() }

func (f *lineField) SetText(s string) { f.in.SetValue(s) }

// SetSelection moves the caret to start; textinput has no range selection.
func (f *lineField) SetSelection(start, _ int) { f.in.SetCursor(start) }

func (f *lineField) SelectionStart() int { return f.in.Position() }
