// ABOUTME: Converts Bubble Tea key messages into the key.Key events bindings consume
// ABOUTME: Multi-rune input (pastes) maps to KeyUnknown so the binding re-reads the field

package btea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui/key"
)

var teaKeyTypes = map[tea.KeyType]key.Key{
	tea.KeyEnter:      {Type: key.KeyEnter},
	tea.KeyTab:        {Type: key.KeyTab},
	tea.KeyShiftTab:   {Type: key.KeyBackTab, Shift: true},
	tea.KeyBackspace:  {Type: key.KeyBackspace},
	tea.KeyCtrlH:      {Type: key.KeyBackspace},
	tea.KeyDelete:     {Type: key.KeyDelete},
	tea.KeyUp:         {Type: key.KeyUp},
	tea.KeyDown:       {Type: key.KeyDown},
	tea.KeyLeft:       {Type: key.KeyLeft},
	tea.KeyRight:      {Type: key.KeyRight},
	tea.KeyShiftLeft:  {Type: key.KeyLeft, Shift: true},
	tea.KeyShiftRight: {Type: key.KeyRight, Shift: true},
	tea.KeyHome:       {Type: key.KeyHome},
	tea.KeyEnd:        {Type: key.KeyEnd},
	tea.KeyShiftHome:  {Type: key.KeyHome, Shift: true},
	tea.KeyShiftEnd:   {Type: key.KeyEnd, Shift: true},
	tea.KeyEsc:        {Type: key.KeyEscape},
	tea.KeyCtrlA:      {Type: key.KeyCtrlA, Ctrl: true},
	tea.KeyCtrlC:      {Type: key.KeyCtrlC, Ctrl: true},
	tea.KeyCtrlE:      {Type: key.KeyCtrlE, Ctrl: true},
	tea.KeyCtrlJ:      {Type: key.KeyCtrlJ, Ctrl: true},
	tea.KeyCtrlK:      {Type: key.KeyCtrlK, Ctrl: true},
	tea.KeyCtrlW:      {Type: key.KeyCtrlW, Ctrl: true},
}

// toKey converts a Bubble Tea key message.
func toKey(msg tea.KeyMsg) key.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Paste {
			return key.Key{Type: key.KeyRune, Rune: msg.Runes[0], Alt: msg.Alt}
		}
		return key.Key{Type: key.KeyUnknown}
	case tea.KeySpace:
		return key.Key{Type: key.KeyRune, Rune: ' ', Alt: msg.Alt}
	}
	if k, ok := teaKeyTypes[msg.Type]; ok {
		k.Alt = msg.Alt
		return k
	}
	return key.Key{Type: key.KeyUnknown}
}
