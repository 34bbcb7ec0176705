// ABOUTME: Core component interfaces shared by fields and the suggestion list
// ABOUTME: Components render lines into a RenderBuffer and consume parsed keys

package tui

import "github.com/mauromedda/autocomplete-trigger/pkg/tui/key"

// CursorMarker is a zero-width APC sequence that a focused component embeds
// in its render output where the caret sits. The host replaces it with its
// own cursor style (see RenderBuffer.ReplaceCursor).
const CursorMarker = "\x1b_tr:c\x07"

// Component is the base interface for renderable elements.
type Component interface {
	// Render writes the component's lines into out. Lines must not exceed
	// width visible columns.
	Render(out *RenderBuffer, width int)
}

// InputHandler consumes raw terminal input.
type InputHandler interface {
	HandleInput(data string)
}

// KeyHandler consumes an already parsed key.
type KeyHandler interface {
	HandleKey(k key.Key)
}
