// ABOUTME: Capability contracts between the trigger core, the bound text field,
// ABOUTME: and the suggestion widget (collaborator) it drives

package trigger

// Field is a plain text input the core can read and rewrite.
// Offsets are rune indexes into Text().
type Field interface {
	Text() string
	SetText(s string)
	// SetSelection sets the selection range; start == end collapses it to a caret.
	SetSelection(start, end int)
}

// OffsetCaret is the primary caret capability: the field reports the rune
// offset of its caret, or of the selection start when a range is selected.
type OffsetCaret interface {
	SelectionStart() int
}

// RowColCaret is the fallback capability for fields that only track a
// (row, column) cursor. The offset is derived from Text().
type RowColCaret interface {
	CursorPos() (row, col int)
}

// Delegate is what a Binding offers its Suggester.
type Delegate interface {
	// ShouldSearch is consulted before every suggestion fetch.
	ShouldSearch() bool
	// Select applies a confirmed suggestion to the field.
	Select(value string) error
	// FocusHover is called when a suggestion is merely highlighted. A false
	// return tells the widget not to write the value into the field.
	FocusHover(value string) bool
}

// Suggester is the suggestion widget driven by a Binding. Rendering,
// matching and list navigation are its concern.
type Suggester interface {
	// Bind is called once by Attach.
	Bind(d Delegate)
	// Search is called with the current query on every qualifying change
	// while the binding is armed. The query may be empty.
	Search(query string)
	// Close hides any open suggestions.
	Close()
	// Unbind is called by Detach; the widget must drop its Delegate.
	Unbind()
}
