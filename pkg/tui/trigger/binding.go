// ABOUTME: Binding ties one field to a trigger config and a suggestion widget
// ABOUTME: HandleKey runs the arm/query loop; Select splices the chosen value in place

package trigger

import (
	"errors"
	"fmt"

	"github.com/mauromedda/autocomplete-trigger/internal/log"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/key"
)

// Binding is the handle returned by Attach. All state for the bound field
// lives here; two bindings never share state. A Binding is driven from a
// single event loop and is not safe for concurrent use.
type Binding struct {
	field     Field
	cfg       Config
	suggester Suggester
	arm       armState
	detached  bool
}

var _ Delegate = (*Binding)(nil)

// Attach binds field to cfg and hands the binding to s as its Delegate.
// s may be nil, in which case queries are tracked but not forwarded.
func Attach(field Field, cfg Config, s Suggester) (*Binding, error) {
	if field == nil {
		return nil, errors.New("trigger: attach: nil field")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("trigger: attach: %w", err)
	}

	b := &Binding{
		field:     field,
		cfg:       cfg,
		suggester: s,
		arm:       newArmState(cfg.Start),
	}
	if s != nil {
		s.Bind(b)
	}
	log.Debug("trigger: attached %T start=%q end=%q", field, cfg.Start, cfg.End)
	return b, nil
}

// Detach releases the field and the suggester. The binding is inert
// afterwards. Calling Detach on a nil or already detached binding is a no-op.
func (b *Binding) Detach() {
	if b == nil || b.detached {
		return
	}
	if b.suggester != nil {
		b.suggester.Close()
		b.suggester.Unbind()
	}
	log.Debug("trigger: detached %T", b.field)
	b.field = nil
	b.suggester = nil
	b.arm.disarm()
	b.detached = true
}

// HandleKey must be called after the field has processed k. Up and Down are
// reserved for the suggestion list and never affect the binding.
func (b *Binding) HandleKey(k key.Key) {
	if k.IsNavigation() {
		return
	}
	b.HandleChange()
}

// HandleChange re-reads the field and updates the arming state. Use it for
// edits that do not come from a key event, such as a paste.
func (b *Binding) HandleChange() {
	if b == nil || b.detached {
		return
	}

	text := b.field.Text()
	caret := caretOffset(b.field, text)
	was := b.arm.state

	query, emit := b.arm.observe(text, caret)

	switch {
	case was == Disarmed && b.arm.state == Armed:
		log.Debug("trigger: armed at offset %d", b.arm.anchor)
	case was == Armed && b.arm.state == Disarmed:
		log.Debug("trigger: disarmed, caret %d precedes trigger", caret)
		if b.suggester != nil {
			b.suggester.Close()
		}
	}

	if emit && b.suggester != nil {
		b.suggester.Search(query)
	}
}

// ShouldSearch reports whether the binding is armed.
func (b *Binding) ShouldSearch() bool {
	return b != nil && !b.detached && b.arm.state == Armed
}

// Select splices value into the field at the active trigger span, disarms,
// and collapses the selection right after the end delimiter. The field text
// is written exactly once. A disarmed binding ignores the call.
//
// If no trigger precedes the caret the field is left untouched, the binding
// disarms, and a *SpliceError is returned.
func (b *Binding) Select(value string) error {
	if b == nil || b.detached {
		return ErrDetached
	}
	if b.arm.state != Armed {
		log.Debug("trigger: select %q ignored while disarmed", value)
		return nil
	}

	text := b.field.Text()
	caret := caretOffset(b.field, text)

	res, err := Splice(text, caret, b.cfg, value)
	if err != nil {
		b.arm.disarm()
		log.Warn("trigger: %v", err)
		return err
	}

	b.field.SetText(res.Text)
	b.arm.disarm()
	b.field.SetSelection(res.Caret, res.Caret)
	return nil
}

// FocusHover always returns false: highlighting a suggestion must not
// replace the field text.
func (b *Binding) FocusHover(string) bool {
	return false
}

// State returns the current arming state.
func (b *Binding) State() State {
	if b == nil {
		return Disarmed
	}
	return b.arm.state
}

// Armed reports whether keystrokes are currently captured as a query.
func (b *Binding) Armed() bool {
	return b.State() == Armed
}

// Query returns the query derived on the last change event while armed.
func (b *Binding) Query() string {
	if b == nil {
		return ""
	}
	return b.arm.query
}

// Config returns the delimiters the binding was attached with.
func (b *Binding) Config() Config {
	if b == nil {
		return Config{}
	}
	return b.cfg
}

// Field returns the bound field, or nil after Detach.
func (b *Binding) Field() Field {
	if b == nil {
		return nil
	}
	return b.field
}

// Detached reports whether Detach has been called.
func (b *Binding) Detached() bool {
	return b == nil || b.detached
}
