// ABOUTME: Sentinel errors for the trigger core and the SpliceError detail type
// ABOUTME: Callers match with errors.Is / errors.As

package trigger

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTrigger is returned by Attach when Config.Start is empty.
	ErrEmptyTrigger = errors.New("trigger start must not be empty")

	// ErrSpliceInvariant reports a selection confirmed while no trigger
	// precedes the caret. The field is left untouched.
	ErrSpliceInvariant = errors.New("splice invariant violation: no trigger before caret")

	// ErrDetached is returned by operations on a binding after Detach.
	ErrDetached = errors.New("binding is detached")
)

// SpliceError carries the field state observed when a splice could not find
// its trigger.
type SpliceError struct {
	Text  string
	Caret int
	Start string
}

func (e *SpliceError) Error() string {
	return fmt.Sprintf("%v (start=%q caret=%d text=%q)", ErrSpliceInvariant, e.Start, e.Caret, e.Text)
}

// Unwrap lets errors.Is match ErrSpliceInvariant.
func (e *SpliceError) Unwrap() error {
	return ErrSpliceInvariant
}
