// ABOUTME: Trigger delimiters bound to a field: the start string that arms capture
// ABOUTME: and the end string appended after an inserted suggestion

package trigger

import (
	"fmt"
	"unicode/utf8"
)

// Default delimiters, producing placeholders like %{name}.
const (
	DefaultStart = "%{"
	DefaultEnd   = "}"
)

// Config holds the delimiters for one bound field. It is copied on Attach and
// never changes for the lifetime of the binding.
type Config struct {
	// Start arms query capture when typed immediately before the caret.
	// Must be non-empty.
	Start string `json:"start" yaml:"start" toml:"start"`
	// End is appended after the chosen value; may be empty.
	End string `json:"end" yaml:"end" toml:"end"`
}

// DefaultConfig returns the %{ } delimiter pair.
func DefaultConfig() Config {
	return Config{Start: DefaultStart, End: DefaultEnd}
}

// Validate reports whether the config can be bound to a field.
func (c Config) Validate() error {
	if c.Start == "" {
		return ErrEmptyTrigger
	}
	if !utf8.ValidString(c.Start) || !utf8.ValidString(c.End) {
		return fmt.Errorf("trigger delimiters must be valid UTF-8: start=%q end=%q", c.Start, c.End)
	}
	return nil
}
