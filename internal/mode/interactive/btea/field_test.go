// ABOUTME: Tests for cursor cell drawing in field views
// ABOUTME: The marker must never split an escape sequence that follows it

package btea

import "testing"

func TestDrawCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		next         string
		wantConsumed int
	}{
		{name: "end of line", next: "", wantConsumed: 0},
		{name: "ascii", next: "abc", wantConsumed: 1},
		{name: "multibyte", next: "é!", wantConsumed: 2},
		{name: "before escape", next: "\x1b[2mhint", wantConsumed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cell, n := drawCursor(tt.next)
			if n != tt.wantConsumed {
				t.Errorf("consumed = %d, want %d", n, tt.wantConsumed)
			}
			if cell == "" {
				t.Error("empty cursor cell")
			}
		})
	}
}
