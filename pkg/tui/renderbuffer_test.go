// ABOUTME: Tests for the pooled render buffer and cursor marker replacement
// ABOUTME: Uses a stub component to fill buffers

package tui

import (
	"testing"
	"unicode/utf8"
)

type stubComponent struct {
	lines []string
}

func (s *stubComponent) Render(out *RenderBuffer, _ int) { out.WriteLines(s.lines) }

var _ Component = (*stubComponent)(nil)

func TestRenderBuffer_Pool(t *testing.T) {
	t.Parallel()

	buf := AcquireBuffer()
	(&stubComponent{lines: []string{"a", "b"}}).Render(buf, 10)
	if buf.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", buf.Len())
	}
	if got := buf.String(); got != "a\nb" {
		t.Errorf("String() = %q", got)
	}
	ReleaseBuffer(buf)
	ReleaseBuffer(nil)

	again := AcquireBuffer()
	defer ReleaseBuffer(again)
	if again.Len() != 0 {
		t.Errorf("acquired buffer not empty: %d lines", again.Len())
	}
}

func TestRenderBuffer_ReplaceCursor(t *testing.T) {
	t.Parallel()

	buf := &RenderBuffer{}
	buf.WriteLine("first")
	buf.WriteLine("ab" + CursorMarker + "cd")

	row, col := buf.ReplaceCursor(func(next string) (string, int) {
		r, n := utf8.DecodeRuneInString(next)
		return "[" + string(r) + "]", n
	})

	if row != 1 || col != 2 {
		t.Errorf("cursor at (%d, %d), want (1, 2)", row, col)
	}
	if buf.Lines[1] != "ab[c]d" {
		t.Errorf("line = %q", buf.Lines[1])
	}
}

func TestRenderBuffer_ReplaceCursorAtEnd(t *testing.T) {
	t.Parallel()

	buf := &RenderBuffer{Lines: []string{"abc" + CursorMarker}}
	buf.ReplaceCursor(func(next string) (string, int) {
		if next != "" {
			t.Errorf("expected empty tail, got %q", next)
		}
		return "_", 0
	})
	if buf.Lines[0] != "abc_" {
		t.Errorf("line = %q", buf.Lines[0])
	}
}

func TestRenderBuffer_ReplaceCursorMissing(t *testing.T) {
	t.Parallel()

	buf := &RenderBuffer{Lines: []string{"no cursor"}}
	row, col := buf.ReplaceCursor(func(string) (string, int) { return "x", 0 })
	if row != -1 || col != -1 {
		t.Errorf("expected (-1, -1), got (%d, %d)", row, col)
	}
}
