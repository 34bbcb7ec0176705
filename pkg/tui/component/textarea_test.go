// ABOUTME: Tests for the multi-line text area: editing, row/col caret, render
// ABOUTME: Covers line joins, caret placement by offset and wrapped rendering

package component

import (
	"strings"
	"testing"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/key"
)

func TestTextarea_Empty(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	if ta.Text() != "" {
		t.Errorf("expected empty text, got %q", ta.Text())
	}
	if row, col := ta.CursorPos(); row != 0 || col != 0 {
		t.Errorf("expected cursor at (0,0), got (%d,%d)", row, col)
	}
}

func TestTextarea_TypeAndEnter(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	typeInto(ta, "ab")
	ta.HandleInput("\r")
	typeInto(ta, "c")

	if got := ta.Text(); got != "ab\nc" {
		t.Errorf("text = %q, want %q", got, "ab\nc")
	}
	if row, col := ta.CursorPos(); row != 1 || col != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", row, col)
	}
	if ta.LineCount() != 2 {
		t.Errorf("line count = %d, want 2", ta.LineCount())
	}
}

func TestTextarea_BackspaceJoinsLines(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.SetText("ab\ncd")
	ta.HandleKey(key.Key{Type: key.KeyHome})
	ta.HandleInput("\x7f")

	if got := ta.Text(); got != "abcd" {
		t.Errorf("text = %q, want %q", got, "abcd")
	}
	if row, col := ta.CursorPos(); row != 0 || col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", row, col)
	}
}

func TestTextarea_DeleteJoinsNextLine(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.SetText("ab\ncd")
	ta.HandleKey(key.Key{Type: key.KeyUp})
	ta.HandleKey(key.Key{Type: key.KeyDelete})

	if got := ta.Text(); got != "abcd" {
		t.Errorf("text = %q, want %q", got, "abcd")
	}
}

func TestTextarea_VerticalMoveClampsColumn(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.SetText("a\nlonger line")
	ta.HandleKey(key.Key{Type: key.KeyUp})

	if row, col := ta.CursorPos(); row != 0 || col != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", row, col)
	}
	ta.HandleKey(key.Key{Type: key.KeyUp})
	if row, _ := ta.CursorPos(); row != 0 {
		t.Errorf("up at top moved to row %d", row)
	}
}

func TestTextarea_LeftRightCrossLines(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.SetText("ab\ncd")
	ta.HandleKey(key.Key{Type: key.KeyHome})
	ta.HandleKey(key.Key{Type: key.KeyLeft})

	if row, col := ta.CursorPos(); row != 0 || col != 2 {
		t.Errorf("after left = (%d,%d), want (0,2)", row, col)
	}
	ta.HandleKey(key.Key{Type: key.KeyRight})
	if row, col := ta.CursorPos(); row != 1 || col != 0 {
		t.Errorf("after right = (%d,%d), want (1,0)", row, col)
	}
}

func TestTextarea_SetSelectionPlacesCaret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		offset   int
		row, col int
	}{
		{name: "start", offset: 0, row: 0, col: 0},
		{name: "end of first line", offset: 3, row: 0, col: 3},
		{name: "start of second line", offset: 4, row: 1, col: 0},
		{name: "inside second line", offset: 6, row: 1, col: 2},
		{name: "past end", offset: 99, row: 2, col: 1},
		{name: "negative", offset: -5, row: 0, col: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ta := NewTextarea()
			ta.SetText("one\ntwo\n3")
			ta.SetSelection(tt.offset, tt.offset)
			if row, col := ta.CursorPos(); row != tt.row || col != tt.col {
				t.Errorf("SetSelection(%d) = (%d,%d), want (%d,%d)", tt.offset, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestTextarea_PasteWithNewlines(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.HandleInput("x\r\ny\tz")

	if got := ta.Text(); got != "x\nyz" {
		t.Errorf("text = %q, want %q", got, "x\nyz")
	}
}

func TestTextarea_RenderCursorOnWrappedLine(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.SetFocused(true)
	ta.SetText("first\nabcdefgh")

	buf := &tui.RenderBuffer{}
	ta.Render(buf, 5) // 4 text columns per row

	want := []string{"firs", "t", "abcd", "efgh" + tui.CursorMarker}
	if strings.Join(buf.Lines, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", buf.Lines, want)
	}
}

func TestTextarea_RenderCursorAtWrapBoundary(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.SetFocused(true)
	ta.SetText("abcdefgh")
	ta.SetSelection(4, 4)

	buf := &tui.RenderBuffer{}
	ta.Render(buf, 5)

	want := []string{"abcd", tui.CursorMarker + "efgh"}
	if strings.Join(buf.Lines, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", buf.Lines, want)
	}
}

func TestTextarea_RenderUnfocusedHasNoMarker(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.SetText("a\nb")

	buf := &tui.RenderBuffer{}
	ta.Render(buf, 10)

	if strings.Contains(buf.String(), tui.CursorMarker) {
		t.Error("unfocused textarea rendered a cursor")
	}
	if buf.Len() != 2 {
		t.Errorf("expected 2 lines, got %d", buf.Len())
	}
}

func TestTextarea_SetTextKeepsCarriageReturns(t *testing.T) {
	t.Parallel()

	ta := NewTextarea()
	ta.SetText("a\r\nb")

	if got := ta.Text(); got != "a\r\nb" {
		t.Errorf("Text() = %q, want the value unchanged", got)
	}
	if ta.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", ta.LineCount())
	}

	ta.SetSelection(0, 2)
	if row, col := ta.CursorPos(); row != 0 || col != 2 {
		t.Errorf("offset 2 -> (%d, %d), want (0, 2)", row, col)
	}

	ta.SetFocused(true)
	buf := &tui.RenderBuffer{}
	ta.Render(buf, 10)
	if strings.Contains(buf.String(), "\r") {
		t.Errorf("carriage return reached the terminal: %q", buf.Lines)
	}
	if buf.Lines[0] != "a "+tui.CursorMarker {
		t.Errorf("line 0 = %q", buf.Lines[0])
	}
}
