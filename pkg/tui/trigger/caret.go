// ABOUTME: Caret tracking: rune offset of the caret (or selection start) in a field
// ABOUTME: Uses the field's offset API when present, else derives it from row/col

package trigger

import (
	"unicode/utf8"

	"github.com/mauromedda/autocomplete-trigger/internal/log"
)

// CaretOffset returns the rune offset of the caret in f, or of the selection
// start if a range is selected. It never fails: out-of-range values are
// clamped and fields without any caret capability report 0.
func CaretOffset(f Field) int {
	if f == nil {
		return 0
	}
	return caretOffset(f, f.Text())
}

func caretOffset(f Field, text string) int {
	n := utf8.RuneCountInString(text)

	switch c := f.(type) {
	case OffsetCaret:
		return clampOffset(c.SelectionStart(), n)
	case RowColCaret:
		row, col := c.CursorPos()
		return clampOffset(offsetFromRowCol(text, row, col), n)
	}

	log.Debug("trigger: field %T reports no caret, assuming offset 0", f)
	return 0
}

// offsetFromRowCol converts a (row, col) cursor into a rune offset, counting
// one rune per line break. Columns past the end of a line snap to its end.
func offsetFromRowCol(text string, row, col int) int {
	if row < 0 {
		return 0
	}
	if col < 0 {
		col = 0
	}

	offset, line, lineLen := 0, 0, 0
	for _, r := range text {
		if line == row {
			if r == '\n' {
				break
			}
			lineLen++
			continue
		}
		offset++
		if r == '\n' {
			line++
		}
	}
	if line < row {
		// Row past the last line.
		return offset
	}
	return offset + min(col, lineLen)
}

func clampOffset(offset, n int) int {
	switch {
	case offset < 0:
		log.Debug("trigger: caret %d below zero, clamped", offset)
		return 0
	case offset > n:
		log.Debug("trigger: caret %d beyond text length %d, clamped", offset, n)
		return n
	}
	return offset
}
