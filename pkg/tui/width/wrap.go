// ABOUTME: Truncation and padding to a column budget, and rune-level wrapping
// ABOUTME: Used by the suggestion list rows and the textarea renderer

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = '…'

// TruncateToWidth cuts s to at most maxWidth visible columns. When it has to
// cut, the last column holds an ellipsis. Escape sequences are kept, and a
// reset is written before the ellipsis so styling never leaks onto it.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return string(ellipsis)
	}

	var b strings.Builder
	col, target := 0, maxWidth-1
	for i := 0; i < len(s) && col < target; {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(cluster)
	}
	b.WriteString("\x1b[0m")
	b.WriteRune(ellipsis)
	return b.String()
}

// PadToWidth truncates or right-pads s with spaces to exactly w columns.
func PadToWidth(s string, w int) string {
	s = TruncateToWidth(s, w)
	if gap := w - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// WrapRunes splits line into segments of at most maxWidth columns. Segment
// boundaries are rune indexes into line, so callers can map a cursor column
// onto the segment that contains it. An empty line yields one empty segment.
func WrapRunes(line []rune, maxWidth int) [][]rune {
	if maxWidth <= 0 {
		return nil
	}
	if len(line) == 0 {
		return [][]rune{{}}
	}

	var out [][]rune
	start, col := 0, 0
	for i, r := range line {
		w := RuneWidth(r)
		if col+w > maxWidth && i > start {
			out = append(out, line[start:i])
			start, col = i, 0
		}
		col += w
	}
	return append(out, line[start:])
}
