// ABOUTME: Pooled line buffer that components render into
// ABOUTME: Recycled via sync.Pool; the host joins it into a frame string

package tui

import (
	"strings"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{Lines: make([]string, 0, 32)}
	},
}

// AcquireBuffer gets an empty RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns buf to the pool. nil is ignored.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer collects rendered lines for one frame.
type RenderBuffer struct {
	Lines []string
}

// WriteLine appends a single line.
func (b *RenderBuffer) WriteLine(line string) {
	b.Lines = append(b.Lines, line)
}

// WriteLines appends several lines.
func (b *RenderBuffer) WriteLines(lines []string) {
	b.Lines = append(b.Lines, lines...)
}

// Reset clears the buffer for reuse without deallocating.
func (b *RenderBuffer) Reset() {
	b.Lines = b.Lines[:0]
}

// Len returns the number of lines.
func (b *RenderBuffer) Len() int {
	return len(b.Lines)
}

// String joins the lines with newlines.
func (b *RenderBuffer) String() string {
	return strings.Join(b.Lines, "\n")
}

// ReplaceCursor swaps the first CursorMarker for draw(next), where next is
// the text that follows the marker on its line (possibly empty). draw returns
// the cursor cell and how many bytes of next it consumed. It reports the
// (row, col) of the marker in bytes, or (-1, -1) when there is none.
func (b *RenderBuffer) ReplaceCursor(draw func(next string) (cell string, consumed int)) (row, col int) {
	for i, line := range b.Lines {
		idx := strings.Index(line, CursorMarker)
		if idx < 0 {
			continue
		}
		after := line[idx+len(CursorMarker):]
		cell, n := draw(after)
		b.Lines[i] = line[:idx] + cell + after[n:]
		return i, idx
	}
	return -1, -1
}
