package buffer

import "strings"

// TextBuffer accumulates output in parts so that the last write can be undone.
type TextBuffer struct {
	parts []string
	size  int
}

// New creates an empty TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends text. Empty strings are ignored.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.size += len(text)
}

// Len returns the number of bytes written.
func (tb *TextBuffer) Len() int {
	return tb.size
}

// TrailingNewlineCount counts newline characters at the end of the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(tb.parts) - 1; i >= 0; i-- {
		part := tb.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] != '\n' {
				return count
			}
			count++
		}
	}
	return count
}

// EnsureNewlines pads the buffer so it ends with at least n newlines.
// Nothing is written to an empty buffer.
func (tb *TextBuffer) EnsureNewlines(n int) {
	if tb.size == 0 {
		return
	}
	if missing := n - tb.TrailingNewlineCount(); missing > 0 {
		tb.Write(strings.Repeat("\n", missing))
	}
}

// PopLast removes and returns the last written part.
func (tb *TextBuffer) PopLast() string {
	if len(tb.parts) == 0 {
		return ""
	}
	last := tb.parts[len(tb.parts)-1]
	tb.parts = tb.parts[:len(tb.parts)-1]
	tb.size -= len(last)
	return last
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	var sb strings.Builder
	sb.Grow(tb.size)
	for _, p := range tb.parts {
		sb.WriteString(p)
	}
	return sb.String()
}
