package buffer

import "strings"

// TextBuffer accumulates text in parts and joins them once on String.
type TextBuffer struct {
	parts []string
	size  int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0, 8),
	}
}

// Write appends text to the buffer. Empty strings are ignored.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.size += len(text)
}

// WriteNewline appends a single line feed.
func (tb *TextBuffer) WriteNewline() {
	tb.Write("\n")
}

// Len returns the number of bytes written so far.
func (tb *TextBuffer) Len() int {
	return tb.size
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	switch len(tb.parts) {
	case 0:
		return ""
	case 1:
		return tb.parts[0]
	}
	var b strings.Builder
	b.Grow(tb.size)
	for _, p := range tb.parts {
		b.WriteString(p)
	}
	return b.String()
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.size = 0
}
