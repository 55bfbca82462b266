package writer

import (
	"fmt"
	"strings"
)

// Writer builds indented source text line by line. Generators use it so
// nesting depth is tracked once instead of being baked into every literal.
type Writer struct {
	sb         strings.Builder
	depth      int
	indent     string
	pendIndent bool
}

// New creates a writer that indents with the given string per level.
func New(indent string) *Writer {
	return &Writer{
		indent:     indent,
		pendIndent: true,
	}
}

// Indent increases the nesting depth.
func (w *Writer) Indent() {
	w.depth++
}

// Dedent decreases the nesting depth.
func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

// Write appends a string on the current line, emitting the indent prefix
// first if this is the start of a line.
func (w *Writer) Write(s string) {
	if w.pendIndent && s != "" {
		w.sb.WriteString(strings.Repeat(w.indent, w.depth))
		w.pendIndent = false
	}
	w.sb.WriteString(s)
}

// Writef appends a formatted string on the current line.
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// Line writes a string followed by a newline.
func (w *Writer) Line(s string) {
	w.Write(s)
	w.newline()
}

// Linef writes a formatted string followed by a newline.
func (w *Writer) Linef(format string, args ...any) {
	w.Writef(format, args...)
	w.newline()
}

// Blank emits an empty line, collapsing repeated calls so the output never
// contains two consecutive blank lines.
func (w *Writer) Blank() {
	if w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n\n") {
		w.newline()
	}
}

// Block writes opener, runs body one level deeper, then writes closer.
func (w *Writer) Block(opener, closer string, body func()) {
	w.Line(opener)
	w.Indent()
	body()
	w.Dedent()
	w.Line(closer)
}

// String returns the accumulated text.
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the accumulated text as a byte slice.
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}

func (w *Writer) newline() {
	w.sb.WriteByte('\n')
	w.pendIndent = true
}
