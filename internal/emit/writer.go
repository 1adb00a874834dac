package emit

import "fmt"

// Options управляют отступами сгенерированного кода.
type Options struct {
	UseTabs     bool
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

// Writer accumulates generated host-language code and provides helpers for
// indentation-aware line emission.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new code writer.
func NewWriter(opt Options) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, 1024),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for range w.indentLevel * w.opt.IndentWidth {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes a string to the output, handling indentation.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Writef — форматированная запись с учётом отступа.
func (w *Writer) Writef(format string, args ...any) {
	w.WriteString(fmt.Sprintf(format, args...))
}

// Line writes a full line: indent, content, newline.
func (w *Writer) Line(s string) {
	w.WriteString(s)
	w.Newline()
}

// Linef — форматированная строка целиком.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Newline terminates the current line.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// BlankLine вставляет пустую строку, если предыдущая строка ею не была.
func (w *Writer) BlankLine() {
	n := len(w.buf)
	if n == 0 {
		return
	}
	if n >= 2 && w.buf[n-1] == '\n' && w.buf[n-2] == '\n' {
		return
	}
	if w.buf[n-1] != '\n' {
		w.Newline()
	}
	w.Newline()
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	w.indentLevel++
}

// Dedent decreases the indentation level.
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
