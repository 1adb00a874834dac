package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"defmod/internal/diag"
	"defmod/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.Faint)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	f := fs.Get(d.Primary.File)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", f.Path, start.Line, start.Col, sev, d.Code, d.Message)

	printContext(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", nf.Path, nStart.Line, nStart.Col, label, n.Msg)
			printContext(w, n.Span, fs, opts)
		}
	}
}

// printContext печатает строку исходника и каретку-подчёркивание под спаном.
// Ширина подчёркивания считается в экранных колонках, не в байтах.
func printContext(w io.Writer, sp source.Span, fs *source.FileSet, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	f := fs.Get(sp.File)
	line := f.GetLine(start.Line)
	if line == "" && start.Line == 0 {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	// колонки 1-based и байтовые; переводим байтовые префиксы в экранную ширину
	startCol := int(start.Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}
	pad := runewidth.StringWidth(line[:startCol])

	endCol := len(line)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	width := 1
	if endCol > startCol {
		width = runewidth.StringWidth(line[startCol:endCol])
		if width < 1 {
			width = 1
		}
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = errorColor.Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
