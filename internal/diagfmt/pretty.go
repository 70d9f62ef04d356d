package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quartz/internal/diag"
	"quartz/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	markerColor  = color.New(color.FgRed)
	noteColor    = color.New(color.FgBlue)
)

// Pretty renders diagnostics in report order, one block per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by indented notes when ShowNotes is set. Color is explicit via
// opts, not sniffed from the writer.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := severityLabel(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(f, fs, opts.PathMode), start.Line, start.Col,
		sev, d.Code.ID(), d.Message)

	if opts.ShowSource {
		printSourceLine(w, f, d.Primary, start, opts.Color)
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			if note.Span.Empty() && note.Span.Start == 0 {
				fmt.Fprintf(w, "  %s: %s\n", label, note.Msg)
				continue
			}
			nf := fs.Get(note.Span.File)
			nstart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				label, displayPath(nf, fs, opts.PathMode), nstart.Line, nstart.Col, note.Msg)
		}
	}
}

// printSourceLine shows the offending line with a caret run under the span.
// Alignment uses display width, so tabs and wide runes line up.
func printSourceLine(w io.Writer, f *source.File, span source.Span, start source.LineCol, useColor bool) {
	line := f.GetLine(start.Line)
	if line == "" && span.Start > 0 {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	before := int(start.Col) - 1
	if before > len(line) {
		before = len(line)
	}
	pad := runewidth.StringWidth(line[:before])

	spanLen := int(span.End - span.Start)
	remain := len(line) - before
	if spanLen > remain {
		spanLen = remain
	}
	width := runewidth.StringWidth(line[before : before+spanLen])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if useColor {
		marker = markerColor.Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityLabel(s diag.Severity, useColor bool) string {
	label := strings.ToUpper(s.String())
	if !useColor {
		return label
	}
	switch s {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if f.Flags&source.FileVirtual != 0 {
			return f.Path
		}
		return fs.ResolvePath(f.Path)
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.Path
	}
}
