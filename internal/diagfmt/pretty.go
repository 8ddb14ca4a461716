package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"smir/internal/diag"
	"smir/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// in order (call bag.Sort() first for deterministic output). Each diagnostic
// prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source line with a ^~~~ underline over the span, then the
// notes in the same shape, then fix suggestions when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if w == nil || bag == nil || fs == nil {
		return
	}
	for _, d := range bag.Items() {
		if int(d.Primary.File) >= fs.Len() {
			// Diagnostics without a resolvable location, e.g. I/O failures.
			printBareHeader(w, d.Severity, d.Code, d.Message, opts)
			continue
		}
		printHeader(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		printSpanContext(w, fs, d.Primary, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				printNoteHeader(w, fs, note, opts)
				printSpanContext(w, fs, note.Span, opts)
			}
		}
		if opts.ShowFixes {
			for i := range d.Fixes {
				printFix(w, &d.Fixes[i], opts)
			}
		}
	}
}

func printBareHeader(w io.Writer, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	sevText := sev.String()
	codeText := code.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
		codeText = color.New(color.Bold).Sprint(codeText)
	}
	fmt.Fprintf(w, "%s %s: %s\n", sevText, codeText, msg)
}

func printHeader(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	start, _ := fs.Resolve(span)
	path := fs.Get(span.File).Path
	sevText := sev.String()
	codeText := code.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
		codeText = color.New(color.Bold).Sprint(codeText)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, codeText, msg)
}

func printNoteHeader(w io.Writer, fs *source.FileSet, note diag.Note, opts PrettyOpts) {
	start, _ := fs.Resolve(note.Span)
	path := fs.Get(note.Span.File).Path
	label := "note"
	if opts.Color {
		label = color.New(color.FgCyan).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, note.Msg)
}

// printSpanContext prints the primary line with an underline, plus Context
// lines of surrounding source on each side.
func printSpanContext(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)

	before := uint32(0)
	if opts.Context > 0 {
		before = uint32(opts.Context)
	}
	firstLine := uint32(1)
	if start.Line > before {
		firstLine = start.Line - before
	}
	for ln := firstLine; ln < start.Line; ln++ {
		fmt.Fprintf(w, "  %s\n", f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s\n", underline(line, start, end, opts))

	for ln := start.Line + 1; ln <= start.Line+before; ln++ {
		text := f.GetLine(ln)
		if text == "" && ln > start.Line+1 {
			break
		}
		fmt.Fprintf(w, "  %s\n", text)
	}
}

// underline builds the ^~~~ marker row. Display width is measured per rune,
// so wide characters and tabs keep the caret aligned.
func underline(line string, start, end source.LineCol, opts PrettyOpts) string {
	var b strings.Builder
	col := uint32(1)
	for _, r := range line {
		if col >= start.Col {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		col++
	}

	span := 1
	if end.Line == start.Line && end.Col > start.Col {
		span = int(end.Col - start.Col)
	}
	marker := "^" + strings.Repeat("~", span-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	b.WriteString(marker)
	return b.String()
}

func printFix(w io.Writer, fix *diag.Fix, opts PrettyOpts) {
	title := fix.Title
	if opts.Color {
		title = color.New(color.FgYellow).Sprint(title)
	}
	fmt.Fprintf(w, "  fix (%s): %s\n", fix.Applicability, title)
	for _, edit := range fix.Edits {
		fmt.Fprintf(w, "    replace with: %s\n", edit.NewText)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
