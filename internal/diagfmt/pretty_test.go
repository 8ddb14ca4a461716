package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"smir/internal/diag"
	"smir/internal/source"
)

func TestPrettyHeaderAndUnderline(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let mut v = Vec::new();\nf.read(&mut v).unwrap();\n")
	fileID := fs.AddVirtual("src/main.rs", content)

	bag := diag.NewBag(4)
	// Span over "read" on the second line.
	start := uint32(strings.Index(string(content), "read"))
	bag.Add(diag.NewWarning(diag.LintReadZeroByteVec,
		source.Span{File: fileID, Start: start, End: start + 4},
		"reading zero byte data to `Vec`"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, Context: 0})
	output := buf.String()

	if !strings.Contains(output, "src/main.rs:2:3: WARNING SMIR5001: reading zero byte data to `Vec`") {
		t.Fatalf("header missing or wrong:\n%s", output)
	}
	if !strings.Contains(output, "f.read(&mut v).unwrap();") {
		t.Fatalf("source line missing:\n%s", output)
	}
	if !strings.Contains(output, "  ^~~~\n") {
		t.Fatalf("underline missing or misaligned:\n%s", output)
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("line one\nline two\nline three\nline four\n")
	fileID := fs.AddVirtual("ctx.rs", content)

	bag := diag.NewBag(2)
	// Span over "three".
	start := uint32(strings.Index(string(content), "three"))
	bag.Add(diag.NewWarning(diag.LintInfo,
		source.Span{File: fileID, Start: start, End: start + 5}, "msg"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, Context: 1})
	output := buf.String()

	if !strings.Contains(output, "line two") || !strings.Contains(output, "line four") {
		t.Fatalf("expected one context line on each side, got:\n%s", output)
	}
	if strings.Contains(output, "line one") {
		t.Fatalf("context window too wide:\n%s", output)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let mut v = Vec::with_capacity(20);\nf.read(&mut v);\n")
	fileID := fs.AddVirtual("main.rs", content)

	readStart := uint32(strings.Index(string(content), "f.read"))
	readSpan := source.Span{File: fileID, Start: readStart, End: readStart + 14}
	letSpan := source.Span{File: fileID, Start: 0, End: 9}

	d := diag.NewWarning(diag.LintReadZeroByteVec, readSpan, "reading zero byte data to `Vec`").
		WithNote(letSpan, "buffer declared here").
		WithFixSuggestion(diag.Fix{
			Title:         "initialize the buffer before reading",
			Applicability: diag.FixApplicabilityMaybeIncorrect,
			Edits: []diag.TextEdit{{
				Span:    readSpan,
				NewText: "v.resize(20, 0); f.read(&mut v)",
			}},
		})

	bag := diag.NewBag(2)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, ShowNotes: true, ShowFixes: true})
	output := buf.String()

	if !strings.Contains(output, "main.rs:1:1: note: buffer declared here") {
		t.Fatalf("note missing:\n%s", output)
	}
	if !strings.Contains(output, "fix (may be incorrect): initialize the buffer before reading") {
		t.Fatalf("fix title missing:\n%s", output)
	}
	if !strings.Contains(output, "replace with: v.resize(20, 0); f.read(&mut v)") {
		t.Fatalf("fix edit missing:\n%s", output)
	}
}

func TestPrettyNotesAndFixesSuppressed(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("main.rs", []byte("fn main() {}\n"))
	sp := source.Span{File: fileID, Start: 3, End: 7}

	bag := diag.NewBag(2)
	bag.Add(diag.NewWarning(diag.LintInfo, sp, "msg").
		WithNote(sp, "hidden note").
		WithFixSuggestion(diag.Fix{Title: "hidden fix"}))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false})
	output := buf.String()

	if strings.Contains(output, "hidden note") || strings.Contains(output, "hidden fix") {
		t.Fatalf("notes/fixes must be opt-in:\n%s", output)
	}
}

func TestPrettyUnresolvableLocation(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.PackTruncated, source.Span{}, "open pack: no such file"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false})
	output := buf.String()

	if !strings.Contains(output, "ERROR SMIR1002: open pack: no such file") {
		t.Fatalf("bare header missing:\n%s", output)
	}
	if strings.Contains(output, ":0:0:") {
		t.Fatalf("bare diagnostics must not fabricate a location:\n%s", output)
	}
}

func TestUnderlineWideRunes(t *testing.T) {
	// Multi-byte runes before the span must count display cells, not bytes.
	line := "αβcd"
	got := underline(line,
		source.LineCol{Line: 1, Col: 3},
		source.LineCol{Line: 1, Col: 5},
		PrettyOpts{Color: false})
	if got != "  ^~" {
		t.Fatalf("underline = %q", got)
	}
}
