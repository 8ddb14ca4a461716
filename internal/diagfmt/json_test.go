package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"smir/internal/diag"
	"smir/internal/source"
)

func jsonFixture() (*diag.Bag, *source.FileSet, source.Span) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("src/main.rs", []byte("let mut v = Vec::new();\nf.read(&mut v);\n"))
	readSpan := source.Span{File: fileID, Start: 24, End: 38}

	bag := diag.NewBag(8)
	bag.Add(diag.NewWarning(diag.LintReadZeroByteVec, readSpan, "reading zero byte data to `Vec`").
		WithNote(source.Span{File: fileID, Start: 0, End: 9}, "buffer declared here").
		WithFixSuggestion(diag.Fix{
			ID:            "read-zero-byte-vec",
			Title:         "initialize the buffer before reading",
			Applicability: diag.FixApplicabilityMaybeIncorrect,
			Edits: []diag.TextEdit{{
				Span:    readSpan,
				NewText: "v.resize(8, 0); f.read(&mut v)",
				OldText: "f.read(&mut v)",
			}},
		}))
	return bag, fs, readSpan
}

func TestBuildDiagnosticsOutput(t *testing.T) {
	bag, fs, readSpan := jsonFixture()

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
		IncludeFixes:     true,
	})

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("output = %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Severity != "WARNING" || d.Code != "SMIR5001" {
		t.Errorf("header = %q %q", d.Severity, d.Code)
	}
	if d.Location.File != "src/main.rs" {
		t.Errorf("location file = %q", d.Location.File)
	}
	if d.Location.StartByte != readSpan.Start || d.Location.EndByte != readSpan.End {
		t.Errorf("byte range = %d..%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 {
		t.Errorf("resolved position = %d:%d", d.Location.StartLine, d.Location.StartCol)
	}

	if len(d.Notes) != 1 || d.Notes[0].Message != "buffer declared here" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 {
		t.Fatalf("fixes = %+v", d.Fixes)
	}
	fix := d.Fixes[0]
	if fix.Applicability != "may be incorrect" {
		t.Errorf("applicability = %q", fix.Applicability)
	}
	if len(fix.Edits) != 1 || fix.Edits[0].NewText != "v.resize(8, 0); f.read(&mut v)" {
		t.Errorf("edits = %+v", fix.Edits)
	}
}

func TestBuildDiagnosticsOutputOptOuts(t *testing.T) {
	bag, fs, _ := jsonFixture()

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	d := out.Diagnostics[0]
	if len(d.Notes) != 0 || len(d.Fixes) != 0 {
		t.Fatalf("notes/fixes must be opt-in: %+v", d)
	}
	if d.Location.StartLine != 0 {
		t.Fatalf("positions must be opt-in: %+v", d.Location)
	}
}

func TestBuildDiagnosticsOutputMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.rs", []byte("x\ny\nz\n"))

	bag := diag.NewBag(8)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewWarning(diag.LintInfo, source.Span{File: fileID, Start: i, End: i + 1}, "m"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("max not honored: %+v", out)
	}
}

func TestJSONRoundTrips(t *testing.T) {
	bag, fs, _ := jsonFixture()

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeFixes: true}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Count != 1 || decoded.Diagnostics[0].Code != "SMIR5001" {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestJSONUnresolvableLocation(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.PackTruncated, source.Span{Start: 0, End: 0}, "open pack: no such file"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true})
	loc := out.Diagnostics[0].Location
	if loc.File != "" {
		t.Fatalf("unresolvable span must keep an empty file: %+v", loc)
	}
}
