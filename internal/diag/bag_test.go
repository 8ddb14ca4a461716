package diag

import (
	"testing"

	"smir/internal/source"
)

func spanAt(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagHonorsLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewWarning(LintInfo, spanAt(0, 0, 1), "a")) {
		t.Fatalf("first add dropped")
	}
	if !bag.Add(NewWarning(LintInfo, spanAt(0, 1, 2), "b")) {
		t.Fatalf("second add dropped")
	}
	if bag.Add(NewWarning(LintInfo, spanAt(0, 2, 3), "c")) {
		t.Fatalf("bag over capacity accepted a diagnostic")
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(4)
	bag.Add(New(SevInfo, PackInfo, source.Span{}, "info"))
	if bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("info only, queries = (%v, %v)", bag.HasWarnings(), bag.HasErrors())
	}

	bag.Add(NewWarning(LintReadZeroByteVec, source.Span{}, "warn"))
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("warning added, queries = (%v, %v)", bag.HasWarnings(), bag.HasErrors())
	}

	bag.Add(NewError(PackTruncated, source.Span{}, "err"))
	if !bag.HasErrors() {
		t.Fatalf("error added but HasErrors is false")
	}
}

func TestBagSortOrdering(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewWarning(LintReadZeroByteVec, spanAt(1, 5, 9), "later file"))
	bag.Add(NewWarning(LintReadZeroByteVec, spanAt(0, 40, 44), "later offset"))
	bag.Add(NewWarning(LintReadZeroByteVec, spanAt(0, 10, 14), "warning"))
	bag.Add(NewError(PackBadSchema, spanAt(0, 10, 14), "error at same span"))

	bag.Sort()
	items := bag.Items()

	if items[0].Severity != SevError {
		t.Fatalf("severity must break ties descending: %+v", items[0])
	}
	if items[1].Message != "warning" {
		t.Fatalf("second item = %+v", items[1])
	}
	if items[2].Primary.Start != 40 {
		t.Fatalf("third item = %+v", items[2])
	}
	if items[3].Primary.File != 1 {
		t.Fatalf("file ordering broken: %+v", items[3])
	}
}

func TestBagDedup(t *testing.T) {
	sp := spanAt(0, 3, 7)
	bag := NewBag(8)
	bag.Add(NewWarning(LintReadZeroByteVec, sp, "first"))
	bag.Add(NewWarning(LintReadZeroByteVec, sp, "repeat"))
	bag.Add(NewWarning(PackInfo, sp, "different code"))
	bag.Add(NewWarning(LintReadZeroByteVec, spanAt(0, 8, 9), "different span"))

	bag.Dedup()
	if bag.Len() != 3 {
		t.Fatalf("len after dedup = %d, items = %+v", bag.Len(), bag.Items())
	}
	if bag.Items()[0].Message != "first" {
		t.Fatalf("dedup must keep the first occurrence: %+v", bag.Items()[0])
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewWarning(LintInfo, source.Span{}, "a"))
	b := NewBag(2)
	b.Add(NewWarning(LintInfo, spanAt(0, 1, 2), "b1"))
	b.Add(NewWarning(LintInfo, spanAt(0, 2, 3), "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merged len = %d", a.Len())
	}
	if a.Cap() < 3 {
		t.Fatalf("merge must grow the limit, cap = %d", a.Cap())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(4)
	builder := ReportWarning(BagReporter{Bag: bag}, LintReadZeroByteVec, spanAt(0, 0, 4), "msg").
		WithNote(spanAt(0, 5, 6), "declared here").
		WithFixSuggestion(Fix{ID: "fix", Title: "do the thing"})

	builder.Emit()
	builder.Emit()
	if bag.Len() != 1 {
		t.Fatalf("emit must report exactly once, got %d", bag.Len())
	}

	d := bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "declared here" {
		t.Fatalf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].ID != "fix" {
		t.Fatalf("fixes = %+v", d.Fixes)
	}
}

func TestCodeString(t *testing.T) {
	if got := LintReadZeroByteVec.String(); got != "SMIR5001" {
		t.Fatalf("code string = %q", got)
	}
	if got := UnknownCode.String(); got != "SMIR0000" {
		t.Fatalf("unknown code string = %q", got)
	}
}
