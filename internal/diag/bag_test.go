package diag

import (
	"testing"

	"quartz/internal/source"
)

func TestBagAppendOnlyOrder(t *testing.T) {
	b := NewBag(10)
	for i := 0; i < 3; i++ {
		b.Add(Diagnostic{
			Severity: SevError,
			Code:     LexUnknownChar,
			Message:  string(rune('a' + i)),
			Primary:  source.Span{Start: uint32(i), End: uint32(i + 1)},
		})
	}

	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(items))
	}
	for i, d := range items {
		if d.Message != string(rune('a'+i)) {
			t.Errorf("item %d out of order: %q", i, d.Message)
		}
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevError}) {
		t.Fatal("first add should succeed")
	}
	if !b.Add(Diagnostic{Severity: SevError}) {
		t.Fatal("second add should succeed")
	}
	if b.Add(Diagnostic{Severity: SevError}) {
		t.Fatal("third add should be dropped")
	}
	if b.Len() != 2 {
		t.Fatalf("expected len 2, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(5)
	if b.HasErrors() {
		t.Fatal("empty bag has no errors")
	}
	b.Add(Diagnostic{Severity: SevWarning})
	if b.HasErrors() {
		t.Fatal("warning is not an error")
	}
	if !b.HasWarnings() {
		t.Fatal("expected HasWarnings")
	}
	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Fatal("expected HasErrors")
	}
	if b.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", b.ErrorCount())
	}
}

func TestBagMergePreservesOrder(t *testing.T) {
	a := NewBag(5)
	a.Add(Diagnostic{Message: "first"})

	other := NewBag(2)
	other.Add(Diagnostic{Message: "second"})
	other.Add(Diagnostic{Message: "third"})

	a.Merge(other)
	items := a.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items after merge, got %d", len(items))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if items[i].Message != w {
			t.Errorf("item %d: expected %q, got %q", i, w, items[i].Message)
		}
	}
}

func TestBagMergeHonorsLimit(t *testing.T) {
	a := NewBag(2)
	a.Add(Diagnostic{Message: "kept"})

	other := NewBag(3)
	other.Add(Diagnostic{Message: "also kept"})
	other.Add(Diagnostic{Message: "dropped"})
	other.Add(Diagnostic{Message: "dropped too"})

	a.Merge(other)
	items := a.Items()
	if len(items) != 2 {
		t.Fatalf("expected merge to stop at the limit, got %d items", len(items))
	}
	if items[0].Message != "kept" || items[1].Message != "also kept" {
		t.Errorf("unexpected survivors: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestBagReporterStampsPhase(t *testing.T) {
	b := NewBag(5)
	r := BagReporter{Bag: b}
	r.Report(LexUnknownChar, SevError, source.Span{Start: 1, End: 2}, "unknown character")

	items := b.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Phase != PhaseLex {
		t.Errorf("expected PhaseLex, got %v", items[0].Phase)
	}
	if items[0].Code.ID() != "LEX1001" {
		t.Errorf("unexpected code id: %s", items[0].Code.ID())
	}
}
