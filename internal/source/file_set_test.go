package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.qz", []byte("\xEF\xBB\xBFlet a = 1\r\nlet b = 2\r\n"))
	f := fs.Get(id)

	if string(f.Content) != "let a = 1\nlet b = 2\n" {
		t.Fatalf("unexpected normalized content: %q", f.Content)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestLoadResolvesAgainstBaseDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "main.qz")
	if err := os.WriteFile(path, []byte("let x = 5\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	fs := NewFileSetWithBase(tmp)
	id, err := fs.Load("main.qz")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := string(fs.Get(id).Content); got != "let x = 5\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSetWithBase(t.TempDir())
	if _, err := fs.Load("nope.qz"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("pos.qz", []byte("abc\ndef\nghi"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"first byte", 0, LineCol{Line: 1, Col: 1}},
		{"end of first line", 2, LineCol{Line: 1, Col: 3}},
		{"newline belongs to its line", 3, LineCol{Line: 1, Col: 4}},
		{"start of second line", 4, LineCol{Line: 2, Col: 1}},
		{"middle of second line", 5, LineCol{Line: 2, Col: 2}},
		{"start of third line", 8, LineCol{Line: 3, Col: 1}},
		{"last byte", 10, LineCol{Line: 3, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("off %d: expected %+v, got %+v", tt.off, tt.want, start)
			}
		})
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("utf8.qz", []byte("α\n"))

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("unexpected start: %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("unexpected end: %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.qz", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d): expected %q, got %q", tt.line, tt.want, got)
		}
	}
}

func TestTrimEnd(t *testing.T) {
	got, changed := TrimEnd([]byte("let x = 5  \n\t\n"))
	if string(got) != "let x = 5" || !changed {
		t.Fatalf("unexpected trim result: %q (changed=%v)", got, changed)
	}

	got, changed = TrimEnd([]byte("a  b"))
	if string(got) != "a  b" || changed {
		t.Fatalf("internal whitespace must survive: %q (changed=%v)", got, changed)
	}
}
