package lexer

import (
	"testing"

	"quartz/internal/source"
)

func makeFile(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("cursor.qz", []byte(content)))
}

func TestCursorBasics(t *testing.T) {
	f := makeFile(t, "ab")
	c := NewCursor(f)

	if c.EOF() {
		t.Fatal("fresh cursor should not be at EOF")
	}
	if c.Peek() != 'a' {
		t.Errorf("expected 'a', got %q", c.Peek())
	}
	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Error("Bump should return consumed bytes in order")
	}
	if !c.EOF() {
		t.Error("expected EOF after consuming everything")
	}
	if c.Bump() != 0 {
		t.Error("Bump at EOF should return 0")
	}
}

func TestCursorRangeIsBounded(t *testing.T) {
	f := makeFile(t, "abc\ndef")
	c := NewCursorRange(f, 0, 3) // just "abc"

	for !c.EOF() {
		c.Bump()
	}
	if c.Off != 3 {
		t.Errorf("expected cursor to stop at 3, got %d", c.Off)
	}
	if c.Peek() != 0 {
		t.Error("Peek past the limit should return 0")
	}
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 past the limit should fail")
	}
}

func TestCursorMarkSpan(t *testing.T) {
	f := makeFile(t, "hello")
	c := NewCursor(f)

	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("unexpected span %v", sp)
	}

	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Reset should rewind, got off %d", c.Off)
	}
}

func TestCursorEat(t *testing.T) {
	f := makeFile(t, "=x")
	c := NewCursor(f)

	if !c.Eat('=') {
		t.Fatal("Eat('=') should consume")
	}
	if c.Eat('=') {
		t.Fatal("Eat should fail on mismatch")
	}
	if c.Peek() != 'x' {
		t.Errorf("expected 'x', got %q", c.Peek())
	}
}
