package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// ===== Rune access on top of Cursor =====

// peekRune decodes the rune at the cursor without advancing. Decoding is
// bounded by the cursor limit so a line scanner never reads its neighbour.
func (s *scanner) peekRune() (r rune, size int) {
	if s.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := s.cursor.Peek()
	if b < utf8.RuneSelf { // ASCII fast path
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(s.file.Content[s.cursor.Off:s.cursor.Limit])
	return r, sz
}

// bumpRune advances the cursor by the size of the current rune.
func (s *scanner) bumpRune() {
	_, sz := s.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	s.cursor.Off += usz
}

// ===== Classifiers =====

// ASCII fast path for identifiers; Unicode goes through the rune variants.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// Checks the ".5" case: dot now, digit next?
func (s *scanner) isNumberAfterDot() bool {
	b0, b1, ok := s.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// ===== Greedy operator matching =====

// try2 consumes two bytes when they match exactly.
func (s *scanner) try2(a, b byte) bool {
	b0, b1, ok := s.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	s.cursor.Bump()
	s.cursor.Bump()
	return true
}
