package lexer

import (
	"quartz/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it through
// LookupKeyword. Keywords are case-sensitive. Token.Text is exactly the
// source slice.
func (s *scanner) scanIdentOrKeyword() (token.Token, bool) {
	start := s.cursor.Mark()

	r, sz := s.peekRune()
	if sz == 0 {
		return token.Token{}, false
	}
	if r < utf8RuneSelf {
		// ASCII
		if !isIdentStartByte(byte(r)) {
			return s.scanOperatorOrPunct()
		}
		s.cursor.Bump()
		for isIdentContinueByte(s.cursor.Peek()) {
			s.cursor.Bump()
		}
	} else {
		// Unicode
		if !isIdentStartRune(r) {
			return s.scanOperatorOrPunct()
		}
		s.bumpRune()
		for {
			r2, sz2 := s.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			s.bumpRune()
		}
	}

	sp := s.cursor.SpanFrom(start)
	text := string(s.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}, true
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}, true
}
