package lexer

import (
	"quartz/internal/diag"
	"quartz/internal/token"
)

// scanString scans "..." with \" \\ and friends consumed as two-byte
// escapes (validation is left to later phases). A string still open at the
// end of the line is unterminated: string literals cannot span lines.
func (s *scanner) scanString() (token.Token, bool) {
	start := s.cursor.Mark()
	s.cursor.Bump() // opening '"'
	for !s.cursor.EOF() {
		b := s.cursor.Peek()
		if b == '"' {
			s.cursor.Bump()
			sp := s.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(s.file.Content[sp.Start:sp.End])}, true
		}
		if b == '\\' {
			s.cursor.Bump()
			if s.cursor.EOF() {
				break
			}
			s.cursor.Bump()
			continue
		}
		s.cursor.Bump()
	}

	// Line ended before the closing quote.
	sp := s.cursor.SpanFrom(start)
	s.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{}, false
}
