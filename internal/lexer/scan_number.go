package lexer

import (
	"quartz/internal/diag"
	"quartz/internal/token"
)

// Supported: 0, 123, 0b..., 0o..., 0x..., 1.0, .5, 1e-3, 1.0e+10, with '_'
// separators inside digit runs. No type suffixes. Malformed forms are
// reported and produce no token; scanning resumes after them.
func (s *scanner) scanNumber() (token.Token, bool) {
	start := s.cursor.Mark()
	kind := token.IntLit

	// Leading dot: the ".digits" form (caller checked a digit follows).
	if s.cursor.Peek() == '.' {
		s.cursor.Bump()
		kind = token.FloatLit
		for isDec(s.cursor.Peek()) || s.cursor.Peek() == '_' {
			s.cursor.Bump()
		}
		return s.scanExponent(start, kind)
	}

	// Leading 0 with a base prefix?
	if s.cursor.Peek() == '0' {
		s.cursor.Bump()
		switch s.cursor.Peek() {
		case 'b', 'B':
			s.cursor.Bump()
			hasDigit := false
			for {
				b := s.cursor.Peek()
				if b == '0' || b == '1' {
					hasDigit = true
					s.cursor.Bump()
				} else if b == '_' {
					s.cursor.Bump()
				} else {
					break
				}
			}
			return s.emitBased(start, kind, hasDigit)
		case 'o', 'O':
			s.cursor.Bump()
			hasDigit := false
			for {
				b := s.cursor.Peek()
				if b >= '0' && b <= '7' {
					hasDigit = true
					s.cursor.Bump()
				} else if b == '_' {
					s.cursor.Bump()
				} else {
					break
				}
			}
			return s.emitBased(start, kind, hasDigit)
		case 'x', 'X':
			s.cursor.Bump()
			hasDigit := false
			for {
				b := s.cursor.Peek()
				if isHex(b) {
					hasDigit = true
					s.cursor.Bump()
				} else if b == '_' {
					s.cursor.Bump()
				} else {
					break
				}
			}
			return s.emitBased(start, kind, hasDigit)
		}
		// Plain "0", possibly with a fraction below.
	}

	// Decimal integer part.
	for isDec(s.cursor.Peek()) || s.cursor.Peek() == '_' {
		s.cursor.Bump()
	}

	// Fraction.
	if s.cursor.Peek() == '.' {
		if b0, b1, ok := s.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			// ".." is a range operator, not part of the number.
		} else {
			s.cursor.Bump()
			kind = token.FloatLit
			for isDec(s.cursor.Peek()) || s.cursor.Peek() == '_' {
				s.cursor.Bump()
			}
		}
	}

	return s.scanExponent(start, kind)
}

// scanExponent consumes an optional e/E exponent, then emits.
func (s *scanner) scanExponent(start Mark, kind token.Kind) (token.Token, bool) {
	if s.cursor.Peek() == 'e' || s.cursor.Peek() == 'E' {
		kind = token.FloatLit
		s.cursor.Bump()
		if s.cursor.Peek() == '+' || s.cursor.Peek() == '-' {
			s.cursor.Bump()
		}
		if !isDec(s.cursor.Peek()) {
			sp := s.cursor.SpanFrom(start)
			s.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{}, false
		}
		for isDec(s.cursor.Peek()) || s.cursor.Peek() == '_' {
			s.cursor.Bump()
		}
	}
	return s.emitNumber(start, kind)
}

// emitBased finishes a binary/octal/hex literal. A bare prefix (or one
// followed only by underscores) is malformed and produces no token.
func (s *scanner) emitBased(start Mark, kind token.Kind, hasDigit bool) (token.Token, bool) {
	if !hasDigit {
		sp := s.cursor.SpanFrom(start)
		s.errLex(diag.LexBadNumber, sp, "missing digits after base prefix")
		return token.Token{}, false
	}
	return s.emitNumber(start, kind)
}

func (s *scanner) emitNumber(start Mark, kind token.Kind) (token.Token, bool) {
	sp := s.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(s.file.Content[sp.Start:sp.End])}, true
}
