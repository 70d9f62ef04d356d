package lexer

import (
	"quartz/internal/diag"
	"quartz/internal/token"
)

// Greedy matching: two-byte operators first, then single-byte. An
// unrecognized byte is reported and skipped so the rest of the line still
// scans.
func (s *scanner) scanOperatorOrPunct() (token.Token, bool) {
	start := s.cursor.Mark()
	emit := func(k token.Kind) (token.Token, bool) {
		sp := s.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(s.file.Content[sp.Start:sp.End]),
		}, true
	}

	switch {
	case s.try2('.', '.'):
		return emit(token.DotDot)
	case s.try2('-', '>'):
		return emit(token.Arrow)
	case s.try2('=', '>'):
		return emit(token.FatArrow)
	case s.try2('&', '&'):
		return emit(token.AndAnd)
	case s.try2('|', '|'):
		return emit(token.OrOr)
	case s.try2('=', '='):
		return emit(token.EqEq)
	case s.try2('!', '='):
		return emit(token.BangEq)
	case s.try2('<', '='):
		return emit(token.LtEq)
	case s.try2('>', '='):
		return emit(token.GtEq)
	case s.try2('+', '='):
		return emit(token.PlusAssign)
	case s.try2('-', '='):
		return emit(token.MinusAssign)
	case s.try2('*', '='):
		return emit(token.StarAssign)
	case s.try2('/', '='):
		return emit(token.SlashAssign)
	}

	ch := s.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	default:
		if ch >= utf8RuneSelf {
			// Consume the whole rune so one bad character reports once.
			s.cursor.Reset(start)
			s.bumpRune()
		}
		sp := s.cursor.SpanFrom(start)
		s.errLex(diag.LexUnknownChar, sp, "unknown character '"+string(s.file.Content[sp.Start:sp.End])+"'")
		return token.Token{}, false
	}
}
