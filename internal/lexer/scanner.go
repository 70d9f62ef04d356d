package lexer

import (
	"quartz/internal/diag"
	"quartz/internal/source"
	"quartz/internal/token"
)

// Line is one physical line of a source file, as dispatched by the scan
// coordinator. Index is 0-based; Span excludes the terminating newline.
type Line struct {
	Index uint32
	Span  source.Span
}

// scanner tokenizes exactly one line. All state is local to a ScanLine
// call, which is what makes concurrent per-line scanning safe.
type scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// ScanLine produces the ordered tokens for one physical line of file.
// Spans in the result are file-absolute, so the output for a given line is
// identical no matter when or on which goroutine it is scanned.
//
// Lexical failures go through Options.Reporter and do not stop the line:
// the offending bytes are skipped and scanning resumes, so tokens before
// and after a failure point survive. Constructs that would have to span
// multiple lines (an unterminated string or block comment) are reported at
// the end of the line that opened them.
func ScanLine(file *source.File, line Line, opts Options) []token.Token {
	s := &scanner{
		file:   file,
		cursor: NewCursorRange(file, line.Span.Start, line.Span.End),
		opts:   opts,
	}

	var tokens []token.Token
	for {
		s.skipTrivia()
		if s.cursor.EOF() {
			break
		}
		if tok, ok := s.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// scanToken dispatches on the current byte. ok is false when the input
// produced a diagnostic instead of a token.
func (s *scanner) scanToken() (token.Token, bool) {
	ch := s.cursor.Peek()

	switch {
	case ch == '_':
		// "_foo" is an identifier; classification happens in scanIdentOrKeyword.
		return s.scanIdentOrKeyword()

	case isIdentStartByte(ch):
		return s.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// Possible Unicode identifier; scanIdentOrKeyword sorts it out.
		return s.scanIdentOrKeyword()

	case isDec(ch):
		return s.scanNumber()

	case ch == '.' && s.isNumberAfterDot():
		return s.scanNumber()

	case ch == '"':
		return s.scanString()

	default:
		return s.scanOperatorOrPunct()
	}
}

// skipTrivia consumes whitespace and comments before the next token.
func (s *scanner) skipTrivia() {
	for !s.cursor.EOF() {
		b := s.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			s.cursor.Bump()
			continue
		}

		if b == '/' {
			if s.skipComment() {
				continue
			}
		}

		break
	}
}

// skipComment consumes "//..." to the end of the line or a "/*...*/" block
// comment (with nesting). A block comment still open at the end of the
// line is reported: the per-line scanner does not support continuations.
func (s *scanner) skipComment() bool {
	start := s.cursor.Mark()
	if !s.cursor.Eat('/') {
		return false
	}

	switch s.cursor.Peek() {
	case '/':
		for !s.cursor.EOF() {
			s.cursor.Bump()
		}
		return true

	case '*':
		s.cursor.Bump()
		depth := 1
		for !s.cursor.EOF() && depth > 0 {
			if b0, b1, ok := s.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					s.cursor.Bump()
					s.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					s.cursor.Bump()
					s.cursor.Bump()
					depth--
					continue
				}
			}
			s.cursor.Bump()
		}
		if depth > 0 {
			s.errLex(diag.LexUnterminatedBlock, s.cursor.SpanFrom(start), "unterminated block comment")
		}
		return true

	default:
		// Not a comment; rewind and let it scan as the '/' operator.
		s.cursor.Reset(start)
		return false
	}
}
