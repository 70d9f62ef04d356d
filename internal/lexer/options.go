package lexer

import (
	"quartz/internal/diag"
	"quartz/internal/source"
)

// Options configures a single ScanLine call.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil: errors are then
	// dropped, but scanning still continues past them.
	Reporter diag.Reporter
}

func (s *scanner) errLex(code diag.Code, sp source.Span, msg string) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
