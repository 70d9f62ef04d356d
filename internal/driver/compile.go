package driver

import (
	"context"
	"fmt"

	"quartz/internal/diag"
	"quartz/internal/scan"
	"quartz/internal/source"
	"quartz/internal/token"
)

// CompileResult is the shape handed across the phase boundary: an ordered
// token stream plus the session's ordered diagnostic list. For a tree
// session the stream is empty; Tree carries the input instead.
type CompileResult struct {
	Tokens  []token.Token
	Bag     *diag.Bag
	FileSet *source.FileSet
	// File is the scanned file; nil for tree sessions.
	File *source.File
	// Tree is the pre-built input of a tree session; nil otherwise.
	Tree Source
}

// Compile runs the session through scanning and returns the result for
// the downstream parsing phase. Lexical errors do not abort the scan:
// every line is attempted and the full diagnostic list accumulates. When
// errors were recorded the returned error is ErrLexFailed, but the partial
// token stream stays available on the result for best-effort tooling.
func (s *Session) Compile(ctx context.Context) (*CompileResult, error) {
	switch src := s.src.(type) {
	case TreeSource:
		// Already parsed: nothing to scan, no lexical diagnostics. The
		// tree passes straight to the parsing phase boundary.
		return &CompileResult{Bag: s.bag, FileSet: s.fset, Tree: src}, nil

	case TextSource:
		file := s.fset.Get(src.FileID)
		tokens, err := s.scanText(ctx, file)
		if err != nil {
			return nil, err
		}

		res := &CompileResult{Tokens: tokens, Bag: s.bag, FileSet: s.fset, File: file}
		if s.bag.HasErrors() {
			return res, fmt.Errorf("%w: %d error(s)", ErrLexFailed, s.bag.ErrorCount())
		}
		return res, nil

	default:
		return nil, fmt.Errorf("unknown source representation %T", s.src)
	}
}

// Interpret runs the same scanning contract as Compile without keeping a
// token stream for later phases. Evaluation itself is a future phase.
func (s *Session) Interpret(ctx context.Context) error {
	switch src := s.src.(type) {
	case TreeSource:
		return nil

	case TextSource:
		file := s.fset.Get(src.FileID)
		if _, err := s.scanText(ctx, file); err != nil {
			return err
		}
		if s.bag.HasErrors() {
			return fmt.Errorf("%w: %d error(s)", ErrLexFailed, s.bag.ErrorCount())
		}
		return nil

	default:
		return fmt.Errorf("unknown source representation %T", s.src)
	}
}

// scanText tokenizes the file through the coordinator, consulting the
// token cache when one is configured. Only clean scans are cached, so a
// cache hit implies an empty diagnostic list.
func (s *Session) scanText(ctx context.Context, file *source.File) ([]token.Token, error) {
	var phase int
	if s.opts.Timer != nil {
		phase = s.opts.Timer.Begin("scan")
	}

	if s.opts.Cache != nil {
		if tokens, ok, err := s.opts.Cache.Get(file.Hash, file); err == nil && ok {
			if s.opts.Timer != nil {
				s.opts.Timer.End(phase, "cache hit")
			}
			return tokens, nil
		}
	}

	coord := scan.New(scan.Options{
		Mode:                  s.opts.Mode,
		Jobs:                  s.opts.Jobs,
		MaxDiagnosticsPerLine: s.opts.MaxDiagnostics,
	})
	tokens, err := coord.Run(ctx, file, s.bag)
	if err != nil {
		return nil, err
	}

	if s.opts.Cache != nil && s.bag.Len() == 0 {
		// Best effort: a failed cache write never fails the scan.
		_ = s.opts.Cache.Put(file.Hash, file.Path, tokens)
	}

	if s.opts.Timer != nil {
		s.opts.Timer.End(phase, fmt.Sprintf("%d tokens", len(tokens)))
	}
	return tokens, nil
}
