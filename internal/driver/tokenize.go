package driver

import (
	"context"

	"quartz/internal/diag"
	"quartz/internal/source"
	"quartz/internal/token"
)

// TokenizeResult carries everything the CLI needs to render a token dump.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize scans one file and returns the stream together with its
// diagnostics. Unlike Compile it never treats lexical errors as a failed
// run: the dump is the product.
func Tokenize(ctx context.Context, baseDir, path string, opts Options) (*TokenizeResult, error) {
	s, err := NewSession(baseDir, path, opts)
	if err != nil {
		return nil, err
	}

	src := s.src.(TextSource)
	file := s.fset.Get(src.FileID)
	tokens, err := s.scanText(ctx, file)
	if err != nil {
		return nil, err
	}

	return &TokenizeResult{
		FileSet: s.fset,
		File:    file,
		Tokens:  tokens,
		Bag:     s.bag,
	}, nil
}
