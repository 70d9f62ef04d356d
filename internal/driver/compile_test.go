package driver_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"quartz/internal/ast"
	"quartz/internal/diag"
	"quartz/internal/driver"
	"quartz/internal/scan"
	"quartz/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestCompileLetStatement(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.qz", "let x = 5\n")

	s, err := driver.NewSession(dir, "main.qz", driver.Options{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	res, err := s.Compile(context.Background())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}

	want := []token.Kind{token.KwLet, token.Ident, token.Assign, token.IntLit, token.EOF}
	if got := kinds(res.Tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}

	// All tokens sit on line 1 with increasing columns.
	prevCol := uint32(0)
	for _, tok := range res.Tokens[:len(res.Tokens)-1] {
		start, _ := res.FileSet.Resolve(tok.Span)
		if start.Line != 1 {
			t.Errorf("token %v on line %d, want 1", tok.Kind, start.Line)
		}
		if start.Col <= prevCol {
			t.Errorf("token %v column %d not increasing", tok.Kind, start.Col)
		}
		prevCol = start.Col
	}
}

func TestCompilePartialFailure(t *testing.T) {
	s := driver.NewSessionFromString("<test>", "1 + @\n2 + 3\n", driver.Options{})

	res, err := s.Compile(context.Background())
	if !errors.Is(err, driver.ErrLexFailed) {
		t.Fatalf("expected ErrLexFailed, got %v", err)
	}
	if res == nil {
		t.Fatal("partial result must be available on lexical failure")
	}

	want := []token.Kind{
		token.IntLit, token.Plus,
		token.IntLit, token.Plus, token.IntLit,
		token.EOF,
	}
	if got := kinds(res.Tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}

	items := res.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(items))
	}
	if items[0].Code != diag.LexUnknownChar {
		t.Errorf("code = %v, want LexUnknownChar", items[0].Code)
	}
	if items[0].Phase != diag.PhaseLex {
		t.Errorf("phase = %v, want PhaseLex", items[0].Phase)
	}
}

func TestMaxDiagnosticsCapsBag(t *testing.T) {
	// Five bad lines, room for two diagnostics: the cap must hold across
	// the per-line merge, not only across direct Add calls.
	s := driver.NewSessionFromString("<test>", "@\n@\n@\n@\n@\n", driver.Options{MaxDiagnostics: 2})

	if _, err := s.Compile(context.Background()); !errors.Is(err, driver.ErrLexFailed) {
		t.Fatalf("expected ErrLexFailed, got %v", err)
	}
	if got := s.Bag().Len(); got != 2 {
		t.Fatalf("bag holds %d diagnostics, want the cap of 2", got)
	}
	for _, d := range s.Bag().Items() {
		if d.Code != diag.LexUnknownChar {
			t.Errorf("unexpected code %v", d.Code)
		}
	}
}

func TestCompileTreeSessionBypassesScanning(t *testing.T) {
	s := driver.NewSessionFromTree("prebuilt", &ast.File{Name: "prebuilt"}, driver.Options{})

	res, err := s.Compile(context.Background())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(res.Tokens) != 0 {
		t.Errorf("tree session produced %d tokens, want none", len(res.Tokens))
	}
	if res.Bag.Len() != 0 {
		t.Errorf("tree session produced diagnostics: %v", res.Bag.Items())
	}
	if _, ok := res.Tree.(driver.TreeSource); !ok {
		t.Errorf("result tree = %T, want TreeSource", res.Tree)
	}
}

func TestInterpretSharesScanContract(t *testing.T) {
	clean := driver.NewSessionFromString("<test>", "let x = 5", driver.Options{})
	if err := clean.Interpret(context.Background()); err != nil {
		t.Fatalf("Interpret(clean): %v", err)
	}

	broken := driver.NewSessionFromString("<test>", "let x = @", driver.Options{})
	if err := broken.Interpret(context.Background()); !errors.Is(err, driver.ErrLexFailed) {
		t.Fatalf("expected ErrLexFailed, got %v", err)
	}
	if !broken.Bag().HasErrors() {
		t.Error("expected error diagnostics on the session bag")
	}
}

func TestCompileModesAgree(t *testing.T) {
	const text = "let a = 1\nlet b = a + 2\n\"oops\nfn f() -> {}\n"

	seq := driver.NewSessionFromString("<test>", text, driver.Options{Mode: scan.Sequential})
	par := driver.NewSessionFromString("<test>", text, driver.Options{Mode: scan.Parallel, Jobs: 3})

	seqRes, seqErr := seq.Compile(context.Background())
	parRes, parErr := par.Compile(context.Background())

	if (seqErr == nil) != (parErr == nil) {
		t.Fatalf("error mismatch: sequential %v, parallel %v", seqErr, parErr)
	}
	if !reflect.DeepEqual(seqRes.Tokens, parRes.Tokens) {
		t.Error("token streams differ between modes")
	}
	if !reflect.DeepEqual(seqRes.Bag.Items(), parRes.Bag.Items()) {
		t.Error("diagnostics differ between modes")
	}
}

func TestTokenCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenTokenCacheAt: %v", err)
	}

	dir := t.TempDir()
	writeSource(t, dir, "main.qz", "let x = 5\n")

	first, err := driver.NewSession(dir, "main.qz", driver.Options{Cache: cache})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	firstRes, err := first.Compile(context.Background())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	second, err := driver.NewSession(dir, "main.qz", driver.Options{Cache: cache})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	secondRes, err := second.Compile(context.Background())
	if err != nil {
		t.Fatalf("Compile (cached): %v", err)
	}

	if !reflect.DeepEqual(firstRes.Tokens, secondRes.Tokens) {
		t.Error("cached stream differs from the scanned one")
	}
}

func TestTokenCacheSkipsDirtyScans(t *testing.T) {
	cache, err := driver.OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenTokenCacheAt: %v", err)
	}

	s := driver.NewSessionFromString("<test>", "let x = @", driver.Options{Cache: cache})
	if _, err := s.Compile(context.Background()); !errors.Is(err, driver.ErrLexFailed) {
		t.Fatalf("expected ErrLexFailed, got %v", err)
	}

	// The dirty scan must not have been written: a fresh session over the
	// same text reports the same diagnostic again.
	again := driver.NewSessionFromString("<test>", "let x = @", driver.Options{Cache: cache})
	if _, err := again.Compile(context.Background()); !errors.Is(err, driver.ErrLexFailed) {
		t.Fatalf("expected ErrLexFailed on rescan, got %v", err)
	}
	if again.Bag().Len() != 1 {
		t.Errorf("diagnostics = %d, want 1", again.Bag().Len())
	}
}

func TestTokenizeKeepsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.qz", "1 + @\n")

	res, err := driver.Tokenize(context.Background(), dir, "main.qz", driver.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Tokens) == 0 {
		t.Error("expected a partial token stream")
	}
	if !res.Bag.HasErrors() {
		t.Error("expected the unknown character diagnostic")
	}
}
