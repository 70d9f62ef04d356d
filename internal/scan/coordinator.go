// Package scan turns a multi-line source file into one ordered token
// stream, optionally fanning lines out to a bounded worker pool.
//
// The central property is determinism: sequential and parallel execution
// produce byte-identical token streams and diagnostic lists. Both modes
// feed the same per-line scan function and the same index-keyed assembly;
// parallel mode only changes who runs each line, never the order results
// are collected in. Results are kept in a slot array addressed by line
// index — a completion-order queue would scramble lines, because task
// completion order is not dispatch order.
package scan

import (
	"context"
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"quartz/internal/diag"
	"quartz/internal/lexer"
	"quartz/internal/source"
	"quartz/internal/token"
)

// Mode selects how line tasks are dispatched.
type Mode uint8

const (
	// Sequential scans lines in index order on the calling goroutine.
	Sequential Mode = iota
	// Parallel scans lines on a bounded worker pool.
	Parallel
)

// Options configures a Coordinator.
type Options struct {
	Mode Mode
	// Jobs bounds the worker pool in Parallel mode; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnosticsPerLine caps each line's diagnostic bag.
	MaxDiagnosticsPerLine int
}

const defaultMaxDiagnosticsPerLine = 100

// Coordinator fans a file out into per-line scan tasks and reassembles one
// ordered token stream.
type Coordinator struct {
	opts Options

	// scanLine is swappable in tests (e.g. to inject a panicking task).
	scanLine func(*source.File, lexer.Line, lexer.Options) []token.Token
}

// New creates a Coordinator with the given options.
func New(opts Options) *Coordinator {
	if opts.MaxDiagnosticsPerLine <= 0 {
		opts.MaxDiagnosticsPerLine = defaultMaxDiagnosticsPerLine
	}
	return &Coordinator{opts: opts, scanLine: lexer.ScanLine}
}

// lineResult is one line's contribution, keyed by its slot index.
type lineResult struct {
	tokens []token.Token
	bag    *diag.Bag
}

// SplitLines derives the 0-indexed physical lines of a file from its line
// index. Line spans exclude the terminating newline. An empty file has no
// lines; a trailing newline does not create a final empty line.
func SplitLines(file *source.File) []lexer.Line {
	content := file.Content
	if len(content) == 0 {
		return nil
	}

	lines := make([]lexer.Line, 0, len(file.LineIdx)+1)
	start := uint32(0)
	for _, nl := range file.LineIdx {
		lines = append(lines, lexer.Line{
			Index: uint32(len(lines)),
			Span:  source.Span{File: file.ID, Start: start, End: nl},
		})
		start = nl + 1
	}
	if int(start) < len(content) {
		lines = append(lines, lexer.Line{
			Index: uint32(len(lines)),
			Span:  source.Span{File: file.ID, Start: start, End: uint32(len(content))},
		})
	}
	return lines
}

// Run tokenizes the file, appends diagnostics to bag in line order, and
// returns the ordered token stream. A non-empty stream is terminated by a
// single EOF token; an empty file yields an empty stream.
//
// Diagnostics on one line never suppress scanning of the others: every
// line is attempted and every line's recovered tokens are kept.
func (c *Coordinator) Run(ctx context.Context, file *source.File, bag *diag.Bag) ([]token.Token, error) {
	lines := SplitLines(file)
	if len(lines) == 0 {
		return nil, nil
	}

	// One slot per line; tasks write only their own slot.
	results := make([]lineResult, len(lines))

	switch c.opts.Mode {
	case Parallel:
		if err := c.runParallel(ctx, file, lines, results); err != nil {
			return nil, err
		}
	default:
		if err := c.runSequential(ctx, file, lines, results); err != nil {
			return nil, err
		}
	}

	// Concatenate in ascending line index order, only now that every slot
	// has reported.
	var tokens []token.Token
	for i := range results {
		tokens = append(tokens, results[i].tokens...)
		bag.Merge(results[i].bag)
	}

	end, err := contentLen(file)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, token.Token{
		Kind: token.EOF,
		Span: source.Span{File: file.ID, Start: end, End: end},
	})
	return tokens, nil
}

func (c *Coordinator) runSequential(ctx context.Context, file *source.File, lines []lexer.Line, results []lineResult) error {
	for i, ln := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[i] = c.scanOne(file, ln)
	}
	return nil
}

func (c *Coordinator) runParallel(ctx context.Context, file *source.File, lines []lexer.Line, results []lineResult) error {
	jobs := c.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))

	for i, ln := range lines {
		i, ln := i, ln
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// Slot index i is unique per task, so no mutex is needed.
			results[i] = c.scanOne(file, ln)
			return nil
		})
	}

	return g.Wait()
}

// scanOne scans a single line into its own bag. A panicking scan is
// isolated: it becomes a diagnostic for that line and the line contributes
// no tokens, leaving sibling lines untouched.
func (c *Coordinator) scanOne(file *source.File, ln lexer.Line) (res lineResult) {
	bag := diag.NewBag(c.opts.MaxDiagnosticsPerLine)
	res.bag = bag

	defer func() {
		if r := recover(); r != nil {
			res.tokens = nil
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.LexScanPanic,
				Phase:    diag.PhaseLex,
				Message:  fmt.Sprintf("scanner failure: %v", r),
				Primary:  ln.Span,
			})
		}
	}()

	res.tokens = c.scanLine(file, ln, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return res
}

func contentLen(file *source.File) (uint32, error) {
	n, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return 0, fmt.Errorf("file content length overflow: %w", err)
	}
	return n, nil
}
