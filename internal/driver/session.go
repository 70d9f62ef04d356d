package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"quartz/internal/ast"
	"quartz/internal/diag"
	"quartz/internal/observ"
	"quartz/internal/scan"
	"quartz/internal/source"
)

// RequiredExtension is the only extension accepted by file-based session
// construction.
const RequiredExtension = ".qz"

var (
	// ErrInvalidExtension means a file path did not carry RequiredExtension.
	ErrInvalidExtension = errors.New("invalid extension")
	// ErrLexFailed means scanning finished with at least one error
	// diagnostic. The partial token stream is still available on the result.
	ErrLexFailed = errors.New("lexical analysis failed")
)

// Source is the normalized input representation: exactly one of raw text
// or a pre-built syntax tree. The interface is sealed so the exclusivity
// holds by construction rather than by discipline.
type Source interface {
	isSource()
}

// TextSource is source text loaded into the session's FileSet.
type TextSource struct {
	FileID source.FileID
}

func (TextSource) isSource() {}

// TreeSource is an already-parsed tree; scanning is bypassed entirely.
type TreeSource struct {
	Root *ast.File
}

func (TreeSource) isSource() {}

// Options configures a Session.
type Options struct {
	// MaxDiagnostics caps the session's diagnostic bag; <= 0 uses a default.
	MaxDiagnostics int
	// Mode selects sequential or parallel scanning. The choice is not
	// observable in the output, only in throughput.
	Mode scan.Mode
	// Jobs bounds the scan worker pool; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set, is consulted for token streams of unchanged files.
	Cache *TokenCache
	// Timer, when set, records phase durations.
	Timer *observ.Timer
}

const defaultMaxDiagnostics = 100

// Session owns one compilation attempt from provenance through scanning.
// It is owned by a single caller; scan tasks it spawns internally work on
// read-only line views and report back through the coordinator, never by
// mutating the session.
type Session struct {
	// InputID identifies the provenance: a file path, or a synthetic label
	// for in-memory and tree sources.
	InputID string
	// OutputID is the destination identifier. The core never writes it;
	// it is carried for the caller.
	OutputID string

	fset *source.FileSet
	src  Source
	bag  *diag.Bag
	opts Options
}

func newSession(inputID string, fset *source.FileSet, src Source, opts Options) *Session {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = defaultMaxDiagnostics
	}
	return &Session{
		InputID: inputID,
		fset:    fset,
		src:     src,
		bag:     diag.NewBag(opts.MaxDiagnostics),
		opts:    opts,
	}
}

// NewSession constructs a session from a file path. Relative paths resolve
// against baseDir, never against the process working directory. The file
// must carry RequiredExtension; its content is normalized and trailing
// whitespace is trimmed before storage. Construction errors are final: no
// partial session is returned.
func NewSession(baseDir, path string, opts Options) (*Session, error) {
	if ext := filepath.Ext(path); ext != RequiredExtension {
		return nil, fmt.Errorf("%w: %q, expected %q", ErrInvalidExtension, ext, RequiredExtension)
	}

	fset := source.NewFileSetWithBase(baseDir)
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(fset.ResolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	content, flags := source.Normalize(content)
	content, trimmed := source.TrimEnd(content)
	if trimmed {
		flags |= source.FileTrimmedEnd
	}
	id := fset.Add(path, content, flags)

	return newSession(path, fset, TextSource{FileID: id}, opts), nil
}

// NewSessionFromString constructs a session from in-memory text. No
// filesystem access, no extension check; label only identifies the input
// in diagnostics.
func NewSessionFromString(label, text string, opts Options) *Session {
	fset := source.NewFileSet()
	id := fset.AddVirtual(label, []byte(text))
	return newSession(label, fset, TextSource{FileID: id}, opts)
}

// NewSessionFromTree constructs a session around an already-parsed tree.
// The session holds no text and scanning is skipped entirely.
func NewSessionFromTree(label string, root *ast.File, opts Options) *Session {
	return newSession(label, source.NewFileSet(), TreeSource{Root: root}, opts)
}

// Bag returns the session's diagnostic bag.
func (s *Session) Bag() *diag.Bag { return s.bag }

// FileSet returns the session's file set.
func (s *Session) FileSet() *source.FileSet { return s.fset }

// Source returns the session's input representation.
func (s *Session) Source() Source { return s.src }
