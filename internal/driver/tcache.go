package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"quartz/internal/source"
	"quartz/internal/token"
)

// Current schema version - increment when cachePayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores token streams of clean scans on disk, keyed by the
// content hash of the file they came from. Only diagnostic-free scans are
// stored, so a hit is always equivalent to rescanning. Thread-safe.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is the serialized form of one cached stream. Spans are
// stored as offsets only; the FileID is rebound on read because IDs are
// local to a FileSet.
type cachePayload struct {
	Schema uint16
	Path   string
	Tokens []tokenPayload
}

type tokenPayload struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

// OpenTokenCache initializes a cache at the standard user location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenTokenCacheAt(filepath.Join(base, app))
}

// OpenTokenCacheAt initializes a cache rooted at an explicit directory.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a token stream. The write is atomic: encode to
// a temp file, then rename into place.
func (c *TokenCache) Put(key [32]byte, path string, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{
		Schema: tokenCacheSchemaVersion,
		Path:   path,
		Tokens: make([]tokenPayload, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Tokens[i] = tokenPayload{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
		}
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a cached stream for the key, rebinding spans to file's ID.
// The second return is false on a miss.
func (c *TokenCache) Get(key [32]byte, file *source.File) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}

	tokens := make([]token.Token, len(payload.Tokens))
	for i, tp := range payload.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(tp.Kind),
			Span: source.Span{File: file.ID, Start: tp.Start, End: tp.End},
			Text: tp.Text,
		}
	}
	return tokens, true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(filepath.Join(c.dir, "tokens")); err != nil {
		return fmt.Errorf("drop token cache: %w", err)
	}
	return nil
}
