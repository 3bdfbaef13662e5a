package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"cslex/internal/source"
	"cslex/internal/token"
)

// Bump when the payload format changes; stale entries are ignored.
const cacheSchemaVersion uint16 = 1

// DiskCache stores token streams keyed by content hash, so unchanged files
// skip the lexer on repeat runs. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// NewDiskCache opens (or creates) a cache directory.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

type cachedToken struct {
	Kind  uint8
	Start uint32
	Len   uint32
	Trim  uint8
}

type cachePayload struct {
	Schema uint16
	Path   string
	Hash   [32]byte
	Tokens []cachedToken
}

func (c *DiskCache) entryPath(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".tokens")
}

// Load returns the cached token stream for a content hash, if present and
// not written by a different schema.
func (c *DiskCache) Load(hash [32]byte) ([]token.Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, err := os.ReadFile(c.entryPath(hash))
	if err != nil {
		return nil, false
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion || payload.Hash != hash {
		return nil, false
	}

	tokens := make([]token.Token, 0, len(payload.Tokens))
	for _, ct := range payload.Tokens {
		tokens = append(tokens, token.Token{
			Kind: token.Kind(ct.Kind),
			Span: source.Span{Start: ct.Start, Len: ct.Len},
			Trim: token.Trim(ct.Trim),
		})
	}
	return tokens, true
}

// Store writes a token stream under its content hash. The write goes
// through a temp file and rename so readers never see a torn entry.
func (c *DiskCache) Store(path string, hash [32]byte, tokens []token.Token) error {
	payload := cachePayload{
		Schema: cacheSchemaVersion,
		Path:   path,
		Hash:   hash,
		Tokens: make([]cachedToken, 0, len(tokens)),
	}
	for _, tok := range tokens {
		payload.Tokens = append(payload.Tokens, cachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			Len:   tok.Span.Len,
			Trim:  uint8(tok.Trim),
		})
	}

	raw, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dst := c.entryPath(hash)
	tmp, err := os.CreateTemp(c.dir, "entry-*")
	if err != nil {
		return fmt.Errorf("create cache temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close cache entry: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}
