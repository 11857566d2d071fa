package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/treekeep/doctree/codec"
	"github.com/treekeep/doctree/tree"
)

// docInput represents the two ways a document can be provided to a
// tool. Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a document file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
	Format  string `json:"format,omitempty"  jsonschema:"Document format: json, yaml, toml, or xml. Detected from the file extension or content when omitted"`
}

// doc is a resolved input: the decoded tree plus enough provenance to
// re-encode and write it back.
type doc struct {
	root   *tree.Value
	format codec.Format
	file   string // absolute source path, empty for inline content
}

// cacheEntry holds a cached decode result with LRU ordering and TTL expiry.
type cacheEntry struct {
	root     *tree.Value
	format   codec.Format
	insertAt time.Time
	expireAt time.Time
}

// docCacheStore provides a session-scoped cache for decoded documents.
// File inputs are keyed by (absolutePath, modTime); content inputs by a
// SHA-256 hash. Cached trees are cloned on every hit: tools mutate
// their tree in place, and a cache must never hand two calls the same
// instance.
type docCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var docCache = &docCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a clone of a cached tree, or nil. Expired entries are
// lazily removed.
func (c *docCacheStore) get(key string) (*tree.Value, codec.Format) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, codec.FormatUnknown
	}
	if !e.expireAt.IsZero() && time.Now().After(e.expireAt) {
		delete(c.entries, key)
		return nil, codec.FormatUnknown
	}
	// Touch entry for LRU.
	e.insertAt = time.Now()
	return e.root.Clone(), e.format
}

// put stores a decode result, evicting the oldest entry if at capacity.
// The tree is cloned on the way in for the same reason it is cloned on
// the way out.
func (c *docCacheStore) put(key string, root *tree.Value, format codec.Format, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{root: root.Clone(), format: format, insertAt: now, expireAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *docCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expireAt.IsZero() && now.After(e.expireAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically
// removes expired entries. Safe to call multiple times; only the first
// call spawns a sweeper. It stops when ctx is cancelled.
func (c *docCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input, empty when the
// input cannot be keyed reliably.
func makeCacheKey(in docInput) string {
	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%s:%d", in.Format, absPath, info.ModTime().UnixNano())
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return fmt.Sprintf("content:%s:%s", in.Format, hex.EncodeToString(h[:]))
	default:
		return ""
	}
}

// resolve decodes the document from whichever input was provided,
// using the session cache where possible.
func (in docInput) resolve() (*doc, error) {
	if (in.File == "") == (in.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if in.Content != "" && int64(len(in.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set DOCTREE_MAX_INLINE_SIZE to increase",
			len(in.Content), cfg.MaxInlineSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(in)
		if in.File != "" {
			ttl = cfg.CacheFileTTL
		} else {
			ttl = cfg.CacheContentTTL
		}
		if key != "" {
			if root, format := docCache.get(key); root != nil {
				return &doc{root: root, format: format, file: absOrEmpty(in.File)}, nil
			}
		}
	}

	data, format, file, err := in.read()
	if err != nil {
		return nil, err
	}
	c, err := codecFor(format)
	if err != nil {
		return nil, err
	}
	root, err := c.Decode(data)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled && key != "" {
		docCache.put(key, root, format, ttl)
	}
	return &doc{root: root, format: format, file: file}, nil
}

// read loads the raw bytes and determines the format, preferring an
// explicit format, then the file extension, then content sniffing.
func (in docInput) read() (data []byte, format codec.Format, file string, err error) {
	if in.File != "" {
		file = absOrEmpty(in.File)
		info, statErr := os.Stat(file)
		if statErr != nil {
			return nil, codec.FormatUnknown, "", statErr
		}
		if info.Size() > cfg.MaxDocSize {
			return nil, codec.FormatUnknown, "", fmt.Errorf("document size %d bytes exceeds maximum %d bytes", info.Size(), cfg.MaxDocSize)
		}
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, codec.FormatUnknown, "", err
		}
	} else {
		data = []byte(in.Content)
	}

	if in.Format != "" {
		format, err = codec.ParseFormat(in.Format)
		if err != nil {
			return nil, codec.FormatUnknown, "", err
		}
		return data, format, file, nil
	}
	if in.File != "" {
		if format = codec.DetectFormat(in.File); format != codec.FormatUnknown {
			return data, format, file, nil
		}
	}
	if format = codec.DetectFormatFromContent(data); format == codec.FormatUnknown {
		return nil, codec.FormatUnknown, "", fmt.Errorf("cannot determine document format; pass format explicitly")
	}
	return data, format, file, nil
}

// codecFor builds a codec honoring the configured size ceiling.
func codecFor(format codec.Format) (codec.Codec, error) {
	c, err := codec.For(format)
	if err != nil {
		return nil, err
	}
	switch cc := c.(type) {
	case *codec.JSON:
		cc.MaxSize = cfg.MaxDocSize
	case *codec.YAML:
		cc.MaxSize = cfg.MaxDocSize
	case *codec.TOML:
		cc.MaxSize = cfg.MaxDocSize
	case *codec.XML:
		cc.MaxSize = cfg.MaxDocSize
	}
	return c, nil
}

func absOrEmpty(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
