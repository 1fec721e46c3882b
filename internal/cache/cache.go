// Package cache implements the on-disk, content-addressed response cache
// described in spec §3 and §6: opaque HTTP response blobs stored with
// their expiry metadata as one JSON file under cache/http/<hash>, extracted article full text
// under cache/fulltext/<key>.txt, and atomic temp-file-then-rename writes
// staged through cache/tmp.
//
// Eviction is by TTL, not LRU: an expired entry is simply ignored by Get
// and silently overwritten by the next Put.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Entry is an opaque cached HTTP response blob plus the metadata needed to
// decide whether it is still valid and to reconstruct a synthetic response.
type Entry struct {
	Status    int                 `json:"status"`
	Header    map[string][]string `json:"header"`
	Body      []byte              `json:"body"`
	StoredAt  time.Time           `json:"stored_at"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// Expired reports whether the entry's TTL has elapsed as of now.
func (e *Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// Store is a single on-disk cache rooted at Dir. It is safe for concurrent
// use: two concurrent misses for the same key may both fetch upstream
// (acceptable per spec §5), but writes never interleave their bytes
// because they land in a fresh temp file before being renamed into place.
type Store struct {
	Dir string
}

// New creates (if needed) the cache/http, cache/fulltext, and cache/tmp
// subdirectories under dir and returns a Store rooted there.
func New(dir string) (*Store, error) {
	for _, sub := range []string{"http", "fulltext", "tmp"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("cache: create %s: %w", sub, err)
		}
	}
	return &Store{Dir: dir}, nil
}

// Key derives a stable cache key from the request method, the full URL,
// and a caller-selected subset of vary headers. Two logically identical
// requests must hash to the same key regardless of header insertion order
// or query-parameter ordering (spec §8's determinism invariant), so the
// query string is re-encoded in sorted key order and the vary-header map
// is sorted by key before hashing.
func Key(method, rawURL string, varyHeaders map[string]string) string {
	canonical := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		u.RawQuery = u.Query().Encode()
		canonical = u.String()
	}
	h := xxhash.New()
	_, _ = h.WriteString(strings.ToUpper(method))
	_, _ = h.WriteString("\n")
	_, _ = h.WriteString(canonical)

	keys := make([]string, 0, len(varyHeaders))
	for k := range varyHeaders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = h.WriteString("\n")
		_, _ = h.WriteString(strings.ToLower(k))
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(varyHeaders[k])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func (s *Store) httpPath(key string) string {
	return filepath.Join(s.Dir, "http", key)
}

// Get returns the cached entry for key, or (nil, false) if absent or
// expired.
func (s *Store) Get(key string) (*Entry, bool) {
	data, err := os.ReadFile(s.httpPath(key))
	if err != nil {
		return nil, false
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}
	if e.Expired(time.Now()) {
		return nil, false
	}
	return &e, true
}

// Put atomically stores a response entry for key with the given TTL.
func (s *Store) Put(key string, status int, header http.Header, body []byte, ttl time.Duration) error {
	now := time.Now()
	e := Entry{
		Status:    status,
		Header:    map[string][]string(header),
		Body:      body,
		StoredAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	data, err := json.Marshal(&e)
	if err != nil {
		return fmt.Errorf("cache: marshal entry: %w", err)
	}
	return s.atomicWrite(s.httpPath(key), data)
}

// SaveFullText atomically writes extracted article plain text and returns
// the file path, per the Article.get full-text pipeline in spec §4.D.
func (s *Store) SaveFullText(key string, text []byte) (string, error) {
	path := filepath.Join(s.Dir, "fulltext", key+".txt")
	if err := s.atomicWrite(path, text); err != nil {
		return "", err
	}
	return path, nil
}

// FullTextPath returns the path a prior SaveFullText call for key would
// have produced, without checking existence.
func (s *Store) FullTextPath(key string) string {
	return filepath.Join(s.Dir, "fulltext", key+".txt")
}

// atomicWrite writes data to a fresh file under cache/tmp and renames it
// into place, so a crash or cancellation never leaves a partially written
// cache entry visible to readers (spec §5, §7's "no cache write is
// finalized on cancellation").
func (s *Store) atomicWrite(finalPath string, data []byte) error {
	tmpDir := filepath.Join(s.Dir, "tmp")
	tmpPath := filepath.Join(tmpDir, uuid.NewString()+".tmp")

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("cache: write temp file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("cache: create destination dir: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("cache: rename temp file into place: %w", err)
	}
	return nil
}

// DefaultDir returns the platform-appropriate user cache directory for
// biomcp, honoring the BIOMCP_CACHE_DIR override.
func DefaultDir() (string, error) {
	if dir := os.Getenv("BIOMCP_CACHE_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", errors.New("cache: could not determine user cache directory")
	}
	return filepath.Join(base, "biomcp"), nil
}
