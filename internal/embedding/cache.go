package embedding

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a persisted key->vector cache. Keys are content hashes, so
// concurrent writes of the same key are idempotent and order-independent;
// a racing reader may miss and recompute, which is safe.
type Store interface {
	Get(key string) ([]float64, bool)
	Put(key string, vec []float64)
	// Flush persists pending writes.
	Flush() error
	// Cleanup performs periodic maintenance. The current implementations
	// only flush; no expiry logic exists yet.
	Cleanup() error
}

// CacheKey derives a stable key from the embedded text, its context label
// (e.g. "profile", "education"), and the model identifier.
func CacheKey(text, context, model string) string {
	sum := sha256.Sum256([]byte(text + "\x00" + context + "\x00" + model))
	return hex.EncodeToString(sum[:])
}

// FileStore is a file-backed Store: one JSON file holding the whole
// key->vector map, loaded on open, appended in memory, persisted on
// Flush. There is no eviction.
type FileStore struct {
	path string

	mu      sync.RWMutex
	vectors map[string][]float64
	dirty   bool
}

// OpenFileStore loads (or initializes) a file-backed vector cache. A
// missing file starts an empty cache; a corrupt file is discarded rather
// than failing the caller.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		vectors: make(map[string][]float64),
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding cache %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.vectors); err != nil {
		// Corrupt cache degrades to empty; it will be rewritten on Flush.
		s.vectors = make(map[string][]float64)
	}
	return s, nil
}

// Get returns the cached vector for the key.
func (s *FileStore) Get(key string) ([]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vec, ok := s.vectors[key]
	return vec, ok
}

// Put records a vector under the key.
func (s *FileStore) Put(key string, vec []float64) {
	if len(vec) == 0 {
		return
	}
	s.mu.Lock()
	s.vectors[key] = vec
	s.dirty = true
	s.mu.Unlock()
}

// Flush writes the cache to disk via a temp-file rename.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	data, err := json.Marshal(s.vectors)
	if err != nil {
		return fmt.Errorf("failed to marshal embedding cache: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write embedding cache: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace embedding cache: %w", err)
	}
	s.dirty = false
	return nil
}

// Cleanup flushes the cache. No expiry is performed.
func (s *FileStore) Cleanup() error {
	return s.Flush()
}

// Len returns the number of cached vectors.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

// NullStore is a Store that caches nothing. It stands in when caching is
// disabled.
type NullStore struct{}

// Get always misses.
func (NullStore) Get(string) ([]float64, bool) { return nil, false }

// Put discards the vector.
func (NullStore) Put(string, []float64) {}

// Flush is a no-op.
func (NullStore) Flush() error { return nil }

// Cleanup is a no-op.
func (NullStore) Cleanup() error { return nil }
