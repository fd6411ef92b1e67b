package offline

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// Entry is a stored HTTP response snapshot.
type Entry struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Store abstracts generation-keyed response storage. Each generation is the
// full set of cached resources associated with one version tag; entries are
// keyed by request URL (or "/" for the app shell).
type Store interface {
	// Open creates the generation if it does not exist yet.
	Open(ctx context.Context, generation string) error

	// Put stores an entry in the generation, replacing any previous entry
	// under the same key.
	Put(ctx context.Context, generation, key string, entry Entry) error

	// Get returns the entry under key, or found=false when absent. Reading
	// from a generation that does not exist is not an error.
	Get(ctx context.Context, generation, key string) (entry Entry, found bool, err error)

	// Generations lists every existing generation tag.
	Generations(ctx context.Context) ([]string, error)

	// Delete removes a generation and all of its entries.
	Delete(ctx context.Context, generation string) error
}

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu          sync.RWMutex
	generations map[string]map[string]Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{generations: make(map[string]map[string]Entry)}
}

// Open implements Store.
func (s *MemoryStore) Open(_ context.Context, generation string) error {
	if generation == "" {
		return fmt.Errorf("offline: generation tag cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.generations[generation]; !ok {
		s.generations[generation] = make(map[string]Entry)
	}
	return nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, generation, key string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.generations[generation]
	if !ok {
		entries = make(map[string]Entry)
		s.generations[generation] = entries
	}
	entries[key] = entry
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, generation, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.generations[generation]
	if !ok {
		return Entry{}, false, nil
	}
	entry, ok := entries[key]
	return entry, ok, nil
}

// Generations implements Store.
func (s *MemoryStore) Generations(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]string, 0, len(s.generations))
	for tag := range s.generations {
		tags = append(tags, tag)
	}
	return tags, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, generation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.generations, generation)
	return nil
}
