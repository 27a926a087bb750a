package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-process Store backed by a single mutex-guarded
// map. Expired entries are evicted lazily when read; there is no
// background sweeper, so the map shrinks only through reads, deletes
// and pattern invalidation.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryStore creates an empty in-memory cache store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
	}
}

// Get returns the value cached under key. An entry past its deadline
// counts as a miss and is dropped on the spot.
func (s *MemoryStore) Get(_ context.Context, key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		missesTotal.Inc()
		return nil, false
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		// Drop only if the entry was not overwritten meanwhile.
		if cur, ok := s.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		missesTotal.Inc()
		return nil, false
	}

	hitsTotal.Inc()
	return e.value, true
}

// Set stores value under key, replacing any existing entry
func (s *MemoryStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()
	setsTotal.Inc()
}

// Delete removes a single key
func (s *MemoryStore) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	deletesTotal.Inc()
}

// DeletePattern removes every entry whose key contains pattern
func (s *MemoryStore) DeletePattern(_ context.Context, pattern string) {
	s.mu.Lock()
	removed := 0
	for key := range s.entries {
		if strings.Contains(key, pattern) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()
	invalidationsTotal.Add(float64(removed))
}

// Clear drops all entries
func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

// Len reports the number of stored entries, expired ones included
func (s *MemoryStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close implements Store; the memory store holds no external resources
func (s *MemoryStore) Close() error {
	return nil
}
