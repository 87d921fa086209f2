package query

import (
	"strings"
	"sync"
	"time"
)

// Entry is one cached payload with its fetch time.
type Entry struct {
	Payload   []byte
	FetchedAt time.Time
}

// Store is the cache persistence port. Implementations: MemoryStore
// for tests and short-lived use, SQLiteStore for durable caching
// across CLI invocations.
type Store interface {
	Get(key string) (Entry, bool, error)
	Set(key string, payload []byte, fetchedAt time.Time) error
	// InvalidatePrefix drops every entry for a resource: the bare
	// resource key and all parameterized keys under it.
	InvalidatePrefix(prefix string) error
	// Clear drops everything. Login, logout, and user switches must
	// not leak one user's cached data to another.
	Clear() error
	Close() error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty in-memory cache store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Get returns the cached entry for a key.
func (m *MemoryStore) Get(key string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[key]
	return entry, ok, nil
}

// Set caches a payload under a key.
func (m *MemoryStore) Set(key string, payload []byte, fetchedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = Entry{Payload: payload, FetchedAt: fetchedAt}
	return nil
}

// InvalidatePrefix drops every entry under a resource prefix.
func (m *MemoryStore) InvalidatePrefix(prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if key == prefix || strings.HasPrefix(key, prefix+":") {
			delete(m.entries, key)
		}
	}
	return nil
}

// Clear drops every cached entry.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]Entry)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
