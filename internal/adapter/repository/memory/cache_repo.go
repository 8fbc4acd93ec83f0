// Package memory provides an in-process domain.CacheRepository, used by
// tests and by single-process deployments that don't want a database round
// trip on the tier-2 read path.
package memory

import (
	"context"
	"sync"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

// CacheRepository is a concurrency-safe map-backed cache store.
type CacheRepository struct {
	mu      sync.RWMutex
	entries map[domain.CacheKey]domain.CacheEntry
}

// NewCacheRepository creates an empty in-memory cache repository.
func NewCacheRepository() *CacheRepository {
	return &CacheRepository{
		entries: make(map[domain.CacheKey]domain.CacheEntry),
	}
}

// Get retrieves a copy of the entry for a key, or domain.ErrCacheMiss.
func (r *CacheRepository) Get(_ context.Context, key domain.CacheKey) (*domain.CacheEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	// Copy out so callers can't mutate the stored payload.
	out := entry
	out.Payload = make([]byte, len(entry.Payload))
	copy(out.Payload, entry.Payload)
	return &out, nil
}

// Upsert stores the entry, replacing any previous payload for its key.
func (r *CacheRepository) Upsert(_ context.Context, entry *domain.CacheEntry) error {
	stored := *entry
	stored.Payload = make([]byte, len(entry.Payload))
	copy(stored.Payload, entry.Payload)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[stored.Key] = stored
	return nil
}

// DeleteByScope removes every entry whose key scope matches.
func (r *CacheRepository) DeleteByScope(_ context.Context, scope string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.entries {
		if key.Scope == scope {
			delete(r.entries, key)
		}
	}
	return nil
}

// Len reports the number of stored entries. Test helper.
func (r *CacheRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
