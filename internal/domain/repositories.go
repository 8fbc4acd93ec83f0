package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SnapshotRepository defines read-only access to the snapshot store.
// Snapshots are created by an external market-close trigger; the core never
// writes them.
type SnapshotRepository interface {
	// ListByEntityAndRange retrieves the entity's snapshots with trading
	// dates in [from, to], ordered ascending by trading date. A zero `from`
	// means "since inception". An empty result is not an error.
	ListByEntityAndRange(ctx context.Context, entityID uuid.UUID, from, to time.Time) ([]Snapshot, error)

	// FirstTradingDate retrieves the entity's first-ever snapshot date,
	// used by the mid-period-join rule. Returns ErrNoSnapshots if the
	// entity has no history at all.
	FirstTradingDate(ctx context.Context, entityID uuid.UUID) (time.Time, error)
}

// BenchmarkRepository defines read-only access to the external benchmark
// index series.
type BenchmarkRepository interface {
	// ListByRange retrieves benchmark points with dates in [from, to],
	// ordered ascending. Gaps in coverage are expected; the core proceeds
	// on whatever subset exists.
	ListByRange(ctx context.Context, from, to time.Time) ([]BenchmarkPoint, error)
}

// CacheRepository defines the storage the orchestrator owns. Implementations
// must be safe for concurrent use; Upsert is last-writer-wins, which is
// acceptable because recomputation is deterministic over the same store state.
type CacheRepository interface {
	// Get retrieves the entry for a key, or ErrCacheMiss if none exists.
	Get(ctx context.Context, key CacheKey) (*CacheEntry, error)

	// Upsert stores the entry, replacing any previous payload for its key.
	Upsert(ctx context.Context, entry *CacheEntry) error

	// DeleteByScope removes every entry whose key scope matches, across all
	// periods and variants. Used on snapshot correction: a stale-but-
	// invalidated entry must never be served afterwards.
	DeleteByScope(ctx context.Context, scope string) error
}
