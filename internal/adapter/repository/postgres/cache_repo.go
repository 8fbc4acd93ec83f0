package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

// cacheRepository implements domain.CacheRepository. The upsert is keyed on
// (scope, period_id, variant) so concurrent writers race harmlessly:
// recomputation is deterministic, last writer wins.
type cacheRepository struct {
	db *DB
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(db *DB) domain.CacheRepository {
	return &cacheRepository{db: db}
}

// Get retrieves the entry for a key, or domain.ErrCacheMiss.
func (r *cacheRepository) Get(ctx context.Context, key domain.CacheKey) (*domain.CacheEntry, error) {
	query := `
		SELECT payload, generated_at, ttl_seconds
		FROM performance_cache
		WHERE scope = $1 AND period_id = $2 AND variant = $3
	`

	entry := &domain.CacheEntry{Key: key}
	var ttlSeconds int64

	err := r.db.QueryRowContext(ctx, query, key.Scope, key.PeriodID, string(key.Variant)).Scan(
		&entry.Payload,
		&entry.GeneratedAt,
		&ttlSeconds,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache entry %s: %w", key, err)
	}

	entry.TTL = time.Duration(ttlSeconds) * time.Second
	return entry, nil
}

// Upsert stores the entry, replacing any previous payload for its key.
func (r *cacheRepository) Upsert(ctx context.Context, entry *domain.CacheEntry) error {
	query := `
		INSERT INTO performance_cache (scope, period_id, variant, payload, generated_at, ttl_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (scope, period_id, variant)
		DO UPDATE SET payload = EXCLUDED.payload,
		              generated_at = EXCLUDED.generated_at,
		              ttl_seconds = EXCLUDED.ttl_seconds
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.Key.Scope,
		entry.Key.PeriodID,
		string(entry.Key.Variant),
		entry.Payload,
		entry.GeneratedAt,
		int64(entry.TTL/time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert cache entry %s: %w", entry.Key, err)
	}

	return nil
}

// DeleteByScope removes every entry for the scope across all periods and
// variants. Called on snapshot correction.
func (r *cacheRepository) DeleteByScope(ctx context.Context, scope string) error {
	query := `DELETE FROM performance_cache WHERE scope = $1`

	if _, err := r.db.ExecContext(ctx, query, scope); err != nil {
		return fmt.Errorf("failed to delete cache entries for scope %s: %w", scope, err)
	}

	return nil
}
