package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

func entry(scope, period string, variant domain.AudienceVariant, payload string) *domain.CacheEntry {
	return &domain.CacheEntry{
		Key:         domain.CacheKey{Scope: scope, PeriodID: period, Variant: variant},
		Payload:     []byte(payload),
		GeneratedAt: time.Date(2025, time.June, 11, 16, 0, 0, 0, time.UTC),
		TTL:         30 * time.Minute,
	}
}

func TestCacheRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository()

	stored := entry("entity-1", "1M", domain.VariantFull, `{"return_pct":"10"}`)
	require.NoError(t, repo.Upsert(ctx, stored))

	got, err := repo.Get(ctx, stored.Key)
	require.NoError(t, err)
	assert.Equal(t, stored.Payload, got.Payload)
	assert.Equal(t, stored.GeneratedAt, got.GeneratedAt)
	assert.Equal(t, stored.TTL, got.TTL)

	// Mutating the returned copy must not touch the stored bytes
	got.Payload[0] = 'X'
	again, err := repo.Get(ctx, stored.Key)
	require.NoError(t, err)
	assert.Equal(t, byte('{'), again.Payload[0])
}

func TestCacheRepository_MissAndUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository()
	key := domain.CacheKey{Scope: "entity-1", PeriodID: "1M", Variant: domain.VariantFull}

	_, err := repo.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, repo.Upsert(ctx, entry("entity-1", "1M", domain.VariantFull, "old")))
	require.NoError(t, repo.Upsert(ctx, entry("entity-1", "1M", domain.VariantFull, "new")))

	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got.Payload)
	assert.Equal(t, 1, repo.Len())
}

func TestCacheRepository_DeleteByScope(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository()

	require.NoError(t, repo.Upsert(ctx, entry("entity-1", "1M", domain.VariantFull, "a")))
	require.NoError(t, repo.Upsert(ctx, entry("entity-1", "YTD", domain.VariantLimited, "b")))
	require.NoError(t, repo.Upsert(ctx, entry("entity-2", "1M", domain.VariantFull, "c")))

	require.NoError(t, repo.DeleteByScope(ctx, "entity-1"))

	// Both of entity-1's entries are gone, entity-2 is untouched
	assert.Equal(t, 1, repo.Len())
	_, err := repo.Get(ctx, domain.CacheKey{Scope: "entity-2", PeriodID: "1M", Variant: domain.VariantFull})
	assert.NoError(t, err)
}

func TestCacheRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository()

	// Hammer the same key space from many goroutines; the race detector
	// keeps this honest.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				scope := fmt.Sprintf("entity-%d", j%5)
				_ = repo.Upsert(ctx, entry(scope, "1M", domain.VariantFull, "x"))
				_, _ = repo.Get(ctx, domain.CacheKey{Scope: scope, PeriodID: "1M", Variant: domain.VariantFull})
				if j%10 == 0 {
					_ = repo.DeleteByScope(ctx, scope)
				}
			}
		}(i)
	}
	wg.Wait()
}
