// Package cache serves performance results through three freshness tiers
// over one storage seam, so no two consumers can ever observe two different
// numbers for the same logical metric.
//
// Tier 1 (public/shared): pre-rendered once per trading day at market close;
// a failed regeneration leaves the previous cycle's payload in place.
// Tier 2 (per-entity): served while younger than a TTL, recomputed and
// re-upserted past it. Tier 3 (diagnostic): always computed live.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/performance"
)

// TierIndicator tells diagnostic consumers where a result came from.
type TierIndicator string

const (
	TierFresh  TierIndicator = "fresh"  // computed live on this request
	TierCached TierIndicator = "cached" // served from a stored payload
)

// DefaultEntityTTL bounds how stale a tier-2 dashboard payload may be before
// the read path recomputes it.
const DefaultEntityTTL = 30 * time.Minute

// EntityView is a tier-2/tier-3 response envelope.
type EntityView struct {
	Tier        TierIndicator
	GeneratedAt time.Time
	Payload     EntityPayload
}

// PublicView is a tier-1 response envelope.
type PublicView struct {
	Tier        TierIndicator
	GeneratedAt time.Time
	Payload     PublicPayload
}

// BatchResult summarizes a tier-1 refresh cycle. Failures are isolated
// per entity and surfaced here, never propagated mid-batch.
type BatchResult struct {
	Succeeded      int
	Failed         int
	FailedEntities []uuid.UUID
}

// Orchestrator owns every cached performance payload. Writes are idempotent
// compute-then-upsert: recomputation is deterministic over the same store
// state, so concurrent writers racing on a key are harmless.
type Orchestrator struct {
	Perf      *performance.Service
	CacheRepo domain.CacheRepository
	EntityTTL time.Duration
}

// NewOrchestrator creates a new Orchestrator instance.
// entityTTL <= 0 selects DefaultEntityTTL.
func NewOrchestrator(perf *performance.Service, cacheRepo domain.CacheRepository, entityTTL time.Duration) *Orchestrator {
	if entityTTL <= 0 {
		entityTTL = DefaultEntityTTL
	}
	return &Orchestrator{
		Perf:      perf,
		CacheRepo: cacheRepo,
		EntityTTL: entityTTL,
	}
}

// GetEntity serves the tier-2 per-entity payload. A fresh-enough cached
// entry is returned as-is; a miss or stale entry triggers a live computation
// that also re-populates the cache.
func (o *Orchestrator) GetEntity(ctx context.Context, entityID uuid.UUID, code domain.PeriodCode, variant domain.AudienceVariant, now time.Time) (*EntityView, error) {
	key := domain.CacheKey{Scope: entityID.String(), PeriodID: code.String(), Variant: variant}

	entry, err := o.CacheRepo.Get(ctx, key)
	switch {
	case err == nil:
		if !entry.Expired(now) {
			payload, perr := unmarshalEntityPayload(entry.Payload)
			if perr != nil {
				// A payload that no longer decodes is as good as a miss.
				log.Printf("cache: dropping undecodable entry %s: %v", key, perr)
				break
			}
			return &EntityView{Tier: TierCached, GeneratedAt: entry.GeneratedAt, Payload: payload}, nil
		}
	case errors.Is(err, domain.ErrCacheMiss):
		// Expected: fall through to the live path.
	default:
		return nil, fmt.Errorf("cache read failed for %s: %w", key, err)
	}

	return o.computeAndStore(ctx, entityID, code, variant, now)
}

// ComputeLive is the tier-3 diagnostic path: always computes, never reads or
// writes storage, returns the full warning detail.
func (o *Orchestrator) ComputeLive(ctx context.Context, entityID uuid.UUID, code domain.PeriodCode, now time.Time) (*EntityView, error) {
	ov, err := o.Perf.ComputeOverview(ctx, entityID, code, now)
	if err != nil {
		return nil, err
	}
	return &EntityView{
		Tier:        TierFresh,
		GeneratedAt: now,
		Payload:     buildEntityPayload(ov, domain.VariantFull),
	}, nil
}

// GetPublic serves the tier-1 shared payload regardless of its age: it is
// replaced by the market-close refresh cycle, never aged out. A cold cache
// returns ErrCacheMiss, which consumers render as "not generated yet".
func (o *Orchestrator) GetPublic(ctx context.Context, code domain.PeriodCode, variant domain.AudienceVariant) (*PublicView, error) {
	key := domain.CacheKey{Scope: domain.PublicScope, PeriodID: code.String(), Variant: variant}

	entry, err := o.CacheRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("cache read failed for %s: %w", key, err)
	}

	payload, err := unmarshalPublicPayload(entry.Payload)
	if err != nil {
		return nil, err
	}

	return &PublicView{Tier: TierCached, GeneratedAt: entry.GeneratedAt, Payload: payload}, nil
}

// RefreshPublic runs the market-close cycle: recompute every entity with
// progressive commits, then rebuild the shared payloads from the successes.
// One entity's failure is logged, counted and skipped — it never rolls back
// or blocks the rest of the batch. If every entity fails, the previous
// cycle's public payloads are left untouched.
func (o *Orchestrator) RefreshPublic(ctx context.Context, entityIDs []uuid.UUID, code domain.PeriodCode, now time.Time) (*BatchResult, error) {
	result := &BatchResult{}
	overviews := make([]*performance.Overview, 0, len(entityIDs))

	for _, entityID := range entityIDs {
		ov, err := o.refreshEntity(ctx, entityID, code, now)
		if err != nil {
			log.Printf("cache: refresh failed for entity %s period %s: %v", entityID, code, err)
			result.Failed++
			result.FailedEntities = append(result.FailedEntities, entityID)
			continue
		}
		result.Succeeded++
		overviews = append(overviews, ov)
	}

	if result.Succeeded == 0 {
		// Nothing valid to publish; keep serving the previous cycle.
		return result, nil
	}

	tradingDay := o.Perf.Calendar.CurrentTradingDay(now).Format(payloadDateLayout)
	for _, variant := range []domain.AudienceVariant{domain.VariantFull, domain.VariantLimited} {
		payload := buildPublicPayload(code, tradingDay, overviews, variant)
		data, err := marshalPayload(payload)
		if err != nil {
			return result, err
		}
		entry := &domain.CacheEntry{
			Key:         domain.CacheKey{Scope: domain.PublicScope, PeriodID: code.String(), Variant: variant},
			Payload:     data,
			GeneratedAt: now,
			// Zero TTL: replaced by the next cycle, not aged out.
		}
		if err := o.CacheRepo.Upsert(ctx, entry); err != nil {
			return result, fmt.Errorf("failed to store public payload: %w", err)
		}
	}

	return result, nil
}

// RefreshAllPublic runs the market-close cycle for every supported period
// code in one sweep. Periods are independent cycles: counts are summed and a
// failing entity appears once however many periods it failed in.
func (o *Orchestrator) RefreshAllPublic(ctx context.Context, entityIDs []uuid.UUID, now time.Time) (*BatchResult, error) {
	total := &BatchResult{}
	seen := make(map[uuid.UUID]bool)

	for _, code := range domain.PeriodCodes {
		result, err := o.RefreshPublic(ctx, entityIDs, code, now)
		if err != nil {
			return total, fmt.Errorf("refresh cycle failed for period %s: %w", code, err)
		}
		total.Succeeded += result.Succeeded
		total.Failed += result.Failed
		for _, id := range result.FailedEntities {
			if !seen[id] {
				seen[id] = true
				total.FailedEntities = append(total.FailedEntities, id)
			}
		}
	}

	return total, nil
}

// Invalidate removes every cached entry for the entity across all periods
// and variants. Called when underlying snapshot data is corrected: a stale
// but invalidated entry must never be served afterwards. The shared payloads
// rank the entity too, so they are dropped in the same sweep rather than
// carrying the pre-correction number until the next close cycle.
func (o *Orchestrator) Invalidate(ctx context.Context, entityID uuid.UUID) error {
	if err := o.CacheRepo.DeleteByScope(ctx, entityID.String()); err != nil {
		return fmt.Errorf("failed to invalidate entity %s: %w", entityID, err)
	}
	if err := o.CacheRepo.DeleteByScope(ctx, domain.PublicScope); err != nil {
		return fmt.Errorf("failed to invalidate public payloads for entity %s: %w", entityID, err)
	}
	return nil
}

// InvalidatePublic removes the shared payloads without touching any entity
// scope. Callers should follow up with a refresh cycle.
func (o *Orchestrator) InvalidatePublic(ctx context.Context) error {
	if err := o.CacheRepo.DeleteByScope(ctx, domain.PublicScope); err != nil {
		return fmt.Errorf("failed to invalidate public payloads: %w", err)
	}
	return nil
}

// computeAndStore is the shared live path: one overview computation feeds
// both the response and the re-populated cache entry.
func (o *Orchestrator) computeAndStore(ctx context.Context, entityID uuid.UUID, code domain.PeriodCode, variant domain.AudienceVariant, now time.Time) (*EntityView, error) {
	ov, err := o.Perf.ComputeOverview(ctx, entityID, code, now)
	if err != nil {
		return nil, err
	}

	payload := buildEntityPayload(ov, variant)
	data, err := marshalPayload(payload)
	if err != nil {
		return nil, err
	}

	entry := &domain.CacheEntry{
		Key:         domain.CacheKey{Scope: entityID.String(), PeriodID: code.String(), Variant: variant},
		Payload:     data,
		GeneratedAt: now,
		TTL:         o.EntityTTL,
	}
	if err := o.CacheRepo.Upsert(ctx, entry); err != nil {
		// The page still renders; the next request recomputes.
		log.Printf("cache: upsert failed for %s: %v", entry.Key, err)
	}

	return &EntityView{Tier: TierFresh, GeneratedAt: now, Payload: payload}, nil
}

// refreshEntity recomputes one entity during the close cycle and commits its
// per-entity payloads for both variants before the batch moves on.
func (o *Orchestrator) refreshEntity(ctx context.Context, entityID uuid.UUID, code domain.PeriodCode, now time.Time) (*performance.Overview, error) {
	ov, err := o.Perf.ComputeOverview(ctx, entityID, code, now)
	if err != nil {
		return nil, err
	}

	for _, variant := range []domain.AudienceVariant{domain.VariantFull, domain.VariantLimited} {
		data, err := marshalPayload(buildEntityPayload(ov, variant))
		if err != nil {
			return nil, err
		}
		entry := &domain.CacheEntry{
			Key:         domain.CacheKey{Scope: entityID.String(), PeriodID: code.String(), Variant: variant},
			Payload:     data,
			GeneratedAt: now,
			TTL:         o.EntityTTL,
		}
		if err := o.CacheRepo.Upsert(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to store entity payload: %w", err)
		}
	}

	return ov, nil
}
