package domain

import (
	"errors"
	"fmt"
	"time"
)

// PublicScope is the cache key scope for shared payloads (e.g. the
// leaderboard) that belong to no single entity.
const PublicScope = "public"

// AudienceVariant distinguishes payload shapes for different consumer
// classes. Variants never share cache storage because their payload CONTENT
// differs: a limited payload is not a truncated view of a full one, it is a
// separately rendered document.
type AudienceVariant string

const (
	VariantFull    AudienceVariant = "full"    // complete payload incl. diagnostics
	VariantLimited AudienceVariant = "limited" // watermarked / diagnostics stripped
)

// ParseAudienceVariant parses a variant from its wire form.
func ParseAudienceVariant(s string) (AudienceVariant, error) {
	switch AudienceVariant(s) {
	case VariantFull, VariantLimited:
		return AudienceVariant(s), nil
	case "":
		// Callers that don't care get the full variant
		return VariantFull, nil
	default:
		return "", fmt.Errorf("unknown audience variant %q", s)
	}
}

// CacheKey identifies one logical cached metric. Two requests with the same
// key must never observe two different payloads from the same store state.
type CacheKey struct {
	Scope    string // entity UUID string, or PublicScope
	PeriodID string // PeriodCode wire form
	Variant  AudienceVariant
}

func (k CacheKey) String() string {
	return k.Scope + "|" + k.PeriodID + "|" + string(k.Variant)
}

// CacheEntry is one stored payload with its freshness metadata.
type CacheEntry struct {
	Key         CacheKey
	Payload     []byte
	GeneratedAt time.Time
	TTL         time.Duration
}

// Expired reports whether the entry is older than its TTL at the given
// instant. A zero TTL means the entry never expires by age (tier-1 payloads
// are replaced by the refresh cycle, not by aging out).
func (e *CacheEntry) Expired(now time.Time) bool {
	if e.TTL == 0 {
		return false
	}
	return now.Sub(e.GeneratedAt) > e.TTL
}

// ErrCacheMiss signals that no entry exists for a key. A miss is not a
// failure; it triggers the live-compute fallback.
var ErrCacheMiss = errors.New("cache entry not found")
