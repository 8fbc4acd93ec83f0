package cache

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/performance"
)

// Date layout used inside cache payloads. Payloads are JSON documents stored
// as bytes, so dates travel as plain ISO dates and decimals as strings (the
// same convention the repositories use against Postgres).
const payloadDateLayout = "2006-01-02"

// watermarkLimited marks limited-audience payloads. Limited payloads are not
// truncated full payloads: they are rendered separately, with diagnostics
// stripped and returns coarsened, and they never share a cache key with the
// full variant.
const watermarkLimited = "limited preview"

// limitedReturnPlaces is the precision limited audiences see.
const limitedReturnPlaces = 1

// ChartPoint is one serialized chart sample.
type ChartPoint struct {
	Date         string `json:"date"`
	EntityPct    string `json:"entity_pct"`
	BenchmarkPct string `json:"benchmark_pct,omitempty"`
}

// EntityPayload is the cached document for one (entity, period, variant).
type EntityPayload struct {
	EntityID           string       `json:"entity_id"`
	Period             string       `json:"period"`
	ReturnPct          string       `json:"return_pct"`
	EffectiveStart     string       `json:"effective_start,omitempty"`
	EffectiveEnd       string       `json:"effective_end,omitempty"`
	NetCapitalDeployed string       `json:"net_capital_deployed,omitempty"`
	SnapshotCount      int          `json:"snapshot_count,omitempty"`
	Warnings           []string     `json:"warnings,omitempty"`
	Partial            bool         `json:"partial,omitempty"`
	NoData             bool         `json:"no_data,omitempty"`
	Watermark          string       `json:"watermark,omitempty"`
	Points             []ChartPoint `json:"points"`
}

// LeaderboardRow is one entity's line in the shared public payload.
type LeaderboardRow struct {
	EntityID      string `json:"entity_id"`
	ReturnPct     string `json:"return_pct"`
	SnapshotCount int    `json:"snapshot_count,omitempty"`
}

// PublicPayload is the shared tier-1 document (e.g. the leaderboard),
// regenerated once per trading day at market close.
type PublicPayload struct {
	Period     string           `json:"period"`
	TradingDay string           `json:"trading_day"`
	Rows       []LeaderboardRow `json:"rows"`
	Watermark  string           `json:"watermark,omitempty"`
}

// buildEntityPayload shapes an overview for one audience variant.
func buildEntityPayload(ov *performance.Overview, variant domain.AudienceVariant) EntityPayload {
	payload := EntityPayload{
		EntityID:  ov.EntityID.String(),
		Period:    ov.Period.String(),
		ReturnPct: ov.Headline.ReturnPct.String(),
		NoData:    ov.NoData,
		Partial:   ov.Chart.Partial,
		Points:    make([]ChartPoint, 0, len(ov.Chart.Points)),
	}

	if !ov.Headline.EffectiveStart.IsZero() {
		payload.EffectiveStart = ov.Headline.EffectiveStart.Format(payloadDateLayout)
		payload.EffectiveEnd = ov.Headline.EffectiveEnd.Format(payloadDateLayout)
	}

	for _, p := range ov.Chart.Points {
		cp := ChartPoint{
			Date:      p.Date.Format(payloadDateLayout),
			EntityPct: p.EntityPct.String(),
		}
		if p.HasBenchmark {
			cp.BenchmarkPct = p.BenchmarkPct.String()
		}
		payload.Points = append(payload.Points, cp)
	}

	switch variant {
	case domain.VariantLimited:
		// Diagnostics stay out of limited payloads; returns are coarsened.
		payload.ReturnPct = ov.Headline.ReturnPct.Round(limitedReturnPlaces).String()
		payload.Watermark = watermarkLimited
		for i := range payload.Points {
			payload.Points[i].EntityPct = ov.Chart.Points[i].EntityPct.Round(limitedReturnPlaces).String()
			if payload.Points[i].BenchmarkPct != "" {
				payload.Points[i].BenchmarkPct = ov.Chart.Points[i].BenchmarkPct.Round(limitedReturnPlaces).String()
			}
		}
	default:
		payload.NetCapitalDeployed = ov.Headline.NetCapitalDeployed.String()
		payload.SnapshotCount = ov.Headline.SnapshotCount
		for _, w := range ov.Headline.Warnings {
			payload.Warnings = append(payload.Warnings, string(w))
		}
	}

	return payload
}

// buildPublicPayload assembles the leaderboard from successfully computed
// overviews, best return first.
func buildPublicPayload(code domain.PeriodCode, tradingDay string, overviews []*performance.Overview, variant domain.AudienceVariant) PublicPayload {
	payload := PublicPayload{
		Period:     code.String(),
		TradingDay: tradingDay,
		Rows:       make([]LeaderboardRow, 0, len(overviews)),
	}
	if variant == domain.VariantLimited {
		payload.Watermark = watermarkLimited
	}

	sorted := make([]*performance.Overview, len(overviews))
	copy(sorted, overviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Headline.ReturnPct.GreaterThan(sorted[j].Headline.ReturnPct)
	})

	for _, ov := range sorted {
		row := LeaderboardRow{
			EntityID:  ov.EntityID.String(),
			ReturnPct: ov.Headline.ReturnPct.String(),
		}
		if variant == domain.VariantLimited {
			row.ReturnPct = ov.Headline.ReturnPct.Round(limitedReturnPlaces).String()
		} else {
			row.SnapshotCount = ov.Headline.SnapshotCount
		}
		payload.Rows = append(payload.Rows, row)
	}

	return payload
}

func marshalPayload(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache payload: %w", err)
	}
	return data, nil
}

func unmarshalEntityPayload(data []byte) (EntityPayload, error) {
	var payload EntityPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return EntityPayload{}, fmt.Errorf("failed to unmarshal cached entity payload: %w", err)
	}
	return payload, nil
}

func unmarshalPublicPayload(data []byte) (PublicPayload, error) {
	var payload PublicPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return PublicPayload{}, fmt.Errorf("failed to unmarshal cached public payload: %w", err)
	}
	return payload, nil
}
