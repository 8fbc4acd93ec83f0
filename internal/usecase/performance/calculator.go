// Package performance computes the canonical Modified-Dietz return for an
// entity over a reporting window, discounting internally-deployed capital so
// that adding money never masquerades as investment skill.
package performance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

// Warning flags a condition that was neutralized into a safe result instead
// of raised as an error. Diagnostic consumers can inspect them; everyone else
// just sees a well-defined 0%.
type Warning string

const (
	// WarningInsufficientData: fewer than two snapshots in the effective
	// window, so no return can be measured.
	WarningInsufficientData Warning = "insufficient_data"

	// WarningDegenerateBaseline: the Dietz denominator collapsed to zero
	// (e.g. a window starting from an empty portfolio with no deployment).
	WarningDegenerateBaseline Warning = "degenerate_baseline"
)

// Result is the canonical performance figure for one entity and window.
type Result struct {
	ReturnPct          decimal.Decimal
	EffectiveStart     time.Time
	EffectiveEnd       time.Time
	NetCapitalDeployed decimal.Decimal
	SnapshotCount      int
	Warnings           []Warning
}

// HasWarning reports whether the result carries the given warning.
func (r *Result) HasWarning(w Warning) bool {
	for _, got := range r.Warnings {
		if got == w {
			return true
		}
	}
	return false
}

// neutralWeight is the flow weight used when there is no deployment signal
// to time-weight (CF_net <= 0).
var neutralWeight = decimal.NewFromFloat(0.5)

var hundred = decimal.NewFromInt(100)

// Calculate computes the Modified-Dietz return over the snapshots that fall
// inside the requested period. It is a pure function: no I/O, deterministic,
// safe to call concurrently.
//
// The effective window is clipped to the snapshots actually present
// (mid-period join rule): an entity that started trading halfway through the
// period is measured from its first snapshot, not from the nominal start.
//
// Conditions that cannot produce a measurable return come back as a neutral
// 0% with a warning, never as an error: a 0% with a note beats a broken page.
func Calculate(snapshots []domain.Snapshot, period domain.PerformancePeriod) Result {
	window := clip(snapshots, period)

	if len(window) < 2 {
		res := Result{
			ReturnPct:          decimal.Zero,
			NetCapitalDeployed: decimal.Zero,
			SnapshotCount:      len(window),
			Warnings:           []Warning{WarningInsufficientData},
		}
		if len(window) == 1 {
			res.EffectiveStart = window[0].TradingDate
			res.EffectiveEnd = window[0].TradingDate
		}
		return res
	}

	first := window[0]
	last := window[len(window)-1]

	effectiveStart := first.TradingDate
	effectiveEnd := last.TradingDate
	totalDays := int64(effectiveEnd.Sub(effectiveStart).Hours() / 24)

	vStart := first.TotalValue
	vEnd := last.TotalValue

	// Net internal cash flow over the window. The high-water mark only ever
	// rises, so the delta between the boundary snapshots is the sum of all
	// step-wise deployment events inside the window.
	cfNet := last.CumulativeCapitalDeployed.Sub(first.CumulativeCapitalDeployed)

	// Time-weight each deployment event by the fraction of the window it
	// was invested. A same-day window has no time to weight, so W stays 0.
	weightedCF := decimal.Zero
	for i := 1; i < len(window); i++ {
		delta := window[i].CumulativeCapitalDeployed.Sub(window[i-1].CumulativeCapitalDeployed)
		if !delta.IsPositive() || totalDays == 0 {
			continue
		}
		daysInvested := int64(effectiveEnd.Sub(window[i].TradingDate).Hours() / 24)
		weight := decimal.NewFromInt(daysInvested).Div(decimal.NewFromInt(totalDays))
		weightedCF = weightedCF.Add(delta.Mul(weight))
	}

	weight := neutralWeight
	if cfNet.IsPositive() {
		weight = weightedCF.Div(cfNet)
	}

	denominator := vStart.Add(weight.Mul(cfNet))
	if denominator.IsZero() {
		return Result{
			ReturnPct:          decimal.Zero,
			EffectiveStart:     effectiveStart,
			EffectiveEnd:       effectiveEnd,
			NetCapitalDeployed: cfNet,
			SnapshotCount:      len(window),
			Warnings:           []Warning{WarningDegenerateBaseline},
		}
	}

	gain := vEnd.Sub(vStart).Sub(cfNet)
	returnPct := gain.Div(denominator).Mul(hundred)

	return Result{
		ReturnPct:          returnPct,
		EffectiveStart:     effectiveStart,
		EffectiveEnd:       effectiveEnd,
		NetCapitalDeployed: cfNet,
		SnapshotCount:      len(window),
	}
}

// clip returns the ordered subset of snapshots inside the period. A zero
// period start imposes no lower bound (MAX window).
func clip(snapshots []domain.Snapshot, period domain.PerformancePeriod) []domain.Snapshot {
	window := make([]domain.Snapshot, 0, len(snapshots))
	for _, snap := range snapshots {
		if period.Contains(snap.TradingDate) {
			window = append(window, snap)
		}
	}
	return window
}
