// Package chart renders a bounded, down-sampled percentage series for an
// entity against the benchmark index. The series is an intentionally simple
// baseline-relative view; the Modified-Dietz headline stays the canonical
// number and travels beside the series, never inside it.
package chart

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

// Down-sampling bounds. Callers may ask for anything inside the band; out of
// band requests are clamped so a renderer can never blow up point counts.
const (
	MinPoints     = 30
	MaxPoints     = 90
	DefaultPoints = 60
)

var hundred = decimal.NewFromInt(100)

// Point is one rendered sample. HasBenchmark is false when the benchmark
// series had no value for the date — the value is left zero and flagged,
// never fabricated.
type Point struct {
	Date         time.Time
	EntityPct    decimal.Decimal
	BenchmarkPct decimal.Decimal
	HasBenchmark bool
}

// Series is the chart payload handed to the presentation boundary.
// An empty Points slice is the explicit "no data yet" state.
type Series struct {
	Points         []Point
	EffectiveStart time.Time
	// Partial is set when benchmark coverage had gaps over the window.
	Partial bool
}

// Stream walks the snapshots once and yields a baseline-relative percentage
// point per snapshot, in order. The baseline is the first snapshot with a
// positive total value; leading zero or corrupt snapshots are skipped, not
// fatal. The sequence is finite and restartable — ranging over it twice
// replays the same points.
func Stream(snapshots []domain.Snapshot, benchmark []domain.BenchmarkPoint) iter.Seq[Point] {
	base := baselineIndex(snapshots)

	return func(yield func(Point) bool) {
		if base < 0 {
			return
		}

		baseValue := snapshots[base].TotalValue

		byDate := make(map[time.Time]decimal.Decimal, len(benchmark))
		for _, bp := range benchmark {
			byDate[bp.Date] = bp.Value
		}
		benchBase, hasBenchBase := benchmarkBaseline(benchmark, snapshots[base].TradingDate)

		for _, snap := range snapshots[base:] {
			p := Point{
				Date:      snap.TradingDate,
				EntityPct: pctChange(snap.TotalValue, baseValue),
			}
			if bv, ok := byDate[snap.TradingDate]; ok && hasBenchBase {
				p.BenchmarkPct = pctChange(bv, benchBase)
				p.HasBenchmark = true
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Generate produces the down-sampled series in a single O(n) pass.
// The first and last samples are always retained — dropping either silently
// corrupts the window a reader believes they are looking at.
func Generate(snapshots []domain.Snapshot, benchmark []domain.BenchmarkPoint, maxPoints int) Series {
	maxPoints = clampPoints(maxPoints)

	base := baselineIndex(snapshots)
	if base < 0 {
		// Nothing with a usable baseline: explicit no-data state.
		return Series{}
	}

	n := len(snapshots) - base
	stride := 1
	if n > maxPoints {
		// Ceiling division so the sampled count never exceeds the bound.
		stride = (n - 1 + maxPoints - 2) / (maxPoints - 1)
	}

	series := Series{
		Points:         make([]Point, 0, min(n, maxPoints)),
		EffectiveStart: snapshots[base].TradingDate,
	}

	idx := 0
	var last Point
	for p := range Stream(snapshots, benchmark) {
		if !p.HasBenchmark {
			series.Partial = true
		}
		if idx%stride == 0 {
			series.Points = append(series.Points, p)
		}
		last = p
		idx++
	}

	// The stride may step over the final sample; put it back, swapping it
	// for the previous sample when the bound is already full.
	if tail := len(series.Points) - 1; tail >= 0 && !series.Points[tail].Date.Equal(last.Date) {
		if len(series.Points) >= maxPoints {
			series.Points[tail] = last
		} else {
			series.Points = append(series.Points, last)
		}
	}

	return series
}

// baselineIndex finds the first snapshot with a positive total value, or -1.
func baselineIndex(snapshots []domain.Snapshot) int {
	for i := range snapshots {
		if snapshots[i].TotalValue.IsPositive() {
			return i
		}
	}
	return -1
}

// benchmarkBaseline picks the benchmark's 0% reference: the first positive
// value at or after the entity's baseline date.
func benchmarkBaseline(benchmark []domain.BenchmarkPoint, baselineDate time.Time) (decimal.Decimal, bool) {
	for _, bp := range benchmark {
		if !bp.Date.Before(baselineDate) && bp.Value.IsPositive() {
			return bp.Value, true
		}
	}
	return decimal.Zero, false
}

func pctChange(value, base decimal.Decimal) decimal.Decimal {
	return value.Sub(base).Div(base).Mul(hundred)
}

func clampPoints(maxPoints int) int {
	switch {
	case maxPoints <= 0:
		return DefaultPoints
	case maxPoints < MinPoints:
		return MinPoints
	case maxPoints > MaxPoints:
		return MaxPoints
	default:
		return maxPoints
	}
}
