package chart

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

var testEntityID = uuid.MustParse("2b1f8c2e-5b77-4a10-9b2e-3f4ff0b1c001")

func snapOn(date time.Time, total string) domain.Snapshot {
	totalDec := decimal.RequireFromString(total)
	return domain.Snapshot{
		EntityID:                  testEntityID,
		TradingDate:               date,
		TotalValue:                totalDec,
		StockValue:                totalDec,
		CashProceeds:              decimal.Zero,
		CumulativeCapitalDeployed: decimal.NewFromInt(1000),
	}
}

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// growingRun builds n daily snapshots starting at $1000, rising $10/day.
func growingRun(n int) []domain.Snapshot {
	start := utcDay(2025, time.January, 1)
	snapshots := make([]domain.Snapshot, 0, n)
	for i := 0; i < n; i++ {
		snapshots = append(snapshots, snapOn(start.AddDate(0, 0, i), fmt.Sprintf("%d", 1000+10*i)))
	}
	return snapshots
}

// matchingBenchmark builds one benchmark point per snapshot date.
func matchingBenchmark(snapshots []domain.Snapshot) []domain.BenchmarkPoint {
	points := make([]domain.BenchmarkPoint, 0, len(snapshots))
	for i, s := range snapshots {
		points = append(points, domain.BenchmarkPoint{
			Date:  s.TradingDate,
			Value: decimal.NewFromInt(int64(500 + i)),
		})
	}
	return points
}

func TestGenerate_SmallRunKeepsEverySnapshot(t *testing.T) {
	snapshots := growingRun(5)
	benchmark := matchingBenchmark(snapshots)

	series := Generate(snapshots, benchmark, DefaultPoints)

	require.Len(t, series.Points, 5)
	assert.Equal(t, snapshots[0].TradingDate, series.EffectiveStart)
	assert.False(t, series.Partial)

	// Baseline point sits at 0%, last point at (1040-1000)/1000 = 4%
	assert.True(t, series.Points[0].EntityPct.IsZero())
	assert.InDelta(t, 4.0, series.Points[4].EntityPct.InexactFloat64(), 0.0001)
	assert.True(t, series.Points[4].HasBenchmark)
}

func TestGenerate_DownsamplingPreservesEndpoints(t *testing.T) {
	// A year of snapshots down-sampled hard: whatever the stride does, the
	// first and last samples must survive.
	for _, n := range []int{31, 60, 89, 90, 91, 200, 365} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			snapshots := growingRun(n)
			series := Generate(snapshots, matchingBenchmark(snapshots), MinPoints)

			require.NotEmpty(t, series.Points)
			assert.LessOrEqual(t, len(series.Points), MinPoints)
			assert.Equal(t, snapshots[0].TradingDate, series.Points[0].Date, "first sample dropped")
			assert.Equal(t, snapshots[n-1].TradingDate, series.Points[len(series.Points)-1].Date, "last sample dropped")
		})
	}
}

func TestGenerate_LeadingZeroSnapshotsSkipped(t *testing.T) {
	start := utcDay(2025, time.March, 3)
	snapshots := []domain.Snapshot{
		snapOn(start, "0"), // corrupt/empty day, not a usable baseline
		snapOn(start.AddDate(0, 0, 1), "0"),
		snapOn(start.AddDate(0, 0, 2), "2000"),
		snapOn(start.AddDate(0, 0, 3), "2100"),
	}

	series := Generate(snapshots, nil, DefaultPoints)

	require.Len(t, series.Points, 2)
	assert.Equal(t, start.AddDate(0, 0, 2), series.EffectiveStart)
	assert.True(t, series.Points[0].EntityPct.IsZero())
	assert.InDelta(t, 5.0, series.Points[1].EntityPct.InexactFloat64(), 0.0001)
}

func TestGenerate_AllZeroIsNoData(t *testing.T) {
	start := utcDay(2025, time.March, 3)
	snapshots := []domain.Snapshot{
		snapOn(start, "0"),
		snapOn(start.AddDate(0, 0, 1), "0"),
	}

	series := Generate(snapshots, nil, DefaultPoints)

	// Explicit no-data state: empty series, no panic, no fake baseline
	assert.Empty(t, series.Points)
	assert.True(t, series.EffectiveStart.IsZero())
}

func TestGenerate_BenchmarkGapFlagsPartial(t *testing.T) {
	snapshots := growingRun(4)
	// Benchmark misses the third date
	benchmark := []domain.BenchmarkPoint{
		{Date: snapshots[0].TradingDate, Value: decimal.NewFromInt(500)},
		{Date: snapshots[1].TradingDate, Value: decimal.NewFromInt(505)},
		{Date: snapshots[3].TradingDate, Value: decimal.NewFromInt(510)},
	}

	series := Generate(snapshots, benchmark, DefaultPoints)

	require.Len(t, series.Points, 4)
	assert.True(t, series.Partial)
	assert.True(t, series.Points[0].HasBenchmark)
	// The gap point carries no fabricated value
	assert.False(t, series.Points[2].HasBenchmark)
	assert.True(t, series.Points[2].BenchmarkPct.IsZero())
	assert.True(t, series.Points[3].HasBenchmark)
}

func TestGenerate_MissingBenchmarkEntirely(t *testing.T) {
	snapshots := growingRun(3)

	series := Generate(snapshots, nil, DefaultPoints)

	require.Len(t, series.Points, 3)
	assert.True(t, series.Partial)
	for _, p := range series.Points {
		assert.False(t, p.HasBenchmark)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	snapshots := growingRun(123)
	benchmark := matchingBenchmark(snapshots)

	first := Generate(snapshots, benchmark, 45)
	second := Generate(snapshots, benchmark, 45)

	assert.Equal(t, first, second)
}

func TestStream_Restartable(t *testing.T) {
	snapshots := growingRun(10)
	seq := Stream(snapshots, nil)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	// Ranging twice replays the same finite walk
	assert.Equal(t, 10, count())
	assert.Equal(t, 10, count())
}

func TestGenerate_PointBoundClamped(t *testing.T) {
	snapshots := growingRun(400)

	tooMany := Generate(snapshots, nil, 10_000)
	assert.LessOrEqual(t, len(tooMany.Points), MaxPoints)

	tooFew := Generate(snapshots, nil, 2)
	assert.LessOrEqual(t, len(tooFew.Points), MinPoints)
	assert.GreaterOrEqual(t, len(tooFew.Points), 2)

	fallback := Generate(snapshots, nil, 0)
	assert.LessOrEqual(t, len(fallback.Points), DefaultPoints)
}
