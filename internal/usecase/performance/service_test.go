package performance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/calendar"
)

// MockSnapshotRepository is a mock implementation of SnapshotRepository for testing
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) ListByEntityAndRange(ctx context.Context, entityID uuid.UUID, from, to time.Time) ([]domain.Snapshot, error) {
	args := m.Called(ctx, entityID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FirstTradingDate(ctx context.Context, entityID uuid.UUID) (time.Time, error) {
	args := m.Called(ctx, entityID)
	return args.Get(0).(time.Time), args.Error(1)
}

// MockBenchmarkRepository is a mock implementation of BenchmarkRepository for testing
type MockBenchmarkRepository struct {
	mock.Mock
}

func (m *MockBenchmarkRepository) ListByRange(ctx context.Context, from, to time.Time) ([]domain.BenchmarkPoint, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BenchmarkPoint), args.Error(1)
}

func newTestService(t *testing.T, snapshotRepo *MockSnapshotRepository, benchmarkRepo *MockBenchmarkRepository) *Service {
	t.Helper()
	cal, err := calendar.NewMarketCalendar("")
	require.NoError(t, err)
	return NewService(snapshotRepo, benchmarkRepo, cal, 0)
}

// Wednesday June 11, 2025, mid-session.
var testNow = time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC)

func benchPoint(date time.Time, value string) domain.BenchmarkPoint {
	return domain.BenchmarkPoint{Date: date, Value: decimal.RequireFromString(value)}
}

func TestComputeOverview_HeadlineAndChartShareOneRead(t *testing.T) {
	ctx := context.Background()
	mockSnapshots := new(MockSnapshotRepository)
	mockBenchmark := new(MockBenchmarkRepository)
	service := newTestService(t, mockSnapshots, mockBenchmark)

	entityID := uuid.New()
	start := utcDay(2025, time.May, 12)
	mid := utcDay(2025, time.May, 27)
	end := utcDay(2025, time.June, 11)
	snapshots := []domain.Snapshot{
		snap(start, "5000", "5000"),
		snap(mid, "5400", "5000"),
		snap(end, "6000", "5000"),
	}
	for i := range snapshots {
		snapshots[i].EntityID = entityID
	}
	benchmark := []domain.BenchmarkPoint{
		benchPoint(start, "100"),
		benchPoint(mid, "103"),
		benchPoint(end, "105"),
	}

	mockSnapshots.On("ListByEntityAndRange", ctx, entityID, utcDay(2025, time.May, 11), end).Return(snapshots, nil)
	mockBenchmark.On("ListByRange", ctx, start, end).Return(benchmark, nil)

	overview, err := service.ComputeOverview(ctx, entityID, domain.Period1M, testNow)

	assert.NoError(t, err)
	assert.False(t, overview.NoData)
	// Headline: no deployment, so simple return 20%
	assert.InDelta(t, 20.0, overview.Headline.ReturnPct.InexactFloat64(), 0.0001)
	// Chart: every snapshot sampled, benchmark fully covered
	assert.Len(t, overview.Chart.Points, 3)
	assert.False(t, overview.Chart.Partial)
	assert.Equal(t, start, overview.Chart.EffectiveStart)
	// Exactly one snapshot read feeds both numbers
	mockSnapshots.AssertNumberOfCalls(t, "ListByEntityAndRange", 1)
	mockSnapshots.AssertExpectations(t)
	mockBenchmark.AssertExpectations(t)
}

func TestComputeOverview_NoHistoryIsExplicitNoData(t *testing.T) {
	ctx := context.Background()
	mockSnapshots := new(MockSnapshotRepository)
	mockBenchmark := new(MockBenchmarkRepository)
	service := newTestService(t, mockSnapshots, mockBenchmark)

	entityID := uuid.New()
	mockSnapshots.On("ListByEntityAndRange", ctx, entityID, mock.Anything, mock.Anything).
		Return([]domain.Snapshot{}, nil)
	mockSnapshots.On("FirstTradingDate", ctx, entityID).
		Return(time.Time{}, domain.ErrNoSnapshots)

	overview, err := service.ComputeOverview(ctx, entityID, domain.PeriodYTD, testNow)

	// No data is a state, not an error
	assert.NoError(t, err)
	assert.True(t, overview.NoData)
	assert.True(t, overview.Headline.ReturnPct.IsZero())
	assert.True(t, overview.Headline.HasWarning(WarningInsufficientData))
	assert.Empty(t, overview.Chart.Points)

	// The benchmark is never consulted when there is nothing to chart
	mockBenchmark.AssertNotCalled(t, "ListByRange")
}

func TestComputeOverview_InactiveWindowIsNotNoData(t *testing.T) {
	ctx := context.Background()
	mockSnapshots := new(MockSnapshotRepository)
	mockBenchmark := new(MockBenchmarkRepository)
	service := newTestService(t, mockSnapshots, mockBenchmark)

	// The entity has history, just none inside this short window
	entityID := uuid.New()
	mockSnapshots.On("ListByEntityAndRange", ctx, entityID, mock.Anything, mock.Anything).
		Return([]domain.Snapshot{}, nil)
	mockSnapshots.On("FirstTradingDate", ctx, entityID).
		Return(utcDay(2023, time.February, 6), nil)

	overview, err := service.ComputeOverview(ctx, entityID, domain.Period1D, testNow)

	assert.NoError(t, err)
	assert.False(t, overview.NoData)
	assert.True(t, overview.Headline.HasWarning(WarningInsufficientData))
	assert.Empty(t, overview.Chart.Points)
}

func TestComputeOverview_MalformedRunPropagates(t *testing.T) {
	ctx := context.Background()
	mockSnapshots := new(MockSnapshotRepository)
	mockBenchmark := new(MockBenchmarkRepository)
	service := newTestService(t, mockSnapshots, mockBenchmark)

	entityID := uuid.New()
	good := snap(utcDay(2025, time.June, 9), "5000", "5000")
	bad := snap(utcDay(2025, time.June, 10), "5100", "4000") // high-water mark went down
	mockSnapshots.On("ListByEntityAndRange", ctx, entityID, mock.Anything, mock.Anything).
		Return([]domain.Snapshot{good, bad}, nil)

	_, err := service.ComputeOverview(ctx, entityID, domain.Period1M, testNow)

	// Structural failure: malformed input propagates instead of neutralizing
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "malformed snapshot run")
	mockBenchmark.AssertNotCalled(t, "ListByRange")
}

func TestComputeOverview_BenchmarkErrorPropagates(t *testing.T) {
	ctx := context.Background()
	mockSnapshots := new(MockSnapshotRepository)
	mockBenchmark := new(MockBenchmarkRepository)
	service := newTestService(t, mockSnapshots, mockBenchmark)

	entityID := uuid.New()
	snapshots := []domain.Snapshot{
		snap(utcDay(2025, time.June, 9), "5000", "5000"),
		snap(utcDay(2025, time.June, 10), "5100", "5000"),
	}
	mockSnapshots.On("ListByEntityAndRange", ctx, entityID, mock.Anything, mock.Anything).
		Return(snapshots, nil)
	mockBenchmark.On("ListByRange", ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := service.ComputeOverview(ctx, entityID, domain.Period1M, testNow)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load benchmark series")
}

func TestComputeHeadline_UsesCalendarWindow(t *testing.T) {
	ctx := context.Background()
	mockSnapshots := new(MockSnapshotRepository)
	mockBenchmark := new(MockBenchmarkRepository)
	service := newTestService(t, mockSnapshots, mockBenchmark)

	entityID := uuid.New()
	// YTD resolves to Jan 1 of the exchange-local year
	mockSnapshots.On("ListByEntityAndRange", ctx, entityID,
		utcDay(2025, time.January, 1), utcDay(2025, time.June, 11)).
		Return([]domain.Snapshot{}, nil)

	result, err := service.ComputeHeadline(ctx, entityID, domain.PeriodYTD, testNow)

	assert.NoError(t, err)
	assert.True(t, result.HasWarning(WarningInsufficientData))
	mockSnapshots.AssertExpectations(t)
}
