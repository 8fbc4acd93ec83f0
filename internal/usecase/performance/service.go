package performance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/calendar"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/chart"
)

// Overview bundles the canonical headline with the chart series computed
// from the same snapshot read, so both numbers always describe the same
// underlying store state. The headline is canonical; the chart's last point
// is a documented baseline-relative approximation.
type Overview struct {
	EntityID uuid.UUID
	Period   domain.PeriodCode
	Headline Result
	Chart    chart.Series
	// NoData is the explicit "no history yet" state: the entity has no
	// snapshots at all inside the window.
	NoData bool
}

// Service is the live computation path over the snapshot and benchmark
// stores. It performs a single ordered read per request and hands the data to
// the pure calculator and generator.
type Service struct {
	SnapshotRepo  domain.SnapshotRepository
	BenchmarkRepo domain.BenchmarkRepository
	Calendar      *calendar.MarketCalendar
	ChartPoints   int
}

// NewService creates a new performance Service instance.
// chartPoints <= 0 selects the default down-sample bound.
func NewService(
	snapshotRepo domain.SnapshotRepository,
	benchmarkRepo domain.BenchmarkRepository,
	cal *calendar.MarketCalendar,
	chartPoints int,
) *Service {
	return &Service{
		SnapshotRepo:  snapshotRepo,
		BenchmarkRepo: benchmarkRepo,
		Calendar:      cal,
		ChartPoints:   chartPoints,
	}
}

// ComputeHeadline computes the canonical Modified-Dietz return for the
// entity over the period ending at `now`'s trading day.
func (s *Service) ComputeHeadline(ctx context.Context, entityID uuid.UUID, code domain.PeriodCode, now time.Time) (Result, error) {
	period, err := s.Calendar.ResolveRange(code, now)
	if err != nil {
		return Result{}, err
	}

	snapshots, err := s.loadSnapshots(ctx, entityID, period)
	if err != nil {
		return Result{}, err
	}

	return Calculate(snapshots, period), nil
}

// ComputeOverview computes the headline and the chart series in one pass.
// Benchmark gaps are tolerated (the chart flags partial coverage); malformed
// snapshot runs are structural failures and propagate.
func (s *Service) ComputeOverview(ctx context.Context, entityID uuid.UUID, code domain.PeriodCode, now time.Time) (*Overview, error) {
	period, err := s.Calendar.ResolveRange(code, now)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.loadSnapshots(ctx, entityID, period)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		EntityID: entityID,
		Period:   code,
		Headline: Calculate(snapshots, period),
	}

	if len(snapshots) == 0 {
		// Distinguish "never traded" from "no activity in this window":
		// only the former is the no-data state.
		if _, err := s.SnapshotRepo.FirstTradingDate(ctx, entityID); err != nil {
			if errors.Is(err, domain.ErrNoSnapshots) {
				overview.NoData = true
				return overview, nil
			}
			return nil, fmt.Errorf("failed to check snapshot history: %w", err)
		}
		return overview, nil
	}

	// Benchmark coverage is best-effort: a gap flags the series as partial,
	// it never blocks the entity's own numbers.
	benchmark, err := s.BenchmarkRepo.ListByRange(ctx, snapshots[0].TradingDate, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmark series: %w", err)
	}

	overview.Chart = chart.Generate(snapshots, benchmark, s.ChartPoints)
	return overview, nil
}

// loadSnapshots reads the entity's ordered snapshots for the period and
// validates the run. An entity with no history yields an empty slice, not an
// error — downstream renders an explicit no-data state.
func (s *Service) loadSnapshots(ctx context.Context, entityID uuid.UUID, period domain.PerformancePeriod) ([]domain.Snapshot, error) {
	snapshots, err := s.SnapshotRepo.ListByEntityAndRange(ctx, entityID, period.Start, period.End)
	if err != nil {
		if errors.Is(err, domain.ErrNoSnapshots) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}

	if err := domain.ValidateRun(snapshots); err != nil {
		return nil, fmt.Errorf("malformed snapshot run for entity %s: %w", entityID, err)
	}

	return snapshots, nil
}
