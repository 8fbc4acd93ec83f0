package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

// benchmarkRepository implements domain.BenchmarkRepository over the
// externally-maintained benchmark index table. Read-only to the core.
type benchmarkRepository struct {
	db *DB
}

// NewBenchmarkRepository creates a new benchmark repository
func NewBenchmarkRepository(db *DB) domain.BenchmarkRepository {
	return &benchmarkRepository{db: db}
}

// ListByRange retrieves benchmark points in [from, to], ordered ascending.
// Gaps in coverage are the caller's problem to flag, not this layer's.
func (r *benchmarkRepository) ListByRange(ctx context.Context, from, to time.Time) ([]domain.BenchmarkPoint, error) {
	query := `
		SELECT trading_date, index_value
		FROM benchmark_values
		WHERE trading_date >= $1 AND trading_date <= $2
		ORDER BY trading_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query benchmark values: %w", err)
	}
	defer rows.Close()

	var points []domain.BenchmarkPoint
	for rows.Next() {
		var point domain.BenchmarkPoint
		var valueStr string

		if err := rows.Scan(&point.Date, &valueStr); err != nil {
			return nil, fmt.Errorf("failed to scan benchmark value: %w", err)
		}

		point.Date = normalizeDate(point.Date)

		if point.Value, err = decimal.NewFromString(valueStr); err != nil {
			return nil, fmt.Errorf("failed to parse index_value: %w", err)
		}

		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate benchmark values: %w", err)
	}

	return points, nil
}
