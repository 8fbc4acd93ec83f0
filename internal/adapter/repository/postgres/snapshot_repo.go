package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

// snapshotRepository implements domain.SnapshotRepository.
// The core only ever reads snapshots; the market-close trigger writes them.
type snapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *DB) domain.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// ListByEntityAndRange retrieves the entity's snapshots in [from, to],
// ordered ascending by trading date. A zero `from` means since inception.
func (r *snapshotRepository) ListByEntityAndRange(ctx context.Context, entityID uuid.UUID, from, to time.Time) ([]domain.Snapshot, error) {
	query := `
		SELECT entity_id, trading_date, total_value, stock_value, cash_proceeds, cumulative_capital_deployed
		FROM portfolio_snapshots
		WHERE entity_id = $1 AND trading_date <= $2
	`
	args := []any{entityID, to}
	if !from.IsZero() {
		query += ` AND trading_date >= $3`
		args = append(args, from)
	}
	query += ` ORDER BY trading_date ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []domain.Snapshot
	for rows.Next() {
		var snap domain.Snapshot
		var totalStr, stockStr, cashStr, deployedStr string

		if err := rows.Scan(
			&snap.EntityID,
			&snap.TradingDate,
			&totalStr,
			&stockStr,
			&cashStr,
			&deployedStr,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}

		snap.TradingDate = normalizeDate(snap.TradingDate)

		if snap.TotalValue, err = decimal.NewFromString(totalStr); err != nil {
			return nil, fmt.Errorf("failed to parse total_value: %w", err)
		}
		if snap.StockValue, err = decimal.NewFromString(stockStr); err != nil {
			return nil, fmt.Errorf("failed to parse stock_value: %w", err)
		}
		if snap.CashProceeds, err = decimal.NewFromString(cashStr); err != nil {
			return nil, fmt.Errorf("failed to parse cash_proceeds: %w", err)
		}
		if snap.CumulativeCapitalDeployed, err = decimal.NewFromString(deployedStr); err != nil {
			return nil, fmt.Errorf("failed to parse cumulative_capital_deployed: %w", err)
		}

		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}

	return snapshots, nil
}

// FirstTradingDate retrieves the entity's first-ever snapshot date.
func (r *snapshotRepository) FirstTradingDate(ctx context.Context, entityID uuid.UUID) (time.Time, error) {
	query := `
		SELECT trading_date
		FROM portfolio_snapshots
		WHERE entity_id = $1
		ORDER BY trading_date ASC
		LIMIT 1
	`

	var date time.Time
	err := r.db.QueryRowContext(ctx, query, entityID).Scan(&date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, domain.ErrNoSnapshots
		}
		return time.Time{}, fmt.Errorf("failed to get first trading date: %w", err)
	}

	return normalizeDate(date), nil
}

// normalizeDate strips any time-of-day or zone the driver attached so dates
// compare and key consistently as midnight UTC.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
