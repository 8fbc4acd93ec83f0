package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoSnapshots signals that an entity has no snapshot history at all.
// Consumers map it to an explicit "no data yet" state, never to a fault.
var ErrNoSnapshots = errors.New("entity has no snapshots")

// Snapshot represents one end-of-day valuation of an entity's paper portfolio.
// One snapshot exists per entity per trading day; the core only ever reads
// them. TradingDate is date-granular and normalized to midnight UTC — the
// market calendar owns the conversion from instants to trading dates.
type Snapshot struct {
	EntityID                  uuid.UUID
	TradingDate               time.Time
	TotalValue                decimal.Decimal // StockValue + CashProceeds
	StockValue                decimal.Decimal // market value of open positions
	CashProceeds              decimal.Decimal // uninvested proceeds from sales
	CumulativeCapitalDeployed decimal.Decimal // high-water mark of capital ever committed
}

// Validate ensures the snapshot adheres to domain rules
// Returns an error if validation fails
func (s *Snapshot) Validate() error {
	if s.EntityID == uuid.Nil {
		return errors.New("snapshot must have an entity ID")
	}
	if s.TradingDate.IsZero() {
		return errors.New("snapshot must have a trading date")
	}

	if s.StockValue.IsNegative() {
		return errors.New("stock value must be non-negative")
	}
	if s.CashProceeds.IsNegative() {
		return errors.New("cash proceeds must be non-negative")
	}
	if s.CumulativeCapitalDeployed.IsNegative() {
		return errors.New("cumulative capital deployed must be non-negative")
	}

	// Total must always decompose exactly into stock + cash
	if !s.TotalValue.Equal(s.StockValue.Add(s.CashProceeds)) {
		return fmt.Errorf("total value %s does not equal stock value %s plus cash proceeds %s",
			s.TotalValue, s.StockValue, s.CashProceeds)
	}

	return nil
}

// ValidateRun checks an ordered run of snapshots for a single entity.
// CumulativeCapitalDeployed is a high-water mark, so it must never decrease
// from one trading day to the next; trading dates must be strictly ascending.
func ValidateRun(snapshots []Snapshot) error {
	for i := range snapshots {
		if err := snapshots[i].Validate(); err != nil {
			return fmt.Errorf("snapshot %d (%s): %w", i, snapshots[i].TradingDate.Format("2006-01-02"), err)
		}
		if i == 0 {
			continue
		}

		prev := &snapshots[i-1]
		curr := &snapshots[i]

		if !curr.TradingDate.After(prev.TradingDate) {
			return fmt.Errorf("snapshot %d (%s): trading dates must be strictly ascending", i, curr.TradingDate.Format("2006-01-02"))
		}
		if curr.CumulativeCapitalDeployed.LessThan(prev.CumulativeCapitalDeployed) {
			return fmt.Errorf("snapshot %d (%s): cumulative capital deployed decreased from %s to %s",
				i, curr.TradingDate.Format("2006-01-02"), prev.CumulativeCapitalDeployed, curr.CumulativeCapitalDeployed)
		}
	}

	return nil
}

// BenchmarkPoint represents one valuation of the external benchmark index,
// keyed by trading date. Read-only input to the core.
type BenchmarkPoint struct {
	Date  time.Time
	Value decimal.Decimal
}
