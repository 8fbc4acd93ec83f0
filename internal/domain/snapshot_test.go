package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validSnapshot(d time.Time) Snapshot {
	return Snapshot{
		EntityID:                  uuid.New(),
		TradingDate:               d,
		TotalValue:                decimal.NewFromInt(1500),
		StockValue:                decimal.NewFromInt(1200),
		CashProceeds:              decimal.NewFromInt(300),
		CumulativeCapitalDeployed: decimal.NewFromInt(1000),
	}
}

func TestSnapshotValidate_Valid(t *testing.T) {
	snap := validSnapshot(day(2025, time.March, 3))

	assert.NoError(t, snap.Validate())
}

func TestSnapshotValidate_TotalMustDecompose(t *testing.T) {
	snap := validSnapshot(day(2025, time.March, 3))
	snap.TotalValue = decimal.NewFromInt(1501) // off by one

	err := snap.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not equal stock value")
}

func TestSnapshotValidate_NegativeComponents(t *testing.T) {
	snap := validSnapshot(day(2025, time.March, 3))
	snap.StockValue = decimal.NewFromInt(-1)
	snap.TotalValue = snap.StockValue.Add(snap.CashProceeds)

	err := snap.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stock value must be non-negative")
}

func TestSnapshotValidate_MissingIdentity(t *testing.T) {
	snap := validSnapshot(day(2025, time.March, 3))
	snap.EntityID = uuid.Nil

	assert.Error(t, snap.Validate())

	snap = validSnapshot(time.Time{})
	assert.Error(t, snap.Validate())
}

func TestValidateRun_MonotonicCapital(t *testing.T) {
	entityID := uuid.New()
	first := validSnapshot(day(2025, time.March, 3))
	first.EntityID = entityID

	// Capital high-water mark goes DOWN on day two: corrupt run.
	second := validSnapshot(day(2025, time.March, 4))
	second.EntityID = entityID
	second.CumulativeCapitalDeployed = decimal.NewFromInt(900)

	err := ValidateRun([]Snapshot{first, second})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cumulative capital deployed decreased")
}

func TestValidateRun_DatesMustAscend(t *testing.T) {
	entityID := uuid.New()
	first := validSnapshot(day(2025, time.March, 4))
	first.EntityID = entityID
	second := validSnapshot(day(2025, time.March, 4)) // duplicate day
	second.EntityID = entityID

	err := ValidateRun([]Snapshot{first, second})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "strictly ascending")
}

func TestValidateRun_EmptyAndSingle(t *testing.T) {
	assert.NoError(t, ValidateRun(nil))
	assert.NoError(t, ValidateRun([]Snapshot{validSnapshot(day(2025, time.March, 3))}))
}
