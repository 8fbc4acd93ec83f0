// Package calendar resolves exchange-local trading days and maps period
// codes to concrete date windows. Every method takes the reference instant as
// an argument: business logic never reads an ambient clock.
package calendar

import (
	"fmt"
	"time"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

// DefaultExchangeZone is the IANA zone of the tracked exchange (NYSE/NASDAQ).
const DefaultExchangeZone = "America/New_York"

// MarketCalendar buckets instants into exchange-local trading days.
// Weekends roll back to the prior Friday; holiday calendars are a documented
// non-goal, so a holiday resolves to itself like any weekday.
type MarketCalendar struct {
	loc *time.Location
}

// NewMarketCalendar creates a calendar for the given IANA zone name.
// An empty name selects DefaultExchangeZone.
func NewMarketCalendar(zone string) (*MarketCalendar, error) {
	if zone == "" {
		zone = DefaultExchangeZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange zone %q: %w", zone, err)
	}
	return &MarketCalendar{loc: loc}, nil
}

// BucketDate maps an arbitrary instant onto its trading date.
// The instant is converted to the exchange zone FIRST and truncated to a date
// SECOND — truncating in the session's own zone would silently shift
// snapshots near exchange midnight onto the wrong day.
// The returned date is normalized to midnight UTC for use as a map/sort key.
func (c *MarketCalendar) BucketDate(ts time.Time) time.Time {
	local := ts.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentTradingDay resolves the trading day containing `now`, rolling
// weekend instants back to the prior Friday.
func (c *MarketCalendar) CurrentTradingDay(now time.Time) time.Time {
	day := c.BucketDate(now)
	switch day.Weekday() {
	case time.Saturday:
		return day.AddDate(0, 0, -1)
	case time.Sunday:
		return day.AddDate(0, 0, -2)
	default:
		return day
	}
}

// PreviousTradingDay steps back one trading day from the given trading date,
// skipping the weekend.
func (c *MarketCalendar) PreviousTradingDay(day time.Time) time.Time {
	prev := day.AddDate(0, 0, -1)
	switch prev.Weekday() {
	case time.Sunday:
		return prev.AddDate(0, 0, -2)
	case time.Saturday:
		return prev.AddDate(0, 0, -1)
	default:
		return prev
	}
}

// ResolveRange maps a period code to a concrete window ending at the current
// trading day. MAX yields a zero start; the mid-period-join rule clips every
// window to the entity's first snapshot downstream, so a start earlier than
// the entity's history is harmless.
func (c *MarketCalendar) ResolveRange(code domain.PeriodCode, now time.Time) (domain.PerformancePeriod, error) {
	end := c.CurrentTradingDay(now)

	var start time.Time
	switch code {
	case domain.Period1D:
		start = c.PreviousTradingDay(end)
	case domain.Period5D:
		start = end
		for i := 0; i < 5; i++ {
			start = c.PreviousTradingDay(start)
		}
	case domain.Period1M:
		start = end.AddDate(0, -1, 0)
	case domain.Period3M:
		start = end.AddDate(0, -3, 0)
	case domain.PeriodYTD:
		// Jan 1 of the current exchange-local year. `end` is already the
		// exchange-local trading date, so its year is the right one.
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case domain.Period1Y:
		start = end.AddDate(-1, 0, 0)
	case domain.Period5Y:
		start = end.AddDate(-5, 0, 0)
	case domain.PeriodMax:
		start = time.Time{}
	default:
		return domain.PerformancePeriod{}, fmt.Errorf("unknown period code %q", code)
	}

	return domain.PerformancePeriod{Start: start, End: end}, nil
}
