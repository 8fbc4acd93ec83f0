package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FamilyApps/apestogether-performance/internal/domain"
)

func newTestCalendar(t *testing.T) *MarketCalendar {
	t.Helper()
	cal, err := NewMarketCalendar("")
	require.NoError(t, err)
	return cal
}

func TestNewMarketCalendar_UnknownZone(t *testing.T) {
	_, err := NewMarketCalendar("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestBucketDate_ExchangeMidnightBoundary(t *testing.T) {
	cal := newTestCalendar(t)
	eastern, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// One second before and after exchange-local midnight must land on two
	// different trading dates.
	before := time.Date(2025, time.June, 3, 23, 59, 59, 0, eastern)
	after := time.Date(2025, time.June, 4, 0, 0, 1, 0, eastern)

	assert.Equal(t, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), cal.BucketDate(before))
	assert.Equal(t, time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), cal.BucketDate(after))
}

func TestBucketDate_IndependentOfHostZone(t *testing.T) {
	cal := newTestCalendar(t)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2025-06-04 10:30 in Tokyo is 2025-06-03 21:30 in New York (EDT):
	// truncating in the session zone would give June 4, the wrong day.
	ts := time.Date(2025, time.June, 4, 10, 30, 0, 0, tokyo)

	assert.Equal(t, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), cal.BucketDate(ts))

	// The same instant expressed in UTC buckets identically.
	assert.Equal(t, cal.BucketDate(ts), cal.BucketDate(ts.UTC()))
}

func TestCurrentTradingDay_WeekendRollsBack(t *testing.T) {
	cal := newTestCalendar(t)

	// Saturday and Sunday (exchange-local) both resolve to Friday June 6.
	saturday := time.Date(2025, time.June, 7, 15, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.June, 8, 15, 0, 0, 0, time.UTC)
	friday := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, friday, cal.CurrentTradingDay(saturday))
	assert.Equal(t, friday, cal.CurrentTradingDay(sunday))

	// A weekday maps to itself.
	monday := time.Date(2025, time.June, 9, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), cal.CurrentTradingDay(monday))
}

func TestPreviousTradingDay_SkipsWeekend(t *testing.T) {
	cal := newTestCalendar(t)

	monday := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, friday, cal.PreviousTradingDay(monday))

	// Midweek steps back a single day.
	wednesday := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), cal.PreviousTradingDay(wednesday))
}

func TestResolveRange_AllCodes(t *testing.T) {
	cal := newTestCalendar(t)
	// Wednesday June 11, 2025, mid-session UTC.
	now := time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		code  domain.PeriodCode
		start time.Time
	}{
		{domain.Period1D, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{domain.Period5D, time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)},
		{domain.Period1M, time.Date(2025, time.May, 11, 0, 0, 0, 0, time.UTC)},
		{domain.Period3M, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)},
		{domain.PeriodYTD, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{domain.Period1Y, time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)},
		{domain.Period5Y, time.Date(2020, time.June, 11, 0, 0, 0, 0, time.UTC)},
		{domain.PeriodMax, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			period, err := cal.ResolveRange(tt.code, now)
			assert.NoError(t, err)
			assert.Equal(t, tt.start, period.Start)
			assert.Equal(t, end, period.End)
		})
	}
}

func TestResolveRange_MondayOneDaySpansWeekend(t *testing.T) {
	cal := newTestCalendar(t)
	monday := time.Date(2025, time.June, 9, 15, 0, 0, 0, time.UTC)

	period, err := cal.ResolveRange(domain.Period1D, monday)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), period.End)
}

func TestResolveRange_UnknownCode(t *testing.T) {
	cal := newTestCalendar(t)

	_, err := cal.ResolveRange(domain.PeriodCode("2W"), time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC))

	assert.Error(t, err)
}
