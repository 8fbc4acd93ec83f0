package domain

import (
	"fmt"
	"strings"
	"time"
)

// PeriodCode identifies one of the supported reporting windows.
// Codes resolve to concrete date ranges only through the market calendar —
// nothing in the domain layer ever asks for "now" on its own.
type PeriodCode string

const (
	Period1D  PeriodCode = "1D"
	Period5D  PeriodCode = "5D"
	Period1M  PeriodCode = "1M"
	Period3M  PeriodCode = "3M"
	PeriodYTD PeriodCode = "YTD"
	Period1Y  PeriodCode = "1Y"
	Period5Y  PeriodCode = "5Y"
	PeriodMax PeriodCode = "MAX"
)

// PeriodCodes lists every supported code in presentation order; the
// market-close refresh cycle walks it to rebuild each shared payload.
var PeriodCodes = []PeriodCode{
	Period1D, Period5D, Period1M, Period3M, PeriodYTD, Period1Y, Period5Y, PeriodMax,
}

// ParsePeriodCode parses a period code from its wire form (case-insensitive).
func ParsePeriodCode(s string) (PeriodCode, error) {
	code := PeriodCode(strings.ToUpper(strings.TrimSpace(s)))
	switch code {
	case Period1D, Period5D, Period1M, Period3M, PeriodYTD, Period1Y, Period5Y, PeriodMax:
		return code, nil
	default:
		return "", fmt.Errorf("unknown period code %q", s)
	}
}

func (c PeriodCode) String() string { return string(c) }

// PerformancePeriod is a resolved reporting window over trading dates,
// boundaries included. Start may be the zero time for MAX periods; the
// effective window is always clipped to the entity's first snapshot
// (mid-period join rule), so a zero Start simply means "since inception".
type PerformancePeriod struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the date falls inside the period, boundaries included.
func (p PerformancePeriod) Contains(date time.Time) bool {
	return !date.Before(p.Start) && !date.After(p.End)
}
