// Package timeline provides the calendar core for cash-flow analysis:
// granularity-tagged time points and sparse, chronologically sorted series
// of values indexed by them.
package timeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGranularityMismatch is returned by operations that combine series or
// points of incompatible granularities (e.g. merging a monthly series with
// a daily one). Such calls fail loudly rather than silently misaligning.
var ErrGranularityMismatch = errors.New("granularity mismatch")

// Granularity is the calendar resolution of a Point: an exact day, a month,
// a quarter, or a year. Daily is the finest granularity, Yearly the coarsest.
type Granularity int

const (
	Daily Granularity = iota
	Monthly
	Quarterly
	Yearly
)

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// Name returns the singular noun for the granularity (e.g. "day", "month").
func (g Granularity) Name() string {
	switch g {
	case Daily:
		return "day"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Frequency returns the number of periods per year at this granularity:
// 365 for Daily, 12 for Monthly, 4 for Quarterly and 1 for Yearly. It is the
// native discounting frequency of a series at this granularity.
func (g Granularity) Frequency() int {
	switch g {
	case Daily:
		return 365
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Yearly:
		return 1
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// Coarser reports whether g is coarser than or equal to h.
func (g Granularity) Coarser(h Granularity) bool { return g >= h }

func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown granularity %s", s)
	}
}
