package cashflow

import (
	"fmt"
	"math"

	"github.com/etnz/cashflow/timeline"
)

// PeriodicRate converts an annual rate into the rate of one compounding
// period. An APR is split evenly across the year (annual/frequency); an
// effective annual rate is converted so that compounding it frequency
// times yields the annual rate back.
func PeriodicRate(annual float64, frequency int, apr bool) float64 {
	if frequency <= 1 {
		return annual
	}
	if apr {
		return annual / float64(frequency)
	}
	return math.Pow(1+annual, 1/float64(frequency)) - 1
}

// EffectiveAnnual converts a periodic rate back into the effective annual
// rate obtained by compounding it frequency times per year.
func EffectiveAnnual(periodic float64, frequency int) float64 {
	if frequency <= 1 {
		return periodic
	}
	return math.Pow(1+periodic, float64(frequency)) - 1
}

// granularityOf maps a compounding frequency to the calendar granularity of
// one period. It is the inverse of timeline.Granularity.Frequency.
func granularityOf(frequency int) (timeline.Granularity, error) {
	switch frequency {
	case 365:
		return timeline.Daily, nil
	case 12:
		return timeline.Monthly, nil
	case 4:
		return timeline.Quarterly, nil
	case 1:
		return timeline.Yearly, nil
	}
	return 0, fmt.Errorf("no calendar granularity for frequency %d", frequency)
}
