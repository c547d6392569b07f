package cashflow

import (
	"fmt"
	"math"

	"github.com/etnz/cashflow/timeline"
)

// Valuation holds the optional parameters of an NPV computation.
type Valuation struct {
	// Frequency is the number of compounding periods per year. Zero means
	// the series' native frequency (365 for daily flows, 12 for monthly, 4
	// for quarterly, 1 for yearly).
	Frequency int
	// APR marks the rate as a nominal annual percentage rate rather than an
	// effective annual rate.
	APR bool
	// AsOf is the reference date of the valuation. Zero means the first
	// point of the flows.
	AsOf timeline.Point
	// IncludePast keeps flows strictly before AsOf in the valuation. Their
	// elapsed time is negative, so the discount factor compounds them up
	// instead: the result reads as a future value of the earlier flows. The
	// default drops them, which reads as an NPV at inception.
	IncludePast bool
}

// NPV discounts the flows to their present value as of v.AsOf and sums
// them. The annual rate is normalized to a per-period effective rate
// consistent with the compounding frequency, each flow is discounted by
// (1+periodic)^elapsed where elapsed counts periods from AsOf (signed), and
// flows before AsOf are dropped unless v.IncludePast.
func NPV(rate float64, flows *timeline.Series, v Valuation) (float64, error) {
	g, ok := flows.Granularity()
	if !ok {
		return 0, nil
	}

	freq := v.Frequency
	if freq == 0 {
		freq = g.Frequency()
	}
	periodic := PeriodicRate(rate, freq, v.APR)

	asOf := v.AsOf
	if asOf.IsZero() {
		asOf, _ = flows.First()
	} else if asOf.Granularity() != g {
		return math.NaN(), fmt.Errorf("valuing a %s series as of a %s point: %w", g, asOf.Granularity(), timeline.ErrGranularityMismatch)
	}

	var sum float64
	for on, value := range flows.Values() {
		if !v.IncludePast && on.Before(asOf) {
			continue
		}
		// Elapsed compounding periods, signed. With the native frequency
		// this is exactly on.Since(asOf) in the series' own period units.
		elapsed := on.YearsSince(asOf) * float64(freq)
		sum += value / math.Pow(1+periodic, elapsed)
	}
	return sum, nil
}
