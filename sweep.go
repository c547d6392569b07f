package cashflow

import (
	"math"

	"github.com/etnz/cashflow/timeline"
)

// SweepIRR evaluates the internal rate of return of a scenario across many
// candidate hold dates. For each hold point, build returns the complete
// cash flow of holding until that point; its IRR becomes the entry at that
// point in the result. A hold whose flow is indeterminate (or whose build
// fails) yields a NaN entry instead of aborting the sweep, so one degenerate
// point does not cost the whole sensitivity curve.
//
// All scenario state flows through build's inputs: SweepIRR itself is a pure
// function and independent sweeps can run concurrently.
func SweepIRR(holds []timeline.Point, build func(hold timeline.Point) (*timeline.Series, error)) *timeline.Series {
	var out timeline.Series
	for _, hold := range holds {
		flows, err := build(hold)
		if err != nil {
			out.Append(hold, math.NaN())
			continue
		}
		irr, err := IRR(flows)
		if err != nil {
			out.Append(hold, math.NaN())
			continue
		}
		out.Append(hold, irr)
	}
	return &out
}
