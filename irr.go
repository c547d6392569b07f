package cashflow

import (
	"fmt"
	"math"

	"github.com/etnz/cashflow/timeline"
)

// IRR finds the effective annual rate at which the flows discount to zero.
//
// Degenerate flows short-circuit, in order: an undefined (NaN) value, fewer
// than two points, or values all of one sign are indeterminate; mixed-sign
// values summing to exactly zero return 0. Otherwise a sign-changing
// bracket is searched around zero and bisected; flows whose npv never
// changes sign within the search budget are indeterminate too.
func IRR(flows *timeline.Series) (float64, error) {
	var total float64
	neg, pos := false, false
	for on, v := range flows.Values() {
		if math.IsNaN(v) {
			return math.NaN(), fmt.Errorf("undefined flow at %s: %w", on, ErrIndeterminate)
		}
		total += v
		neg = neg || v < 0
		pos = pos || v > 0
	}
	if flows.Len() < 2 {
		return math.NaN(), fmt.Errorf("%d flows are not enough to solve a rate: %w", flows.Len(), ErrIndeterminate)
	}
	if !neg || !pos {
		return math.NaN(), fmt.Errorf("flows are all of one sign: %w", ErrIndeterminate)
	}
	if total == 0 {
		return 0, nil
	}

	// Exponents count compounding periods from the first flow: the period is
	// a day for daily flows (frequency 365) and a year otherwise.
	first, firstValue := flows.First()
	freq := 1
	if g, _ := flows.Granularity(); g == timeline.Daily {
		freq = 365
	}
	times := make([]float64, 0, flows.Len())
	values := make([]float64, 0, flows.Len())
	for on, v := range flows.Values() {
		times = append(times, on.YearsSince(first)*float64(freq))
		values = append(values, v)
	}
	npv := func(rate float64) float64 {
		var sum float64
		for i, t := range times {
			sum += values[i] / math.Pow(1+rate, t)
		}
		return sum
	}

	lo, hi, err := bracket(npv, total)
	if err != nil {
		return math.NaN(), err
	}

	// A strictly negative first flow and a strictly positive last one is the
	// classical investment shape with a unique root: bisect to tolerance.
	// Any other shape may have a non-monotone npv, where a fixed budget of
	// sign-tracking bisections is robust against multiple crossings.
	_, lastValue := flows.Last()
	var rate float64
	if firstValue < 0 && lastValue > 0 {
		rate = bisect(npv, lo, hi, 200, 1e-10)
	} else {
		rate = bisect(npv, lo, hi, 40, 0)
	}
	if freq > 1 {
		rate = EffectiveAnnual(rate, freq)
	}
	return rate, nil
}

// StandardizedIRR is IRR rescaled to the actual duration of the flows when
// they span less than a year, via (1+irr)^years - 1, so that short streams
// are not overstated by annualization.
func StandardizedIRR(flows *timeline.Series) (float64, error) {
	irr, err := IRR(flows)
	if err != nil {
		return irr, err
	}
	first, _ := flows.First()
	last, _ := flows.Last()
	if duration := last.YearsSince(first); duration < 1 {
		irr = math.Pow(1+irr, duration) - 1
	}
	return irr, nil
}

// bracket finds two rates with opposite-signed npv. When the undiscounted
// total is negative the root lies below zero: lo walks down in -1% steps,
// flooring at -100%. When it is positive the root lies above zero: hi
// expands geometrically from +1%. Both walks carry the previous endpoint
// along, keeping the returned bracket tight.
func bracket(npv func(float64) float64, total float64) (lo, hi float64, err error) {
	if total < 0 {
		hi = 0
		for i := 1; i <= 100; i++ {
			lo = -float64(i) / 100
			if (npv(lo) < 0) != (npv(hi) < 0) {
				return lo, hi, nil
			}
			hi = lo
		}
	} else {
		lo, hi = 0, 0.01
		for i := 0; i < 100; i++ {
			if (npv(lo) < 0) != (npv(hi) < 0) {
				return lo, hi, nil
			}
			lo, hi = hi, hi*2
		}
	}
	return 0, 0, fmt.Errorf("no sign-changing bracket for the npv: %w", ErrIndeterminate)
}

// bisect narrows [lo, hi] keeping npv(lo)'s sign on the lo side, for at
// most iters rounds or until the bracket width drops under tol.
func bisect(npv func(float64) float64, lo, hi float64, iters int, tol float64) float64 {
	neg := npv(lo) < 0
	for i := 0; i < iters && hi-lo > tol; i++ {
		mid := (lo + hi) / 2
		if (npv(mid) < 0) == neg {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
