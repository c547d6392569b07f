package cashflow

import (
	"math"

	"github.com/etnz/cashflow/timeline"
)

// Grow projects a value compounding at a constant periodic rate: the series
// holds initial·(1+rate)^i at start+i for i in 0..periods. It suits
// appreciating assets (a house value, a rent) in plans and sweeps.
func Grow(start timeline.Point, initial, rate float64, periods int) *timeline.Series {
	var s timeline.Series
	for i := 0; i <= periods; i++ {
		s.Append(start.Add(i), initial*math.Pow(1+rate, float64(i)))
	}
	return &s
}
