package timeline

import (
	"fmt"
	"math"
)

// Reducer folds the values of one calendar bucket into a single value.
type Reducer func(values []float64) float64

// ReduceSum sums the bucket. It is the default reducer and suits flow
// quantities (payments, revenue). NaN values propagate.
func ReduceSum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// ReduceLast keeps the chronologically last value of the bucket, falling
// back to 0 when that value is undefined (NaN). It suits stock quantities
// (balances, asset values) where summing periods is meaningless.
func ReduceLast(values []float64) float64 {
	last := values[len(values)-1]
	if math.IsNaN(last) {
		return 0
	}
	return last
}

// Aggregate buckets the series by truncating each point to granularity g and
// reduces each non-empty bucket with r (ReduceSum when nil). The result is a
// new series indexed by the bucket points, in chronological order. The
// target granularity must be coarser than or equal to the series' own, or
// the call fails with ErrGranularityMismatch.
func Aggregate(s *Series, g Granularity, r Reducer) (*Series, error) {
	if r == nil {
		r = ReduceSum
	}
	if sg, ok := s.Granularity(); ok && !g.Coarser(sg) {
		return nil, fmt.Errorf("aggregating a %s series into %s buckets: %w", sg, g, ErrGranularityMismatch)
	}
	out := new(Series)
	var bucket Point
	var members []float64
	flush := func() {
		if len(members) > 0 {
			out.points = append(out.points, bucket)
			out.values = append(out.values, r(members))
		}
	}
	for i, on := range s.points {
		b, err := on.Truncate(g)
		if err != nil {
			return nil, err
		}
		// the input is sorted, so bucket members are always consecutive
		if len(members) > 0 && b != bucket {
			flush()
			members = members[:0]
		}
		bucket = b
		members = append(members, s.values[i])
	}
	flush()
	return out, nil
}
