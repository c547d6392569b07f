package timeline

import (
	"fmt"
	"iter"
)

// Fill is the policy applied to union timepoints absent from one of the
// inputs of a Merge.
type Fill int

const (
	// FillOmit leaves a column sparse: points absent from an input stay
	// absent from that input's aligned series. Use it when a later reduction
	// skips missing entries explicitly.
	FillOmit Fill = iota
	// FillZero materializes every union point in every column, filling
	// absent entries with 0 before any reduction.
	FillZero
)

// sameGranularity returns the granularity shared by all non-empty series in
// the list, or ErrGranularityMismatch when the list mixes granularities.
// Empty series contribute no points and no constraint.
func sameGranularity(list []*Series) (Granularity, bool, error) {
	var g Granularity
	var found bool
	for _, s := range list {
		sg, ok := s.Granularity()
		if !ok {
			continue
		}
		if found && sg != g {
			return g, found, fmt.Errorf("merging %s and %s series: %w", g, sg, ErrGranularityMismatch)
		}
		g, found = sg, true
	}
	return g, found, nil
}

// union returns an iterator over all unique points from multiple series of
// points, in chronological order.
func union(series ...[]Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		indexes := make([]int, len(series))
		for {
			// find the minimum among the heads of all series
			var m Point
			var found bool
			for i, index := range indexes {
				if index >= len(series[i]) {
					continue
				}
				if on := series[i][index]; !found || on.Before(m) {
					m, found = on, true
				}
			}
			if !found {
				// All series have been consumed, exit.
				return
			}
			// consume every head equal to the minimum
			for i, index := range indexes {
				if index < len(series[i]) && series[i][index] == m {
					indexes[i]++
				}
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Union returns an iterator over all unique points of the given series, in
// chronological order. Mixing granularities is a usage error; Merge and Sum
// validate it and should be preferred.
func Union(list ...*Series) iter.Seq[Point] {
	points := make([][]Point, 0, len(list))
	for _, s := range list {
		points = append(points, s.points)
	}
	return union(points...)
}

// Merge aligns every input series onto the sorted union of all input points
// and returns one new series per input, in order. With FillZero each output
// contains every union point, absent entries filled with 0; with FillOmit
// each output keeps only its own points. Inputs of mixed granularities fail
// with ErrGranularityMismatch.
func Merge(list []*Series, fill Fill) ([]*Series, error) {
	if _, _, err := sameGranularity(list); err != nil {
		return nil, err
	}
	var timepoints []Point
	for on := range Union(list...) {
		timepoints = append(timepoints, on)
	}
	out := make([]*Series, len(list))
	for i, s := range list {
		aligned := new(Series)
		for _, on := range timepoints {
			v, ok := s.Get(on)
			if !ok {
				if fill == FillOmit {
					continue
				}
				v = 0
			}
			aligned.points = append(aligned.points, on)
			aligned.values = append(aligned.values, v)
		}
		out[i] = aligned
	}
	return out, nil
}

// Sum merges the given series with FillZero and reduces them to a single
// series of elementwise row sums, indexed on the union of all input points.
// Every union point has at least one contributor by construction. The
// operation is associative and commutative in its set of non-empty
// contributors; NaN contributions propagate to the summed entry.
func Sum(list []*Series) (*Series, error) {
	if _, _, err := sameGranularity(list); err != nil {
		return nil, err
	}
	out := new(Series)
	for on := range Union(list...) {
		var total float64
		for _, s := range list {
			if v, ok := s.Get(on); ok {
				total += v
			}
		}
		out.points = append(out.points, on)
		out.values = append(out.values, total)
	}
	return out, nil
}
