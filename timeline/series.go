package timeline

import (
	"fmt"
	"iter"
	"slices"
)

// Series stores a chronological series of float64 values, each associated
// with a specific Point. Points are unique within a series and the series is
// always sorted; all points share one granularity. A NaN value is legal and
// means "undefined": reductions and solvers treat it according to their
// documented NA policy instead of silently coercing it to zero.
//
// Operations never mutate their receiver's data in place; they return new
// Series, so independent computations can share inputs without
// synchronization.
type Series struct {
	points []Point
	values []float64
}

// NewSeries builds a Series from parallel point and value slices. The inputs
// are copied, sorted chronologically, and deduplicated with last-write-wins
// semantics (the value latest in the input order survives). It fails when
// the slices differ in length or the points mix granularities.
func NewSeries(points []Point, values []float64) (*Series, error) {
	if len(points) != len(values) {
		return nil, fmt.Errorf("series needs parallel slices: %d points but %d values", len(points), len(values))
	}
	s := new(Series)
	for i, p := range points {
		if i > 0 && p.Granularity() != points[0].Granularity() {
			return nil, fmt.Errorf("series mixes %s and %s points: %w", points[0].Granularity(), p.Granularity(), ErrGranularityMismatch)
		}
		s.Append(p, values[i])
	}
	return s, nil
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.points) }

// Granularity returns the granularity shared by the series' points. The
// second result is false when the series is empty.
func (s *Series) Granularity() (Granularity, bool) {
	if len(s.points) == 0 {
		return Daily, false
	}
	return s.points[0].g, true
}

// search locates the insertion index of p, and whether it is already present.
func (s *Series) search(p Point) (int, bool) {
	return slices.BinarySearchFunc(s.points, p, Point.Compare)
}

// Append adds a point to the series, keeping it sorted.
//
// An existing value at that point is overwritten: the last write wins.
// Appending a point whose granularity differs from the series' is a usage
// error and panics.
func (s *Series) Append(on Point, v float64) *Series {
	if g, ok := s.Granularity(); ok && on.g != g {
		panic("timeline: appending a " + on.g.String() + " point to a " + g.String() + " series")
	}
	i, found := s.search(on)
	if found {
		s.values[i] = v
		return s
	}
	s.points = slices.Insert(s.points, i, on)
	s.values = slices.Insert(s.values, i, v)
	return s
}

// Get returns the value at 'on' and true, or zero and false.
func (s *Series) Get(on Point) (float64, bool) {
	if i, found := s.search(on); found {
		return s.values[i], true
	}
	return 0, false
}

// First returns the earliest point and value in the series, or zero values
// if the series is empty.
func (s *Series) First() (Point, float64) {
	if len(s.points) == 0 {
		return Point{}, 0
	}
	return s.points[0], s.values[0]
}

// Last returns the latest point and value in the series, or zero values if
// the series is empty.
func (s *Series) Last() (Point, float64) {
	last := len(s.points) - 1
	if last < 0 {
		return Point{}, 0
	}
	return s.points[last], s.values[last]
}

// Values returns an iterator over all point/value pairs in chronological order.
func (s *Series) Values() iter.Seq2[Point, float64] {
	return func(yield func(Point, float64) bool) {
		for i, on := range s.points {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Points returns a copy of the series' points in chronological order.
func (s *Series) Points() []Point { return slices.Clone(s.points) }

// Floats returns a copy of the series' values in chronological order.
func (s *Series) Floats() []float64 { return slices.Clone(s.values) }

// Total returns the sum of all values. A NaN value makes the total NaN.
func (s *Series) Total() float64 {
	var total float64
	for _, v := range s.values {
		total += v
	}
	return total
}

// Slice returns a new Series holding only the entries for which keep
// returns true.
func (s *Series) Slice(keep func(on Point, v float64) bool) *Series {
	out := new(Series)
	for i, on := range s.points {
		if keep(on, s.values[i]) {
			out.points = append(out.points, on)
			out.values = append(out.values, s.values[i])
		}
	}
	return out
}

// Shift returns a new Series with every point moved by n granules (days,
// months, quarters or years depending on the granularity).
func (s *Series) Shift(n int) *Series {
	out := &Series{points: make([]Point, len(s.points)), values: slices.Clone(s.values)}
	for i, on := range s.points {
		out.points[i] = on.Add(n)
	}
	return out
}

// Window returns a new Series clipped to [from, to], both inclusive. A zero
// from or to leaves that end unbounded.
func (s *Series) Window(from, to Point) *Series {
	return s.Slice(func(on Point, _ float64) bool {
		if !from.IsZero() && on.Before(from) {
			return false
		}
		if !to.IsZero() && on.After(to) {
			return false
		}
		return true
	})
}
