package timeline

import (
	"math"
	"testing"
	"time"
)

func TestSeriesAppend(t *testing.T) {
	s := new(Series)
	p1, v1 := NewMonthly(2025, time.July), 100.0
	p2, v2 := NewMonthly(2024, time.July), 50.0

	// Test is about appending two values in reverse order and checking that
	// everything is as expected at every step of the way.

	if s.Len() != 0 {
		t.Errorf("Series.Len() = %v want 0", s.Len())
	}

	s.Append(p1, v1)
	if s.Len() != 1 {
		t.Errorf("Append(p1, v1).Len() = %v want 1", s.Len())
	}

	s.Append(p2, v2)
	if s.Len() != 2 {
		t.Errorf("Append(p2, v2).Len() = %v want 2", s.Len())
	}

	if s.points[0] != p2 || s.values[0] != v2 {
		t.Errorf("series[0] = %v:%v want %v:%v", s.points[0], s.values[0], p2, v2)
	}
	if s.points[1] != p1 || s.values[1] != v1 {
		t.Errorf("series[1] = %v:%v want %v:%v", s.points[1], s.values[1], p1, v1)
	}

	// Appending on an existing point overwrites: the last write wins.
	s.Append(p1, 999)
	if s.Len() != 2 {
		t.Errorf("Len() after overwrite = %v want 2", s.Len())
	}
	if got, _ := s.Get(p1); got != 999 {
		t.Errorf("Get(p1) = %v want 999", got)
	}
}

func TestNewSeries(t *testing.T) {
	points := []Point{NewYearly(2027), NewYearly(2025), NewYearly(2026)}
	values := []float64{3, 1, 2}
	s, err := NewSeries(points, values)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	for i, want := range []float64{1, 2, 3} {
		if s.values[i] != want {
			t.Errorf("values[%d] = %v want %v (chronological order)", i, s.values[i], want)
		}
	}

	if _, err := NewSeries(points, []float64{1}); err == nil {
		t.Errorf("NewSeries with mismatched lengths should fail")
	}

	mixed := []Point{NewYearly(2025), NewMonthly(2025, time.March)}
	if _, err := NewSeries(mixed, []float64{1, 2}); err == nil {
		t.Errorf("NewSeries with mixed granularities should fail")
	}
}

func TestSeriesWindow(t *testing.T) {
	s := new(Series)
	for y := 2020; y <= 2029; y++ {
		s.Append(NewYearly(y), float64(y))
	}

	w := s.Window(NewYearly(2023), NewYearly(2025))
	if w.Len() != 3 {
		t.Fatalf("Window Len = %d want 3", w.Len())
	}
	first, _ := w.First()
	last, _ := w.Last()
	if first != NewYearly(2023) || last != NewYearly(2025) {
		t.Errorf("Window bounds = %v..%v want 2023..2025 (inclusive)", first, last)
	}

	// zero bounds leave the end open
	open := s.Window(Point{}, NewYearly(2021))
	if open.Len() != 2 {
		t.Errorf("open Window Len = %d want 2", open.Len())
	}

	// the receiver is untouched
	if s.Len() != 10 {
		t.Errorf("source series mutated: Len = %d", s.Len())
	}
}

func TestSeriesShift(t *testing.T) {
	s := new(Series)
	s.Append(NewMonthly(2025, time.January), 1)
	s.Append(NewMonthly(2025, time.February), 2)

	shifted := s.Shift(2)
	first, v := shifted.First()
	if first != NewMonthly(2025, time.March) || v != 1 {
		t.Errorf("Shift(2).First() = %v:%v want 2025-03:1", first, v)
	}
	if orig, _ := s.First(); orig != NewMonthly(2025, time.January) {
		t.Errorf("source series mutated by Shift: %v", orig)
	}
}

func TestSeriesTotal(t *testing.T) {
	s := new(Series)
	s.Append(NewYearly(2025), -100)
	s.Append(NewYearly(2026), 60)
	s.Append(NewYearly(2027), 40)
	if got := s.Total(); got != 0 {
		t.Errorf("Total = %v want 0", got)
	}

	s.Append(NewYearly(2028), math.NaN())
	if got := s.Total(); !math.IsNaN(got) {
		t.Errorf("Total with an undefined entry = %v want NaN", got)
	}
}
