package timeline

import (
	"errors"
	"testing"
	"time"
)

func monthly(t *testing.T, entries map[string]float64) *Series {
	t.Helper()
	s := new(Series)
	for str, v := range entries {
		s.Append(MustParsePoint(str), v)
	}
	return s
}

func TestMergeUnion(t *testing.T) {
	a := monthly(t, map[string]float64{"2025-01": 1, "2025-03": 3})
	b := monthly(t, map[string]float64{"2025-02": 2, "2025-03": 30})

	merged, err := Merge([]*Series{a, b}, FillZero)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("Merge returned %d series want 2", len(merged))
	}

	// the timepoint set of every zero-filled column is the sorted union
	want := []Point{
		NewMonthly(2025, time.January),
		NewMonthly(2025, time.February),
		NewMonthly(2025, time.March),
	}
	for col, m := range merged {
		points := m.Points()
		if len(points) != len(want) {
			t.Fatalf("column %d has %d points want %d", col, len(points), len(want))
		}
		for i := range want {
			if points[i] != want[i] {
				t.Errorf("column %d point[%d] = %v want %v", col, i, points[i], want[i])
			}
		}
	}

	// at a point present only in A, the zero-filled B column is 0
	if v, ok := merged[1].Get(NewMonthly(2025, time.January)); !ok || v != 0 {
		t.Errorf("B column at 2025-01 = %v, %v want 0, true", v, ok)
	}
	// original values survive alignment
	if v, _ := merged[0].Get(NewMonthly(2025, time.March)); v != 3 {
		t.Errorf("A column at 2025-03 = %v want 3", v)
	}
}

func TestMergeOmit(t *testing.T) {
	a := monthly(t, map[string]float64{"2025-01": 1, "2025-03": 3})
	b := monthly(t, map[string]float64{"2025-02": 2})

	merged, err := Merge([]*Series{a, b}, FillOmit)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	// omitted columns keep only their own points
	if merged[0].Len() != 2 || merged[1].Len() != 1 {
		t.Errorf("omit columns have %d and %d points want 2 and 1", merged[0].Len(), merged[1].Len())
	}
	if _, ok := merged[1].Get(NewMonthly(2025, time.January)); ok {
		t.Errorf("omit column B should not contain 2025-01")
	}
}

func TestMergeGranularityMismatch(t *testing.T) {
	a := monthly(t, map[string]float64{"2025-01": 1})
	b := new(Series)
	b.Append(NewYearly(2025), 1)

	if _, err := Merge([]*Series{a, b}, FillZero); !errors.Is(err, ErrGranularityMismatch) {
		t.Errorf("Merge of monthly and yearly series: err = %v want ErrGranularityMismatch", err)
	}
	if _, err := Sum([]*Series{a, b}); !errors.Is(err, ErrGranularityMismatch) {
		t.Errorf("Sum of monthly and yearly series: err = %v want ErrGranularityMismatch", err)
	}
}

func TestSum(t *testing.T) {
	a := monthly(t, map[string]float64{"2025-01": 1, "2025-03": 3})
	b := monthly(t, map[string]float64{"2025-01": 10, "2025-02": 2})

	total, err := Sum([]*Series{a, b})
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	wants := map[string]float64{"2025-01": 11, "2025-02": 2, "2025-03": 3}
	if total.Len() != len(wants) {
		t.Fatalf("Sum Len = %d want %d", total.Len(), len(wants))
	}
	for str, want := range wants {
		if got, ok := total.Get(MustParsePoint(str)); !ok || got != want {
			t.Errorf("Sum at %s = %v, %v want %v", str, got, ok, want)
		}
	}

	// an empty contributor changes nothing
	total2, err := Sum([]*Series{a, b, new(Series)})
	if err != nil {
		t.Fatalf("Sum with empty contributor: %v", err)
	}
	if total2.Len() != total.Len() {
		t.Errorf("Sum with empty contributor Len = %d want %d", total2.Len(), total.Len())
	}
}
