package timeline

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestAggregateSum(t *testing.T) {
	s := new(Series)
	s.Append(NewMonthly(2025, time.January), 10)
	s.Append(NewMonthly(2025, time.February), 20)
	s.Append(NewMonthly(2025, time.June), 5)
	s.Append(NewMonthly(2026, time.January), 1)

	byYear, err := Aggregate(s, Yearly, nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if byYear.Len() != 2 {
		t.Fatalf("Aggregate Len = %d want 2 (only non-empty buckets)", byYear.Len())
	}
	if v, _ := byYear.Get(NewYearly(2025)); v != 35 {
		t.Errorf("2025 bucket = %v want 35", v)
	}
	if v, _ := byYear.Get(NewYearly(2026)); v != 1 {
		t.Errorf("2026 bucket = %v want 1", v)
	}

	// aggregation preserves the grand total
	if byYear.Total() != s.Total() {
		t.Errorf("aggregated total %v != source total %v", byYear.Total(), s.Total())
	}

	byQuarter, err := Aggregate(s, Quarterly, ReduceSum)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if byQuarter.Total() != s.Total() {
		t.Errorf("quarterly total %v != source total %v", byQuarter.Total(), s.Total())
	}
	if v, _ := byQuarter.Get(NewQuarterly(2025, 1)); v != 30 {
		t.Errorf("2025-Q1 bucket = %v want 30", v)
	}
}

func TestAggregateLast(t *testing.T) {
	s := new(Series)
	s.Append(NewMonthly(2025, time.January), 1000)
	s.Append(NewMonthly(2025, time.December), 700)
	s.Append(NewMonthly(2026, time.March), math.NaN())

	balances, err := Aggregate(s, Yearly, ReduceLast)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	// a balance series keeps the last value of each bucket
	if v, _ := balances.Get(NewYearly(2025)); v != 700 {
		t.Errorf("2025 last = %v want 700", v)
	}
	// an undefined last value falls back to 0
	if v, _ := balances.Get(NewYearly(2026)); v != 0 {
		t.Errorf("2026 last = %v want 0 (NaN fallback)", v)
	}
}

func TestAggregateIdentityGranularity(t *testing.T) {
	s := new(Series)
	s.Append(NewQuarterly(2025, 1), 1)
	s.Append(NewQuarterly(2025, 2), 2)

	same, err := Aggregate(s, Quarterly, nil)
	if err != nil {
		t.Fatalf("Aggregate at native granularity: %v", err)
	}
	if same.Len() != 2 || same.Total() != 3 {
		t.Errorf("identity aggregation = %d points, total %v", same.Len(), same.Total())
	}
}

func TestAggregateFinerFails(t *testing.T) {
	s := new(Series)
	s.Append(NewYearly(2025), 1)

	if _, err := Aggregate(s, Monthly, nil); !errors.Is(err, ErrGranularityMismatch) {
		t.Errorf("aggregating yearly series into months: err = %v want ErrGranularityMismatch", err)
	}
}
