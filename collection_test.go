package cashflow

import (
	"errors"
	"reflect"
	"testing"

	"github.com/etnz/cashflow/timeline"
)

func houseCollection(t *testing.T) *Collection {
	t.Helper()
	c := NewCollection()
	c.Add("buy.house", flowsAt(t, []string{"2025-01"}, []float64{-250000}))
	c.Add("rent", flowsAt(t, []string{"2025-02", "2025-03", "2025-04"}, []float64{1200, 1200, 1200}))
	c.Add("insurance", flowsAt(t, []string{"2025-01", "2026-01"}, []float64{-400, -400}))
	return c
}

func TestCollectionOrderAndReplace(t *testing.T) {
	c := houseCollection(t)
	want := []string{"buy.house", "rent", "insurance"}
	if got := c.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Labels() = %v want %v", got, want)
	}

	// Re-adding a label replaces its series but keeps its position.
	c.Add("rent", flowsAt(t, []string{"2025-02"}, []float64{1500}))
	if got := c.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() after replace = %v want %v", got, want)
	}
	s, _ := c.Get("rent")
	if v, _ := s.Get(timeline.MustParsePoint("2025-02")); v != 1500 {
		t.Errorf("rent on 2025-02 = %v want 1500", v)
	}
}

func TestCollectionWithTotal(t *testing.T) {
	c, err := houseCollection(t).WithTotal()
	if err != nil {
		t.Fatalf("WithTotal: %v", err)
	}

	total, ok := c.Get(TotalLabel)
	if !ok {
		t.Fatal("WithTotal() has no Total entry")
	}

	// The total is indexed on the union of all members' points.
	wantPoints := []string{"2025-01", "2025-02", "2025-03", "2025-04", "2026-01"}
	if total.Len() != len(wantPoints) {
		t.Fatalf("Total.Len() = %d want %d", total.Len(), len(wantPoints))
	}
	for i, on := range total.Points() {
		if on.String() != wantPoints[i] {
			t.Errorf("Total point[%d] = %s want %s", i, on, wantPoints[i])
		}
	}

	// Absent entries count as zero in the sum.
	if v, _ := total.Get(timeline.MustParsePoint("2025-01")); v != -250400 {
		t.Errorf("Total on 2025-01 = %v want -250400", v)
	}
	if v, _ := total.Get(timeline.MustParsePoint("2025-02")); v != 1200 {
		t.Errorf("Total on 2025-02 = %v want 1200", v)
	}

	// Totaling again recomputes instead of double counting.
	again, err := c.WithTotal()
	if err != nil {
		t.Fatalf("WithTotal twice: %v", err)
	}
	total2, _ := again.Get(TotalLabel)
	if v, _ := total2.Get(timeline.MustParsePoint("2025-02")); v != 1200 {
		t.Errorf("Total on 2025-02 after retotal = %v want 1200", v)
	}
}

func TestCollectionGranularityMismatch(t *testing.T) {
	c := houseCollection(t)
	c.Add("odd", flowsAt(t, []string{"2025-01-15"}, []float64{1}))

	if _, _, err := c.Granularity(); !errors.Is(err, timeline.ErrGranularityMismatch) {
		t.Errorf("Granularity() error = %v, want ErrGranularityMismatch", err)
	}
	if _, err := c.WithTotal(); !errors.Is(err, timeline.ErrGranularityMismatch) {
		t.Errorf("WithTotal() error = %v, want ErrGranularityMismatch", err)
	}
	if _, err := NewTable(c, timeline.Yearly, nil, ItemsAsRows); !errors.Is(err, timeline.ErrGranularityMismatch) {
		t.Errorf("NewTable() error = %v, want ErrGranularityMismatch", err)
	}
}

func TestCollectionWindow(t *testing.T) {
	c := houseCollection(t).Window(timeline.MustParsePoint("2025-02"), timeline.MustParsePoint("2025-12"))
	s, _ := c.Get("insurance")
	if s.Len() != 0 {
		t.Errorf("windowed insurance.Len() = %d want 0", s.Len())
	}
	s, _ = c.Get("rent")
	if s.Len() != 3 {
		t.Errorf("windowed rent.Len() = %d want 3", s.Len())
	}
}

func TestNewTable(t *testing.T) {
	c, err := houseCollection(t).WithTotal()
	if err != nil {
		t.Fatalf("WithTotal: %v", err)
	}

	table, err := NewTable(c, timeline.Yearly, nil, ItemsAsRows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	if want := []string{"buy.house", "rent", "insurance", "Total"}; !reflect.DeepEqual(table.RowHeader, want) {
		t.Errorf("RowHeader = %v want %v", table.RowHeader, want)
	}
	if want := []string{"2025", "2026"}; !reflect.DeepEqual(table.ColumnHeader, want) {
		t.Errorf("ColumnHeader = %v want %v", table.ColumnHeader, want)
	}
	want := [][]float64{
		{-250000, 0},
		{3600, 0},
		{-400, -400},
		{-246800, -400},
	}
	if !reflect.DeepEqual(table.Cells, want) {
		t.Errorf("Cells = %v want %v", table.Cells, want)
	}

	// The aggregation preserves the grand total.
	var sum float64
	for _, row := range table.Cells[:3] {
		for _, v := range row {
			sum += v
		}
	}
	total, _ := c.Get(TotalLabel)
	if sum != total.Total() {
		t.Errorf("sum of cells = %v want %v", sum, total.Total())
	}
}

func TestNewTableTransposed(t *testing.T) {
	c := houseCollection(t)
	rows, err := NewTable(c, timeline.Yearly, nil, ItemsAsRows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	cols, err := NewTable(c, timeline.Yearly, nil, ItemsAsColumns)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if !reflect.DeepEqual(cols.RowHeader, rows.ColumnHeader) || !reflect.DeepEqual(cols.ColumnHeader, rows.RowHeader) {
		t.Fatalf("transposed headers = %v/%v want %v/%v", cols.RowHeader, cols.ColumnHeader, rows.ColumnHeader, rows.RowHeader)
	}
	for i, row := range rows.Cells {
		for j, v := range row {
			if cols.Cells[j][i] != v {
				t.Errorf("Cells[%d][%d] = %v want %v", j, i, cols.Cells[j][i], v)
			}
		}
	}
}

func TestNewTableLastReducer(t *testing.T) {
	// Balance-style series keep the last value of each bucket.
	c := NewCollection()
	c.Add("loan.balance", flowsAt(t,
		[]string{"2025-01", "2025-02", "2025-03"},
		[]float64{9800, 9600, 9400}))
	table, err := NewTable(c, timeline.Yearly, timeline.ReduceLast, ItemsAsRows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if got := table.Cells[0][0]; got != 9400 {
		t.Errorf("last balance of 2025 = %v want 9400", got)
	}
}
