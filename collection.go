package cashflow

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/cashflow/timeline"
)

// TotalLabel is the label of the derived total entry of a Collection. It is
// reserved: WithTotal refreshes it and excludes it from its own sum.
const TotalLabel = "Total"

// Collection is an insertion-ordered set of labeled cash-flow series,
// representing one investment's line items (e.g. "buy.house", "revenue",
// "insurance"). Before aggregation or totaling, every member must share one
// timeline granularity.
type Collection struct {
	labels []string
	series map[string]*timeline.Series
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{series: make(map[string]*timeline.Series)}
}

// Add sets the series for a label. An existing label keeps its position and
// gets the new series: the last write wins, like timeline.Series.Append.
func (c *Collection) Add(label string, s *timeline.Series) *Collection {
	if _, exists := c.series[label]; !exists {
		c.labels = append(c.labels, label)
	}
	c.series[label] = s
	return c
}

// Len returns the number of entries, the derived total included.
func (c *Collection) Len() int { return len(c.labels) }

// Labels returns the entry labels in insertion order.
func (c *Collection) Labels() []string { return slices.Clone(c.labels) }

// Get returns the series for a label, or nil and false.
func (c *Collection) Get(label string) (*timeline.Series, bool) {
	s, ok := c.series[label]
	return s, ok
}

// Values returns an iterator over all label/series pairs in insertion order.
func (c *Collection) Values() iter.Seq2[string, *timeline.Series] {
	return func(yield func(string, *timeline.Series) bool) {
		for _, label := range c.labels {
			if !yield(label, c.series[label]) {
				return
			}
		}
	}
}

// Granularity returns the granularity shared by all non-empty members, or
// ErrGranularityMismatch when members disagree. The second result is false
// when the collection holds no point at all.
func (c *Collection) Granularity() (timeline.Granularity, bool, error) {
	var g timeline.Granularity
	var found bool
	for label, s := range c.Values() {
		sg, ok := s.Granularity()
		if !ok {
			continue
		}
		if found && sg != g {
			return g, found, fmt.Errorf("collection mixes %s and %s series (at %q): %w", g, sg, label, timeline.ErrGranularityMismatch)
		}
		g, found = sg, true
	}
	return g, found, nil
}

// Window returns a new collection with every member clipped to [from, to].
func (c *Collection) Window(from, to timeline.Point) *Collection {
	out := NewCollection()
	for label, s := range c.Values() {
		out.Add(label, s.Window(from, to))
	}
	return out
}

// WithTotal returns a new collection with a derived "Total" entry appended:
// the zero-filled elementwise sum of every other member over the union of
// their points. An existing Total entry is recomputed, not summed twice.
func (c *Collection) WithTotal() (*Collection, error) {
	out := NewCollection()
	members := make([]*timeline.Series, 0, len(c.labels))
	for label, s := range c.Values() {
		if label == TotalLabel {
			continue
		}
		out.Add(label, s)
		members = append(members, s)
	}
	total, err := timeline.Sum(members)
	if err != nil {
		return nil, fmt.Errorf("cannot total the collection: %w", err)
	}
	out.Add(TotalLabel, total)
	return out, nil
}

// Total returns the derived total series, computing it when absent.
func (c *Collection) Total() (*timeline.Series, error) {
	if s, ok := c.Get(TotalLabel); ok {
		return s, nil
	}
	withTotal, err := c.WithTotal()
	if err != nil {
		return nil, err
	}
	s, _ := withTotal.Get(TotalLabel)
	return s, nil
}

// Orient selects the layout of a Table.
type Orient int

const (
	// ItemsAsRows puts one collection entry per row, one period per column.
	ItemsAsRows Orient = iota
	// ItemsAsColumns puts one period per row, one collection entry per column.
	ItemsAsColumns
)

// ParseOrient accepts "rows" (items as rows) or "cols"/"columns".
func ParseOrient(s string) (Orient, error) {
	switch s {
	case "rows":
		return ItemsAsRows, nil
	case "cols", "columns":
		return ItemsAsColumns, nil
	default:
		return ItemsAsRows, fmt.Errorf("unknown orientation %q: want \"rows\" or \"cols\"", s)
	}
}

// Table is a collection aggregated into calendar buckets and laid out for
// display: row and column headers plus a dense cell matrix, zero-filled
// where an entry has no value in a bucket.
type Table struct {
	Granularity  timeline.Granularity
	RowHeader    []string             // one per row
	ColumnHeader []string             // one per column
	Cells        [][]float64          // Cells[row][col]
}

// NewTable aggregates every entry of the collection independently into
// buckets of granularity g reduced by r (sum when nil), aligns the results
// on the union of all buckets with zero fill, and lays them out per orient.
func NewTable(c *Collection, g timeline.Granularity, r timeline.Reducer, orient Orient) (*Table, error) {
	if _, _, err := c.Granularity(); err != nil {
		return nil, fmt.Errorf("cannot tabulate: %w", err)
	}

	aggregated := make([]*timeline.Series, 0, c.Len())
	for _, s := range c.Values() {
		a, err := timeline.Aggregate(s, g, r)
		if err != nil {
			return nil, fmt.Errorf("cannot tabulate: %w", err)
		}
		aggregated = append(aggregated, a)
	}
	aligned, err := timeline.Merge(aggregated, timeline.FillZero)
	if err != nil {
		return nil, fmt.Errorf("cannot tabulate: %w", err)
	}

	var buckets []string
	if len(aligned) > 0 {
		for _, on := range aligned[0].Points() {
			buckets = append(buckets, on.String())
		}
	}

	// itemsAsRows cell matrix; transposed afterwards if needed.
	cells := make([][]float64, len(aligned))
	for i, s := range aligned {
		cells[i] = s.Floats()
	}

	t := &Table{Granularity: g, RowHeader: c.Labels(), ColumnHeader: buckets, Cells: cells}
	if orient == ItemsAsColumns {
		t = t.transpose()
	}
	return t, nil
}

func (t *Table) transpose() *Table {
	cells := make([][]float64, len(t.ColumnHeader))
	for i := range cells {
		cells[i] = make([]float64, len(t.RowHeader))
		for j := range cells[i] {
			cells[i][j] = t.Cells[j][i]
		}
	}
	return &Table{Granularity: t.Granularity, RowHeader: t.ColumnHeader, ColumnHeader: t.RowHeader, Cells: cells}
}
