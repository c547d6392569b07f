package cashflow

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/cashflow/timeline"
)

// ReportOptions configures NewReport.
type ReportOptions struct {
	Granularity timeline.Granularity // aggregation buckets of the table
	Reducer     timeline.Reducer     // sum when nil
	Orient      Orient
	Rate        float64              // annual discount rate for the NPV
	APR         bool                 // Rate is a nominal APR
	From, To    timeline.Point       // window, zero ends unbounded
	Currency    string               // display currency tag
}

// Report is the valuation of one cash-flow plan over a window: the windowed
// items with their derived total, the aggregated table, and the scalar IRR
// and NPV of the total flow. It is a plain data struct for the renderer.
type Report struct {
	From, To timeline.Point
	Currency string

	Items *Collection // windowed, Total included
	Table *Table

	Rate Percent // the discount rate the NPV was computed at
	NPV  float64

	IRR Percent
	// IRRIndeterminate is set when the total flow admits no rate (degenerate
	// or unbracketable); IRR is NaN then.
	IRRIndeterminate bool
}

// NewReport windows the collection, derives its total, aggregates the table
// and values the total flow. An indeterminate IRR is reported in the Report
// rather than failing the call; any other error is fatal to the report.
func NewReport(c *Collection, opts ReportOptions) (*Report, error) {
	items, err := c.Window(opts.From, opts.To).WithTotal()
	if err != nil {
		return nil, fmt.Errorf("cannot report: %w", err)
	}

	table, err := NewTable(items, opts.Granularity, opts.Reducer, opts.Orient)
	if err != nil {
		return nil, fmt.Errorf("cannot report: %w", err)
	}

	total, _ := items.Get(TotalLabel)

	npv, err := NPV(opts.Rate, total, Valuation{APR: opts.APR})
	if err != nil {
		return nil, fmt.Errorf("cannot report: %w", err)
	}

	report := &Report{
		From:     opts.From,
		To:       opts.To,
		Currency: opts.Currency,
		Items:    items,
		Table:    table,
		Rate:     AsPercent(opts.Rate),
		NPV:      npv,
	}

	irr, err := IRR(total)
	switch {
	case errors.Is(err, ErrIndeterminate):
		report.IRR, report.IRRIndeterminate = Percent(math.NaN()), true
	case err != nil:
		return nil, fmt.Errorf("cannot report: %w", err)
	default:
		report.IRR = AsPercent(irr)
	}
	return report, nil
}
