package cashflow

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cashflow/timeline"
	"github.com/shopspring/decimal"
)

// A plan is persisted as a JSONL file, human-readable and git-friendly: one
// flow per line, like
//
//	{"item": "buy.house", "on": "2025-03", "amount": -250000, "currency": "EUR"}
//
// Amounts are exact decimals at rest; the in-memory Series hold their
// float64 view, since the solvers run on floats. The currency tag is display
// only and must be consistent across the whole plan.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// flowCmd is a specialized struct for decoding one plan line.
type flowCmd struct {
	Item     string          `json:"item"`
	On       timeline.Point  `json:"on"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

// DecodePlan decodes a cash-flow plan from a stream of JSONL data. It
// returns the collection of flows grouped by item, in first-appearance
// order, together with the plan's display currency (empty when no line
// carries one). Two flows of one item on the same point add up.
func DecodePlan(r io.Reader) (*Collection, string, error) {
	plan := NewCollection()
	var currency string

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var flow flowCmd
		if err := json.Unmarshal(line, &flow); err != nil {
			return nil, "", fmt.Errorf("format error on line %d %q: %w", n, string(line), err)
		}
		if flow.Item == "" {
			return nil, "", fmt.Errorf("format error on line %d: missing item", n)
		}
		if flow.On.IsZero() {
			return nil, "", fmt.Errorf("format error on line %d: missing on", n)
		}
		if flow.Item == TotalLabel {
			return nil, "", fmt.Errorf("format error on line %d: item %q is reserved for the derived total", n, TotalLabel)
		}
		switch {
		case flow.Currency == "":
		case currency == "":
			currency = flow.Currency
		case flow.Currency != currency:
			return nil, "", fmt.Errorf("format error on line %d: currency %q differs from the plan's %q (multi-currency plans are not supported)", n, flow.Currency, currency)
		}

		s, ok := plan.Get(flow.Item)
		if !ok {
			s = new(timeline.Series)
			plan.Add(flow.Item, s)
		}
		if g, ok := s.Granularity(); ok && g != flow.On.Granularity() {
			return nil, "", fmt.Errorf("format error on line %d: item %q mixes %s and %s points: %w", n, flow.Item, g, flow.On.Granularity(), timeline.ErrGranularityMismatch)
		}
		if prev, ok := s.Get(flow.On); ok {
			s.Append(flow.On, prev+flow.Amount.InexactFloat64())
		} else {
			s.Append(flow.On, flow.Amount.InexactFloat64())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("cannot read plan: %w", err)
	}
	return plan, currency, nil
}

// EncodePlan writes the collection as a canonical JSONL plan: items in
// collection order, flows in chronological order, fields in a fixed order.
// The derived Total entry is not persisted, since decoding rederives it.
func EncodePlan(w io.Writer, plan *Collection, currency string) error {
	for item, s := range plan.Values() {
		if item == TotalLabel {
			continue
		}
		for on, value := range s.Values() {
			var line jsonObjectWriter
			line.Append("item", item)
			line.Append("on", on)
			line.Append("amount", decimal.NewFromFloat(value))
			line.Optional("currency", currency)
			b, err := line.MarshalJSON()
			if err != nil {
				return fmt.Errorf("cannot encode flow of %q on %s: %w", item, on, err)
			}
			if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
				return fmt.Errorf("cannot write plan: %w", err)
			}
		}
	}
	return nil
}
