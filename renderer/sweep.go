package renderer

import (
	"bytes"
	"math"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/timeline"
	md "github.com/nao1215/markdown"
)

// SweepMarkdown renders a hold-date sensitivity curve: one internal rate of
// return per candidate hold point. Indeterminate points carry a NaN in the
// curve and show as a dash.
func SweepMarkdown(curve *timeline.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Internal rate of return by hold date")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Hold until", "IRR"},
		Rows:      [][]string{},
	}
	for on, irr := range curve.Values() {
		cell := "-"
		if !math.IsNaN(irr) {
			cell = cashflow.AsPercent(irr).String()
		}
		table.Rows = append(table.Rows, []string{on.String(), cell})
	}
	doc.Table(table)

	return doc.String()
}
