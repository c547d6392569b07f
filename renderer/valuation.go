package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cashflow"
	md "github.com/nao1215/markdown"
)

// ValuationMarkdown renders a full plan valuation: the scalar IRR and NPV
// of the total flow, then the aggregated table of the windowed items.
func ValuationMarkdown(r *cashflow.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Plan valuation"
	switch {
	case !r.From.IsZero() && !r.To.IsZero():
		title = fmt.Sprintf("Plan valuation from %s to %s", r.From, r.To)
	case !r.From.IsZero():
		title = fmt.Sprintf("Plan valuation from %s", r.From)
	case !r.To.IsZero():
		title = fmt.Sprintf("Plan valuation until %s", r.To)
	}
	doc.H1(title)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Measure", "Value"},
		Rows: [][]string{
			{"Internal rate of return", rate(r.IRR)},
			{fmt.Sprintf("Net present value at %s", r.Rate), amount(r.NPV, r.Currency)},
		},
	})

	if r.IRRIndeterminate {
		doc.PlainText("The internal rate of return is indeterminate: the total flow is degenerate or admits no sign-changing discount rate.")
	}

	doc.H2(fmt.Sprintf("Cash flows by %s", r.Table.Granularity.Name()))
	doc.Table(tableSet(r.Table, r.Currency))

	return doc.String()
}
