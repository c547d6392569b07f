package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cashflow"
	md "github.com/nao1215/markdown"
)

// ScheduleMarkdown renders a solved amortization schedule: the loan terms
// first, then the period-by-period breakdown.
func ScheduleMarkdown(s *cashflow.Schedule, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Amortization over %d %ss from %s", s.Periods, granule(s), s.Start))
	doc.PlainText(fmt.Sprintf("Balance: %s, payment: %s, periodic rate: %.4f%%",
		amount(s.Balance0, currency), amount(s.Payment, currency), 100*s.PeriodicRate))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Interest", "Principal", "Balance"},
		Rows:   [][]string{},
	}
	for on, b := range s.Balance.Values() {
		interest, _ := s.Interest.Get(on)
		principal, _ := s.Principal.Get(on)
		table.Rows = append(table.Rows, []string{
			on.String(),
			amount(interest, currency),
			amount(principal, currency),
			amount(b, currency),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total interest paid: %s", amount(s.Interest.Total(), currency)))

	return doc.String()
}

// granule names one schedule period from the granularity of its points.
func granule(s *cashflow.Schedule) string {
	on, _ := s.Balance.First()
	return on.Granularity().Name()
}
