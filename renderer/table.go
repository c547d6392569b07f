package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cashflow"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders an aggregated cash-flow table. The first column
// holds the row headers (items or periods depending on the table's
// orientation), every other cell a zero-filled aggregated amount.
func TableMarkdown(t *cashflow.Table, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cash flows by %s", t.Granularity.Name()))
	doc.Table(tableSet(t, currency))

	return doc.String()
}

// tableSet lays a cashflow.Table out as a markdown table: headers left
// aligned, amounts right aligned, the derived total row in bold.
func tableSet(t *cashflow.Table, currency string) md.TableSet {
	table := md.TableSet{
		Alignment: make([]md.TableAlignment, 1+len(t.ColumnHeader)),
		Header:    append([]string{""}, t.ColumnHeader...),
		Rows:      [][]string{},
	}
	table.Alignment[0] = md.AlignLeft
	for i := range t.ColumnHeader {
		table.Alignment[1+i] = md.AlignRight
	}

	for i, header := range t.RowHeader {
		row := []string{header}
		if header == cashflow.TotalLabel {
			row[0] = md.Bold(header)
		}
		for _, v := range t.Cells[i] {
			row = append(row, amount(v, currency))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
