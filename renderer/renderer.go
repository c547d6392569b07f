// Package renderer turns the cashflow report structs into markdown strings.
// It owns all presentation concerns (column layout, number formatting) so
// the core package stays a pure computation library.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/etnz/cashflow"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// amount formats a cash amount in the report's display currency, or as a
// plain number when the report carries none.
func amount(v float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return cashflow.M(v, currency).String()
}

// rate formats a solved rate, showing indeterminate results as a dash.
func rate(p cashflow.Percent) string {
	if math.IsNaN(float64(p)) {
		return "-"
	}
	return p.String()
}
