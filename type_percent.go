package cashflow

import "fmt"

// Percent is a rate expressed in percentage points, for display.
type Percent float64

// AsPercent converts a rate fraction (0.07) into percentage points (7%).
func AsPercent(rate float64) Percent { return Percent(100 * rate) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
