package cashflow

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/cashflow/timeline"
)

// flowsAt is a test helper building a series from point strings.
func flowsAt(t *testing.T, points []string, values []float64) *timeline.Series {
	t.Helper()
	s := new(timeline.Series)
	for i, str := range points {
		s.Append(timeline.MustParsePoint(str), values[i])
	}
	return s
}

func TestIRRRoundTrip(t *testing.T) {
	// A single investment returned 3 years later at 8% compounded must
	// solve back to 8%, and discount to zero at that rate.
	r := 0.08
	flows := flowsAt(t,
		[]string{"2020", "2023"},
		[]float64{-1000, 1000 * math.Pow(1+r, 3)})

	irr, err := IRR(flows)
	if err != nil {
		t.Fatalf("IRR: %v", err)
	}
	if math.Abs(irr-r) > 1e-6 {
		t.Errorf("IRR = %g want %g", irr, r)
	}

	npv, err := NPV(irr, flows, Valuation{})
	if err != nil {
		t.Fatalf("NPV: %v", err)
	}
	if math.Abs(npv) > 1e-6 {
		t.Errorf("NPV at the IRR = %g want 0", npv)
	}
}

func TestIRRDaily(t *testing.T) {
	// Daily flows discount per day; the result is restated as an effective
	// annual rate. 1000 returned as 1100 exactly 365 days later is 10%.
	flows := flowsAt(t,
		[]string{"2025-01-01", "2026-01-01"},
		[]float64{-1000, 1100})
	irr, err := IRR(flows)
	if err != nil {
		t.Fatalf("IRR: %v", err)
	}
	if math.Abs(irr-0.10) > 1e-6 {
		t.Errorf("IRR = %g want 0.10", irr)
	}
}

func TestIRRNegative(t *testing.T) {
	// A losing investment has a negative rate, found by the downward walk.
	flows := flowsAt(t,
		[]string{"2020", "2022"},
		[]float64{-1000, 810})
	irr, err := IRR(flows)
	if err != nil {
		t.Fatalf("IRR: %v", err)
	}
	if math.Abs(irr-(-0.10)) > 1e-6 {
		t.Errorf("IRR = %g want -0.10", irr)
	}
}

func TestIRRDegenerate(t *testing.T) {
	cases := []struct {
		name   string
		points []string
		values []float64
	}{
		{"all positive", []string{"2020", "2021"}, []float64{100, 200}},
		{"all negative", []string{"2020", "2021"}, []float64{-100, -200}},
		{"single flow", []string{"2020"}, []float64{-100}},
		{"undefined flow", []string{"2020", "2021"}, []float64{-100, math.NaN()}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := IRR(flowsAt(t, c.points, c.values))
			if !errors.Is(err, ErrIndeterminate) {
				t.Fatalf("IRR() error = %v, want ErrIndeterminate", err)
			}
			if !math.IsNaN(got) {
				t.Errorf("IRR() = %v, want NaN", got)
			}
		})
	}
}

func TestIRRZeroSum(t *testing.T) {
	// Mixed signs summing to exactly zero short-circuit to a zero rate.
	irr, err := IRR(flowsAt(t, []string{"2020", "2021"}, []float64{-100, 100}))
	if err != nil {
		t.Fatalf("IRR: %v", err)
	}
	if irr != 0 {
		t.Errorf("IRR = %g want exactly 0", irr)
	}
}

func TestIRRNonClassicalShape(t *testing.T) {
	// Invest, cash out, then pay a final cost: the flow ends negative, so
	// the fixed-budget sign-tracking bisection path runs. The npv crosses
	// zero twice; the solver settles on the crossing inside its bracket.
	flows := flowsAt(t,
		[]string{"2020", "2021", "2022"},
		[]float64{-1000, 2105, -1100})
	irr, err := IRR(flows)
	if err != nil {
		t.Fatalf("IRR: %v", err)
	}
	if math.Abs(irr-0.1405696) > 1e-4 {
		t.Errorf("IRR = %g want about 0.14057", irr)
	}
	npv, err := NPV(irr, flows, Valuation{})
	if err != nil {
		t.Fatalf("NPV: %v", err)
	}
	if math.Abs(npv) > 1e-6 {
		t.Errorf("NPV at the IRR = %g want 0", npv)
	}
}

func TestStandardizedIRR(t *testing.T) {
	// Six months at an annualized 21% is rescaled to the actual duration:
	// (1.21)^0.5 - 1 = 10%.
	flows := flowsAt(t,
		[]string{"2025-01", "2025-07"},
		[]float64{-1000, 1100})

	annualized, err := IRR(flows)
	if err != nil {
		t.Fatalf("IRR: %v", err)
	}
	if math.Abs(annualized-0.21) > 1e-6 {
		t.Errorf("IRR = %g want 0.21", annualized)
	}

	std, err := StandardizedIRR(flows)
	if err != nil {
		t.Fatalf("StandardizedIRR: %v", err)
	}
	if math.Abs(std-0.10) > 1e-6 {
		t.Errorf("StandardizedIRR = %g want 0.10", std)
	}
}
