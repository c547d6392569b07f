package cashflow

import (
	"fmt"
	"math"

	"github.com/etnz/cashflow/timeline"
)

// Unknown marks a LoanSpec float parameter as the one to solve for.
var Unknown = math.NaN()

// LoanSpec describes a constant-payment loan. At most one of Rate, Balance,
// Payment and Periods may be left unknown (Unknown for the floats, 0 for
// Periods), and Amortize solves for it.
type LoanSpec struct {
	Rate      float64        // annual rate, APR or effective per the APR flag
	Balance   float64        // initial balance
	Payment   float64        // constant payment per period
	Periods   int            // term, in periods
	APR       bool           // Rate is a nominal APR rather than an effective annual rate
	Frequency int            // compounding periods per year, 0 defaults to 12
	Start     timeline.Point // schedule anchor, zero defaults to today
}

// Schedule is a solved amortization: the loan terms plus the period by
// period balance, interest and principal breakdown.
//
// Balance is non-increasing and floored at zero. Interest is the periodic
// rate applied to the previous balance, Principal the balance decrease, so
// the principal total equals the initial balance minus the final one.
type Schedule struct {
	PeriodicRate float64
	Balance0     float64
	Payment      float64
	Periods      int
	Start        timeline.Point

	Balance   *timeline.Series
	Interest  *timeline.Series
	Principal *timeline.Series
}

// Amortize solves the loan for its single unknown, if any, and expands it
// into a full Schedule. The schedule points start one period after Start at
// the granularity implied by Frequency.
func Amortize(spec LoanSpec) (*Schedule, error) {
	freq := spec.Frequency
	if freq == 0 {
		freq = 12
	}
	g, err := granularityOf(freq)
	if err != nil {
		return nil, fmt.Errorf("cannot amortize: %w", err)
	}

	unknowns := 0
	if math.IsNaN(spec.Rate) {
		unknowns++
	}
	if math.IsNaN(spec.Balance) {
		unknowns++
	}
	if math.IsNaN(spec.Payment) {
		unknowns++
	}
	if spec.Periods == 0 {
		unknowns++
	}
	if unknowns > 1 {
		return nil, fmt.Errorf("%d of rate, balance, payment and term are unknown, need at least three known: %w", unknowns, ErrParameterCount)
	}

	r := PeriodicRate(spec.Rate, freq, spec.APR)
	bal0, pmt, n := spec.Balance, spec.Payment, spec.Periods

	switch {
	case math.IsNaN(r):
		if r, err = impliedRate(bal0, pmt, n); err != nil {
			return nil, err
		}
	case math.IsNaN(pmt):
		pmt = payment(bal0, r, n)
	case math.IsNaN(bal0):
		bal0 = principalFor(pmt, r, n)
	}

	if pmt <= r*bal0 {
		return nil, fmt.Errorf("payment %.2f does not exceed the interest %.2f on the initial balance: %w", pmt, r*bal0, ErrInvalidSchedule)
	}
	if n == 0 {
		n = periodsFor(bal0, pmt, r)
	}

	start := spec.Start
	if start.IsZero() {
		start = timeline.Today(g)
	} else if start, err = start.Truncate(g); err != nil {
		return nil, fmt.Errorf("cannot anchor a %s schedule: %w", g, err)
	}

	var balance, interest, principal timeline.Series
	prev := bal0
	for i := 1; i <= n; i++ {
		on := start.Add(i)
		b := balanceAt(bal0, pmt, r, i)
		balance.Append(on, b)
		interest.Append(on, prev*r)
		principal.Append(on, prev-b)
		prev = b
	}

	return &Schedule{
		PeriodicRate: r,
		Balance0:     bal0,
		Payment:      pmt,
		Periods:      n,
		Start:        start,
		Balance:      &balance,
		Interest:     &interest,
		Principal:    &principal,
	}, nil
}

// CashFlow returns the loan from the borrower's standpoint: the balance
// received at Start followed by every payment going out.
func (s *Schedule) CashFlow() *timeline.Series {
	var flow timeline.Series
	flow.Append(s.Start, s.Balance0)
	for on := range s.Balance.Values() {
		flow.Append(on, -s.Payment)
	}
	return &flow
}

// impliedRate finds the periodic rate of a loan as the root, in the
// discount factor d = 1/(1+r), of -bal0 + pmt·Σ d^k for k=1..n. The
// polynomial is monotone in d, so a sign-changing bracket pins the root:
// [0, 1.01] when the undiscounted total is non-negative (rate is likely
// positive), [1, 1000] otherwise.
func impliedRate(bal0, pmt float64, n int) (float64, error) {
	f := func(d float64) float64 {
		sum, dk := 0.0, 1.0
		for k := 1; k <= n; k++ {
			dk *= d
			sum += dk
		}
		return -bal0 + pmt*sum
	}

	lo, hi := 0.0, 1.01
	if float64(n)*pmt < bal0 {
		lo, hi = 1.0, 1000.0
	}
	neg := f(lo) < 0
	if neg == (f(hi) < 0) {
		return math.NaN(), fmt.Errorf("no rate amortizes balance %.2f in %d payments of %.2f: %w", bal0, n, pmt, ErrIndeterminate)
	}
	for i := 0; i < 100 && hi-lo > 1e-12; i++ {
		mid := (lo + hi) / 2
		if (f(mid) < 0) == neg {
			lo = mid
		} else {
			hi = mid
		}
	}
	d := (lo + hi) / 2
	return 1/d - 1, nil
}

// payment returns the constant payment amortizing bal0 in n periods.
func payment(bal0, r float64, n int) float64 {
	if r == 0 {
		return bal0 / float64(n)
	}
	return bal0 * r / (1 - math.Pow(1+r, -float64(n)))
}

// principalFor returns the balance amortized by n payments of pmt.
func principalFor(pmt, r float64, n int) float64 {
	if r == 0 {
		return pmt * float64(n)
	}
	return pmt/r - (pmt/r)*math.Pow(1+r, -float64(n))
}

// periodsFor returns the number of payments of pmt needed to amortize bal0.
func periodsFor(bal0, pmt, r float64) int {
	if r == 0 {
		return int(math.Ceil(bal0 / pmt))
	}
	return int(math.Ceil(math.Log(1-bal0*r/pmt) / math.Log(1/(1+r))))
}

// balanceAt returns the remaining balance after the i-th payment.
func balanceAt(bal0, pmt, r float64, i int) float64 {
	var b float64
	if r == 0 {
		b = bal0 - pmt*float64(i)
	} else {
		ci := math.Pow(1+r, float64(i))
		b = bal0*ci - pmt*(ci-1)/r
	}
	return math.Max(0, b)
}
