package cmd

import (
	"context"
	"flag"
	"math"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/renderer"
	"github.com/google/subcommands"
)

type amortizeCmd struct {
	rate     float64
	balance  float64
	payment  float64
	term     int
	apr      bool
	freq     int
	start    string
	currency string
}

func (*amortizeCmd) Name() string     { return "amortize" }
func (*amortizeCmd) Synopsis() string { return "solve a loan and print its amortization schedule" }
func (*amortizeCmd) Usage() string {
	return `cfa amortize -balance <amount> -rate <percent> [-apr] -term <periods> [-payment <amount>]

  Solves a constant-payment loan for whichever of rate, balance, payment and
  term is omitted, and prints the full period-by-period schedule. Supply at
  least three of the four.

Usage Examples:
# The monthly payment of a 4-year 7% APR loan of 10000.
$ cfa amortize -balance 10000 -rate 7 -apr -term 48

# How long 300 a month takes to pay 10000 back.
$ cfa amortize -balance 10000 -rate 7 -apr -payment 300

`
}

func (c *amortizeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", math.NaN(), "annual rate in percent (omit to solve for it)")
	f.Float64Var(&c.balance, "balance", math.NaN(), "initial balance (omit to solve for it)")
	f.Float64Var(&c.payment, "payment", math.NaN(), "payment per period (omit to solve for it)")
	f.IntVar(&c.term, "term", 0, "number of periods (omit to solve for it)")
	f.BoolVar(&c.apr, "apr", false, "treat the rate as a nominal APR instead of an effective annual rate")
	f.IntVar(&c.freq, "freq", 12, "periods per year: 365, 12, 4 or 1")
	f.StringVar(&c.start, "start", "", "schedule start, e.g. 2025-01 (defaults to today)")
	f.StringVar(&c.currency, "currency", "", "display currency, e.g. EUR")
}

func (c *amortizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := parsePoint(c.start)
	if err != nil {
		return fail(err)
	}

	sched, err := cashflow.Amortize(cashflow.LoanSpec{
		Rate:      c.rate / 100,
		Balance:   c.balance,
		Payment:   c.payment,
		Periods:   c.term,
		APR:       c.apr,
		Frequency: c.freq,
		Start:     start,
	})
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.ScheduleMarkdown(sched, c.currency))
	return subcommands.ExitSuccess
}
