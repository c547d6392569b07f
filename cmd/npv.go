package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

type npvCmd struct {
	rate float64
	apr  bool
	freq int
	asOf string
	all  bool
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "net present value of the plan's total flow" }
func (*npvCmd) Usage() string {
	return `cfa npv -rate <percent> [-apr] [-freq <n>] [-asof <point>] [-all]

  Discounts the plan's total cash flow to its value as of a reference date.
  Flows before the reference date are dropped unless -all is set, in which
  case they compound up instead.

Usage Examples:
# Value of the plan at a 5% effective annual discount rate.
$ cfa npv -rate 5

# Value as of 2030, keeping (and compounding) the earlier flows.
$ cfa npv -rate 7 -apr -asof 2030-01 -all

`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", 0, "annual discount rate in percent")
	f.BoolVar(&c.apr, "apr", false, "treat the rate as a nominal APR instead of an effective annual rate")
	f.IntVar(&c.freq, "freq", 0, "compounding periods per year (0 uses the plan's granularity)")
	f.StringVar(&c.asOf, "asof", "", "reference date (defaults to the plan's first flow)")
	f.BoolVar(&c.all, "all", false, "keep flows before the reference date")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parsePoint(c.asOf)
	if err != nil {
		return fail(err)
	}

	plan, currency, err := loadPlan()
	if err != nil {
		return fail(err)
	}
	total, err := plan.Total()
	if err != nil {
		return fail(err)
	}

	npv, err := cashflow.NPV(c.rate/100, total, cashflow.Valuation{
		Frequency:   c.freq,
		APR:         c.apr,
		AsOf:        asOf,
		IncludePast: c.all,
	})
	if err != nil {
		return fail(err)
	}

	if currency == "" {
		fmt.Printf("%.2f\n", npv)
	} else {
		fmt.Println(cashflow.M(npv, currency))
	}
	return subcommands.ExitSuccess
}
