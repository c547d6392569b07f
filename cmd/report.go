package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/renderer"
	"github.com/etnz/cashflow/timeline"
	"github.com/google/subcommands"
)

type reportCmd struct {
	granularity string
	rate        float64
	apr         bool
	from        string
	to          string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "full valuation report of the plan" }
func (*reportCmd) Usage() string {
	return `cfa report [-rate <percent>] [-apr] [-granularity <g>] [-from <point>] [-to <point>]

  Values the plan over a window: internal rate of return and net present
  value of the total flow, plus the aggregated table of all items.

Usage Examples:
# Valuation of the whole plan discounted at 5%.
$ cfa report -rate 5

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.granularity, "granularity", "year", "bucket granularity of the table: year, quarter or month")
	f.Float64Var(&c.rate, "rate", 0, "annual discount rate in percent for the net present value")
	f.BoolVar(&c.apr, "apr", false, "treat the rate as a nominal APR instead of an effective annual rate")
	f.StringVar(&c.from, "from", "", "ignore flows before this point")
	f.StringVar(&c.to, "to", "", "ignore flows after this point")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := timeline.ParseGranularity(c.granularity)
	if err != nil {
		return fail(err)
	}
	from, err := parsePoint(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := parsePoint(c.to)
	if err != nil {
		return fail(err)
	}

	plan, currency, err := loadPlan()
	if err != nil {
		return fail(err)
	}

	report, err := cashflow.NewReport(plan, cashflow.ReportOptions{
		Granularity: g,
		Rate:        c.rate / 100,
		APR:         c.apr,
		From:        from,
		To:          to,
		Currency:    currency,
	})
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.ValuationMarkdown(report))
	return subcommands.ExitSuccess
}
