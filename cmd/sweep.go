package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/renderer"
	"github.com/etnz/cashflow/timeline"
	"github.com/google/subcommands"
)

type sweepCmd struct {
	from string
	to   string
}

func (*sweepCmd) Name() string     { return "sweep" }
func (*sweepCmd) Synopsis() string { return "internal rate of return per candidate hold date" }
func (*sweepCmd) Usage() string {
	return `cfa sweep -from <point> -to <point>

  Computes the IRR of holding the plan until each point between from and to,
  one plan granule at a time. Hold dates with a degenerate flow show as a
  dash instead of aborting the sweep.

Usage Examples:
# Yearly exit sensitivity between 2030 and 2040.
$ cfa sweep -from 2030 -to 2040

`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "first hold date")
	f.StringVar(&c.to, "to", "", "last hold date")
}

func (c *sweepCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		return fail(fmt.Errorf("sweep needs both -from and -to"))
	}
	from, err := timeline.ParsePoint(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := timeline.ParsePoint(c.to)
	if err != nil {
		return fail(err)
	}
	if from.Granularity() != to.Granularity() {
		return fail(fmt.Errorf("sweeping from %s to %s: %w", from, to, timeline.ErrGranularityMismatch))
	}
	if to.Before(from) {
		return fail(fmt.Errorf("sweep range %s to %s is empty", from, to))
	}

	plan, _, err := loadPlan()
	if err != nil {
		return fail(err)
	}

	var holds []timeline.Point
	for on := from; !on.After(to); on = on.Add(1) {
		holds = append(holds, on)
	}

	curve := cashflow.SweepIRR(holds, func(hold timeline.Point) (*timeline.Series, error) {
		return plan.Window(timeline.Point{}, hold).Total()
	})

	printMarkdown(renderer.SweepMarkdown(curve))
	return subcommands.ExitSuccess
}
