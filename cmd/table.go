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

type tableCmd struct {
	granularity string
	reduce      string
	orient      string
	from        string
	to          string
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "aggregate the plan into a periodic table" }
func (*tableCmd) Usage() string {
	return `cfa table [-granularity <g>] [-reduce sum|last] [-orient rows|cols] [-from <point>] [-to <point>]

  Buckets every item of the plan by calendar period, reduces each bucket,
  and prints one table with a derived Total line.

Usage Examples:
# Yearly view of the plan.
$ cfa table -granularity year

# Quarterly balances, last value of each bucket.
$ cfa table -granularity quarter -reduce last

`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.granularity, "granularity", "year", "bucket granularity: year, quarter or month")
	f.StringVar(&c.reduce, "reduce", "sum", "bucket reducer: sum or last")
	f.StringVar(&c.orient, "orient", "rows", "layout: items as rows or cols")
	f.StringVar(&c.from, "from", "", "ignore flows before this point")
	f.StringVar(&c.to, "to", "", "ignore flows after this point")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := timeline.ParseGranularity(c.granularity)
	if err != nil {
		return fail(err)
	}
	orient, err := cashflow.ParseOrient(c.orient)
	if err != nil {
		return fail(err)
	}
	var reducer timeline.Reducer
	switch c.reduce {
	case "sum":
		reducer = timeline.ReduceSum
	case "last":
		reducer = timeline.ReduceLast
	default:
		return fail(fmt.Errorf("unknown reducer %q: want \"sum\" or \"last\"", c.reduce))
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
	items, err := plan.Window(from, to).WithTotal()
	if err != nil {
		return fail(err)
	}
	table, err := cashflow.NewTable(items, g, reducer, orient)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.TableMarkdown(table, currency))
	return subcommands.ExitSuccess
}
