package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

type irrCmd struct {
	from        string
	to          string
	standardize bool
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "internal rate of return of the plan's total flow" }
func (*irrCmd) Usage() string {
	return `cfa irr [-from <point>] [-to <point>] [-standardize]

  Computes the discount rate at which the plan's total cash flow nets to
  zero, as an effective annual rate. A degenerate or unbracketable flow
  reports an indeterminate result.

Usage Examples:
# IRR of the whole plan.
$ cfa irr

# IRR of the flows up to the end of 2030.
$ cfa irr -to 2030-12

`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "ignore flows before this point")
	f.StringVar(&c.to, "to", "", "ignore flows after this point")
	f.BoolVar(&c.standardize, "standardize", false, "rescale to the actual duration when shorter than a year")
}

func (c *irrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := parsePoint(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := parsePoint(c.to)
	if err != nil {
		return fail(err)
	}

	plan, _, err := loadPlan()
	if err != nil {
		return fail(err)
	}
	total, err := plan.Window(from, to).Total()
	if err != nil {
		return fail(err)
	}

	solve := cashflow.IRR
	if c.standardize {
		solve = cashflow.StandardizedIRR
	}
	irr, err := solve(total)
	if errors.Is(err, cashflow.ErrIndeterminate) {
		fmt.Fprintf(os.Stderr, "Indeterminate: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		return fail(err)
	}

	fmt.Println(cashflow.AsPercent(irr))
	return subcommands.ExitSuccess
}
