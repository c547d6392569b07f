// Package cmd implements the cfa subcommands. It is the driving layer: it
// reads plan files, calls the cashflow library, and renders the resulting
// reports as markdown on the terminal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/timeline"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands the binary registers.
var Commands = []subcommands.Command{
	subcommands.HelpCommand(),
	subcommands.FlagsCommand(),
	subcommands.CommandsCommand(),
	&amortizeCmd{},
	&irrCmd{},
	&npvCmd{},
	&reportCmd{},
	&sweepCmd{},
	&tableCmd{},
	&topicCmd{},
}

var planFile = flag.String("plan", "plan.jsonl", "Path to the cash-flow plan file (JSONL format)")

// loadPlan reads the plan file named by the -plan flag. A missing file is
// not fatal: commands get an empty plan and a warning instead.
func loadPlan() (*cashflow.Collection, string, error) {
	f, err := os.Open(*planFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, plan file does not exist, using an empty plan instead")
		return cashflow.NewCollection(), "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("cannot open plan %q: %w", *planFile, err)
	}
	defer f.Close()

	plan, currency, err := cashflow.DecodePlan(f)
	if err != nil {
		return nil, "", fmt.Errorf("cannot read plan %q: %w", *planFile, err)
	}
	return plan, currency, nil
}

// parsePoint parses an optional point flag: empty means the zero Point
// (unbounded window end, default reference date).
func parsePoint(value string) (timeline.Point, error) {
	if value == "" {
		return timeline.Point{}, nil
	}
	return timeline.ParsePoint(value)
}

// printMarkdown renders markdown to ANSI on the terminal, falling back to
// the raw text when rendering fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// fail reports an error to the user and converts it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
