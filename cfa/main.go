package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cashflow/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the cfa command tree for shell completion. It
// returns before main runs the commander when invoked by the shell.
func completion() {
	planFiles := predict.Files("*.jsonl")
	window := map[string]complete.Predictor{
		"from": predict.Nothing,
		"to":   predict.Nothing,
	}

	cfa := &complete.Command{
		Flags: map[string]complete.Predictor{
			"plan": planFiles,
		},
		Sub: map[string]*complete.Command{
			"amortize": {Flags: map[string]complete.Predictor{
				"rate":     predict.Nothing,
				"balance":  predict.Nothing,
				"payment":  predict.Nothing,
				"term":     predict.Nothing,
				"apr":      predict.Nothing,
				"freq":     predict.Set{"365", "12", "4", "1"},
				"start":    predict.Nothing,
				"currency": predict.Nothing,
			}},
			"irr": {Flags: map[string]complete.Predictor{
				"from":        predict.Nothing,
				"to":          predict.Nothing,
				"standardize": predict.Nothing,
			}},
			"npv": {Flags: map[string]complete.Predictor{
				"rate": predict.Nothing,
				"apr":  predict.Nothing,
				"freq": predict.Set{"365", "12", "4", "1"},
				"asof": predict.Nothing,
				"all":  predict.Nothing,
			}},
			"report": {Flags: map[string]complete.Predictor{
				"granularity": predict.Set{"year", "quarter", "month"},
				"rate":        predict.Nothing,
				"apr":         predict.Nothing,
				"from":        predict.Nothing,
				"to":          predict.Nothing,
			}},
			"sweep": {Flags: window},
			"table": {Flags: map[string]complete.Predictor{
				"granularity": predict.Set{"year", "quarter", "month"},
				"reduce":      predict.Set{"sum", "last"},
				"orient":      predict.Set{"rows", "cols"},
				"from":        predict.Nothing,
				"to":          predict.Nothing,
			}},
			"topic": {Args: predict.Set{"plan", "amortize", "irr", "npv", "table", "sweep", "*"}},
		},
	}
	cfa.Complete("cfa")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
