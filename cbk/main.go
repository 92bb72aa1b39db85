package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion; it exits the process when invoked by
// the shell as a completer and is a no-op otherwise.
func completion() {
	jsonFiles := predict.Files("*.json")
	entryFlags := map[string]complete.Predictor{
		"type":     predict.Set{"income", "expense"},
		"amount":   predict.Something,
		"category": predict.Something,
		"account":  predict.Something,
		"d":        predict.Something,
	}

	cbk := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"add":             {Flags: entryFlags},
			"edit":            {Flags: entryFlags},
			"rm":              {},
			"list":            {Flags: entryFlags},
			"balance":         {},
			"summary":         {},
			"categories":      {},
			"category-add":    {Flags: map[string]complete.Predictor{"type": predict.Set{"income", "expense"}}},
			"category-rm":     {Flags: map[string]complete.Predictor{"type": predict.Set{"income", "expense"}}},
			"account-add":     {Flags: map[string]complete.Predictor{"type": predict.Set{"cash", "debit_card", "credit_card", "e_wallet", "other"}}},
			"account-default": {},
			"account-rm":      {},
			"config":          {},
			"export":          {Args: jsonFiles},
			"import":          {Args: jsonFiles},
			"backup":          {},
			"backups":         {},
			"restore":         {Args: jsonFiles},
			"backup-rm":       {Args: jsonFiles},
			"path":            {},
			"query":           {},
			"topic":           {Args: predict.Set{"readme", "storage", "backups", "amounts", "dates", "*"}},
		},
	}
	cbk.Complete("cbk")
}
