package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook"
	"github.com/luoxin/cashbook/renderer"
)

type summaryCmd struct {
	start string
	end   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "income, expense and net totals over a date range" }
func (*summaryCmd) Usage() string {
	return `cbk summary [-s <start_date>] [-d <end_date>]

  Sums income and expense entries over an inclusive date range. The range
  defaults to the current month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the range (defaults to the first of the month).")
	f.StringVar(&c.end, "d", "0d", "End date of the range.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	end, err := cashbook.ParseDate(c.end)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var start cashbook.Date
	if c.start == "" {
		start = cashbook.NewDate(end.Year(), end.Month(), 1)
	} else if start, err = cashbook.ParseDate(c.start); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	doc, err := LoadDocument(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(doc, start, end))
	return subcommands.ExitSuccess
}
