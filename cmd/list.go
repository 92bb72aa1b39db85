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

type listCmd struct {
	start    string
	end      string
	typ      string
	category string
	account  string
	head     int
	tail     int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list entries, with optional filters" }
func (*listCmd) Usage() string {
	return `cbk list [-s <start_date>] [-d <end_date>] [-type <income|expense>] [-category <name>] [-account <name>] [-head <n> | -tail <n>]

  Lists entries, most recently added first. Date ranges are inclusive.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the range.")
	f.StringVar(&c.end, "d", "", "End date of the range (defaults to today when -s is set).")
	f.StringVar(&c.typ, "type", "", "Keep only entries of this type (income, expense).")
	f.StringVar(&c.category, "category", "", "Keep only entries of this category.")
	f.StringVar(&c.account, "account", "", "Keep only entries of this account.")
	f.IntVar(&c.head, "head", 0, "Show only the first N entries.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N entries.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
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

	var filters []func(cashbook.Entry) bool

	if c.start != "" || c.end != "" {
		startStr, endStr := c.start, c.end
		if endStr == "" {
			endStr = "0d"
		}
		if startStr == "" {
			fmt.Fprintln(os.Stderr, "Error: -d without -s; give the start of the range.")
			return subcommands.ExitUsageError
		}
		start, err := cashbook.ParseDate(startStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		end, err := cashbook.ParseDate(endStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, cashbook.InRange(start, end))
	}

	if c.typ != "" {
		typ, err := cashbook.ParseEntryType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, cashbook.ByType(typ))
	}

	if c.category != "" {
		category := doc.CategoryByName(c.category, cashbook.Expense)
		if category == nil {
			category = doc.CategoryByName(c.category, cashbook.Income)
		}
		if category == nil {
			fmt.Fprintf(os.Stderr, "Error: no category named %q.\n", c.category)
			return subcommands.ExitFailure
		}
		filters = append(filters, cashbook.ByCategory(category.ID))
	}

	if c.account != "" {
		account := doc.AccountByName(c.account)
		if account == nil {
			fmt.Fprintf(os.Stderr, "Error: no account named %q.\n", c.account)
			return subcommands.ExitFailure
		}
		filters = append(filters, cashbook.ByAccount(account.ID))
	}

	var entries []cashbook.Entry
	for _, e := range doc.AllEntries(filters...) {
		entries = append(entries, e)
	}

	if c.head > 0 && len(entries) > c.head {
		entries = entries[:c.head]
	}
	if c.tail > 0 && len(entries) > c.tail {
		entries = entries[len(entries)-c.tail:]
	}

	printMarkdown(renderer.Entries(doc, entries))
	return subcommands.ExitSuccess
}
