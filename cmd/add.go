package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook"
)

type addCmd struct {
	typ      string
	amount   string
	category string
	account  string
	date     string
	time     string
	remark   string
	tags     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense entry" }
func (*addCmd) Usage() string {
	return `cbk add -amount <amount> -category <name> [-type <income|expense>] [-account <name>] [-d <date>] [-t <HH:MM>] [-remark <text>] [-tags <a,b>]

  Records a new entry. The amount is a decimal in major currency units
  (e.g. 12.50); the account defaults to the default account.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "expense", "Entry type (income, expense).")
	f.StringVar(&c.amount, "amount", "", "Amount in major currency units, e.g. 12.50.")
	f.StringVar(&c.category, "category", "", "Category name.")
	f.StringVar(&c.account, "account", "", "Account name. Defaults to the default account.")
	f.StringVar(&c.date, "d", "0d", "Entry date. See 'cbk topic dates' for supported formats.")
	f.StringVar(&c.time, "t", "", "Entry time, HH:MM.")
	f.StringVar(&c.remark, "remark", "", "Free-form remark.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount and -category are required.")
		return subcommands.ExitUsageError
	}

	typ, err := cashbook.ParseEntryType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	date, err := cashbook.ParseDate(c.date)
	if err != nil {
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

	amount, err := cashbook.ParseAmount(c.amount, doc.Settings.Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	category := doc.CategoryByName(c.category, typ)
	if category == nil {
		fmt.Fprintf(os.Stderr, "Error: no %s category named %q.\n", typ, c.category)
		return subcommands.ExitFailure
	}

	account := doc.DefaultAccount()
	if c.account != "" {
		account = doc.AccountByName(c.account)
	}
	if account == nil {
		fmt.Fprintf(os.Stderr, "Error: no account named %q.\n", c.account)
		return subcommands.ExitFailure
	}

	entry, err := cashbook.NewEntry(typ, amount, category.ID, account.ID, date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	entry.Time = c.time
	entry.Remark = c.remark
	if c.tags != "" {
		entry.Tags = strings.Split(c.tags, ",")
	}

	if err := doc.AddEntry(entry); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveDocument(store, doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s in %s (%s).\n", typ, amount.Display(doc.Settings.Currency), category.Name, entry.ID)
	return subcommands.ExitSuccess
}
