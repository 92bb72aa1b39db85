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

type editCmd struct {
	id       string
	typ      string
	amount   string
	category string
	account  string
	date     string
	time     string
	remark   string
	tags     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of an existing entry" }
func (*editCmd) Usage() string {
	return `cbk edit -id <entry-id> [-amount <amount>] [-type <income|expense>] [-category <name>] [-account <name>] [-d <date>] [-t <HH:MM>] [-remark <text>] [-tags <a,b>]

  Updates the given fields of an entry; unset flags leave the field alone.
  The entry id and creation time never change.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the entry to edit.")
	f.StringVar(&c.typ, "type", "", "New entry type (income, expense).")
	f.StringVar(&c.amount, "amount", "", "New amount in major currency units.")
	f.StringVar(&c.category, "category", "", "New category name.")
	f.StringVar(&c.account, "account", "", "New account name.")
	f.StringVar(&c.date, "d", "", "New entry date.")
	f.StringVar(&c.time, "t", "", "New entry time, HH:MM.")
	f.StringVar(&c.remark, "remark", "", "New remark.")
	f.StringVar(&c.tags, "tags", "", "New comma-separated tags.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
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
	entry := doc.Entry(c.id)
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown entry %q.\n", c.id)
		return subcommands.ExitFailure
	}

	var update cashbook.EntryUpdate
	// The type is resolved first: a category change must be checked against
	// the new type, and flag.Visit walks flags in lexical order.
	if c.typ != "" {
		typ, err := cashbook.ParseEntryType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		update.Type = &typ
	}
	// Only the flags the user actually set become part of the update.
	var badFlag error
	f.Visit(func(fl *flag.Flag) {
		if badFlag != nil {
			return
		}
		switch fl.Name {
		case "amount":
			amount, err := cashbook.ParseAmount(c.amount, doc.Settings.Currency)
			if err != nil {
				badFlag = err
				return
			}
			update.Amount = &amount
		case "category":
			typ := entry.Type
			if update.Type != nil {
				typ = *update.Type
			}
			category := doc.CategoryByName(c.category, typ)
			if category == nil {
				badFlag = fmt.Errorf("no %s category named %q", typ, c.category)
				return
			}
			update.CategoryID = &category.ID
		case "account":
			account := doc.AccountByName(c.account)
			if account == nil {
				badFlag = fmt.Errorf("no account named %q", c.account)
				return
			}
			update.AccountID = &account.ID
		case "d":
			date, err := cashbook.ParseDate(c.date)
			if err != nil {
				badFlag = err
				return
			}
			update.Date = &date
		case "t":
			update.Time = &c.time
		case "remark":
			update.Remark = &c.remark
		case "tags":
			tags := strings.Split(c.tags, ",")
			if c.tags == "" {
				tags = nil
			}
			update.Tags = &tags
		}
	})
	if badFlag != nil {
		fmt.Fprintln(os.Stderr, "Error:", badFlag)
		return subcommands.ExitFailure
	}

	if err := doc.UpdateEntry(c.id, update); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveDocument(store, doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated entry %s.\n", c.id)
	return subcommands.ExitSuccess
}
