package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook"
)

type accountAddCmd struct {
	typ       string
	balance   string
	icon      string
	color     string
	remark    string
	isDefault bool
}

func (*accountAddCmd) Name() string     { return "account-add" }
func (*accountAddCmd) Synopsis() string { return "create an account" }
func (*accountAddCmd) Usage() string {
	return `cbk account-add [-type <kind>] [-balance <amount>] [-icon <name>] [-color <#rrggbb>] [-remark <text>] [-default] <name>

  Creates an account. The kind is one of cash, debit_card, credit_card,
  e_wallet or other. The initial balance is a decimal in major units and may
  be negative for credit accounts.
`
}

func (c *accountAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "cash", "Account kind (cash, debit_card, credit_card, e_wallet, other).")
	f.StringVar(&c.balance, "balance", "0", "Initial balance in major currency units.")
	f.StringVar(&c.icon, "icon", "", "Icon name.")
	f.StringVar(&c.color, "color", "", "Display color, #rrggbb.")
	f.StringVar(&c.remark, "remark", "", "Free-form remark.")
	f.BoolVar(&c.isDefault, "default", false, "Make this the default account.")
}

func (c *accountAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account name is required.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	typ, err := cashbook.ParseAccountType(c.typ)
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
	if doc.AccountByName(name) != nil {
		fmt.Fprintf(os.Stderr, "Error: an account named %q already exists.\n", name)
		return subcommands.ExitFailure
	}

	balance, err := cashbook.ParseAmount(c.balance, doc.Settings.Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	account, err := cashbook.NewAccount(name, typ, balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	account.Icon = c.icon
	account.Color = c.color
	account.Remark = c.remark
	account.IsDefault = c.isDefault

	if err := doc.AddAccount(account); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveDocument(store, doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %q (%s).\n", name, account.ID)
	return subcommands.ExitSuccess
}
