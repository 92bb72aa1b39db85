package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type accountDefaultCmd struct{}

func (*accountDefaultCmd) Name() string     { return "account-default" }
func (*accountDefaultCmd) Synopsis() string { return "make an account the default one" }
func (*accountDefaultCmd) Usage() string {
	return `cbk account-default <name>

  Marks the account as the default for new entries, demoting any other.
`
}

func (*accountDefaultCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountDefaultCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account name is required.")
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

	account := doc.AccountByName(f.Arg(0))
	if account == nil {
		fmt.Fprintf(os.Stderr, "Error: no account named %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	if err := doc.SetDefaultAccount(account.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveDocument(store, doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account %q is now the default.\n", f.Arg(0))
	return subcommands.ExitSuccess
}
