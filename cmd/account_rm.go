package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type accountRmCmd struct{}

func (*accountRmCmd) Name() string     { return "account-rm" }
func (*accountRmCmd) Synopsis() string { return "delete an account" }
func (*accountRmCmd) Usage() string {
	return `cbk account-rm <name>

  Deletes an account. An account still referenced by entries cannot be
  deleted.
`
}

func (*accountRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := doc.DeleteAccount(account.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveDocument(store, doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted account %q.\n", f.Arg(0))
	return subcommands.ExitSuccess
}
