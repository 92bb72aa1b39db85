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

type backupsCmd struct{}

func (*backupsCmd) Name() string     { return "backups" }
func (*backupsCmd) Synopsis() string { return "list backups, newest first" }
func (*backupsCmd) Usage() string {
	return `cbk backups

  Lists the backup files with their creation time and size, newest first.
`
}

func (*backupsCmd) SetFlags(f *flag.FlagSet) {}

func (c *backupsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	backups, err := cashbook.NewBackups(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	records, err := backups.List()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Backups(records))
	return subcommands.ExitSuccess
}
