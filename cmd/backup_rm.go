package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook"
)

type backupRmCmd struct{}

func (*backupRmCmd) Name() string     { return "backup-rm" }
func (*backupRmCmd) Synopsis() string { return "delete backup files" }
func (*backupRmCmd) Usage() string {
	return `cbk backup-rm <backup-path>...

  Deletes the given backup files. Missing files are silently ignored.
`
}

func (*backupRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *backupRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one backup path is required.")
		return subcommands.ExitUsageError
	}

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

	for _, path := range f.Args() {
		if err := backups.Delete(path); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Deleted %d backups.\n", f.NArg())
	return subcommands.ExitSuccess
}
