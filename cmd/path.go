package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type pathCmd struct{}

func (*pathCmd) Name() string     { return "path" }
func (*pathCmd) Synopsis() string { return "print the path of the data file" }
func (*pathCmd) Usage() string {
	return `cbk path

  Prints the absolute path of the live data file.
`
}

func (*pathCmd) SetFlags(f *flag.FlagSet) {}

func (c *pathCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(store.DataPath())
	return subcommands.ExitSuccess
}
