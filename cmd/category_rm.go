package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook"
)

type categoryRmCmd struct {
	typ string
}

func (*categoryRmCmd) Name() string     { return "category-rm" }
func (*categoryRmCmd) Synopsis() string { return "delete a category" }
func (*categoryRmCmd) Usage() string {
	return `cbk category-rm [-type <income|expense>] <name>

  Deletes a category. A category still referenced by entries cannot be
  deleted.
`
}

func (c *categoryRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "expense", "Category type (income, expense).")
}

func (c *categoryRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category name is required.")
		return subcommands.ExitUsageError
	}

	typ, err := cashbook.ParseEntryType(c.typ)
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

	category := doc.CategoryByName(f.Arg(0), typ)
	if category == nil {
		fmt.Fprintf(os.Stderr, "Error: no %s category named %q.\n", typ, f.Arg(0))
		return subcommands.ExitFailure
	}
	if err := doc.DeleteCategory(category.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveDocument(store, doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted category %q.\n", f.Arg(0))
	return subcommands.ExitSuccess
}
