package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook"
)

type categoryAddCmd struct {
	typ    string
	sort   int
	icon   string
	color  string
	parent string
}

func (*categoryAddCmd) Name() string     { return "category-add" }
func (*categoryAddCmd) Synopsis() string { return "create a category" }
func (*categoryAddCmd) Usage() string {
	return `cbk category-add [-type <income|expense>] [-sort <n>] [-icon <name>] [-color <#rrggbb>] [-parent <name>] <name>

  Creates a category. Categories with the same sort weight keep their
  creation order.
`
}

func (c *categoryAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "expense", "Category type (income, expense).")
	f.IntVar(&c.sort, "sort", 50, "Sort weight; lower sorts first.")
	f.StringVar(&c.icon, "icon", "", "Icon name.")
	f.StringVar(&c.color, "color", "", "Display color, #rrggbb.")
	f.StringVar(&c.parent, "parent", "", "Parent category name, for a sub-category.")
}

func (c *categoryAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category name is required.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

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
	if doc.CategoryByName(name, typ) != nil {
		fmt.Fprintf(os.Stderr, "Error: a %s category named %q already exists.\n", typ, name)
		return subcommands.ExitFailure
	}

	category, err := cashbook.NewCategory(name, typ, c.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	category.Icon = c.icon
	category.Color = c.color
	if c.parent != "" {
		parent := doc.CategoryByName(c.parent, typ)
		if parent == nil {
			fmt.Fprintf(os.Stderr, "Error: no %s category named %q.\n", typ, c.parent)
			return subcommands.ExitFailure
		}
		category.ParentID = parent.ID
	}

	if err := doc.AddCategory(category); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveDocument(store, doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created %s category %q (%s).\n", typ, name, category.ID)
	return subcommands.ExitSuccess
}
