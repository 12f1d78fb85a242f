package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	category string
	force    bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an entry" }
func (*rmCmd) Usage() string {
	return `fintrack rm [-c <category>] [-f] <id>

  Removes the entry with the given id after a confirmation prompt. Without
  -c the entry is looked up across all categories.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category holding the entry. Scans all categories when empty.")
	f.BoolVar(&c.force, "f", false, "Remove without asking for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected <id>")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store := OpenStore()
	dashboard := store.LoadDashboard()

	category, err := resolveCategory(dashboard, c.category, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !c.force {
		if !confirm(fmt.Sprintf("Remove entry %s from %s?", id, category)) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	dashboard, err = dashboard.Remove(category, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveDashboard(dashboard); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving dashboard:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %s from %s\n", id, category)
	return subcommands.ExitSuccess
}
