package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

type editCmd struct {
	category string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace the label and amount of an entry" }
func (*editCmd) Usage() string {
	return `fintrack edit [-c <category>] <id> <label> <amount>

  Replaces the label and amount of the entry with the given id, keeping its
  status. Without -c the entry is looked up across all categories.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category holding the entry. Scans all categories when empty.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <id> <label> <amount>")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	label, amount, err := parseEntryInput(f.Arg(1), f.Arg(2))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	dashboard := store.LoadDashboard()

	category, err := resolveCategory(dashboard, c.category, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	dashboard, err = dashboard.Update(category, id, label, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveDashboard(dashboard); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving dashboard:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s in %s\n", id, category)
	return subcommands.ExitSuccess
}

// resolveCategory returns the category naming an entry: the explicit one if
// given, otherwise the one found by scanning all categories for the id.
func resolveCategory(d fintrack.Dashboard, category, id string) (fintrack.Category, error) {
	if category != "" {
		return fintrack.ParseCategory(category)
	}
	c, _, ok := d.FindByID(id)
	if !ok {
		return "", fmt.Errorf("no entry with id %q in any category", id)
	}
	return c, nil
}
