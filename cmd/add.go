package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

type addCmd struct {
	status string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an entry to a category" }
func (*addCmd) Usage() string {
	return `fintrack add [-status <status>] <category> <label> <amount>

  Adds a new entry with a freshly generated id to the given category and
  saves the dashboard.

Usage Examples:
# Add an unpaid electricity bill of 120 to the utilities.
$ fintrack add -status Unpaid utilities "Electricity" 120

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Payment status of the new entry (Unpaid, Paid, Pending). Empty means no status.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <category> <label> <amount>")
		return subcommands.ExitUsageError
	}

	category, err := fintrack.ParseCategory(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	label, amount, err := parseEntryInput(f.Arg(1), f.Arg(2))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	status, err := fintrack.ParseStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	dashboard := store.LoadDashboard()

	entry := fintrack.NewEntry(label, amount).WithStatus(status)
	dashboard, err = dashboard.Add(category, entry)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveDashboard(dashboard); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving dashboard:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %q (%s) to %s with id %s\n", label, amount, category, entry.ID)
	return subcommands.ExitSuccess
}
