package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

type statusCmd struct {
	category string
	force    bool
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "change the payment status of an entry" }
func (*statusCmd) Usage() string {
	return `fintrack status [-c <category>] [-f] <id> <Unpaid|Paid|Pending|none>

  Sets the payment status of the entry with the given id. "none" clears the
  status. Without -c the entry is looked up across all categories.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category holding the entry. Scans all categories when empty.")
	f.BoolVar(&c.force, "f", false, "Change without asking for confirmation.")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <id> <status>")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	text := f.Arg(1)
	if text == "none" {
		text = ""
	}
	status, err := fintrack.ParseStatus(text)
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

	if !c.force {
		if !confirm(fmt.Sprintf("Mark entry %s in %s as %q?", id, category, status)) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	dashboard, err = dashboard.SetStatus(category, id, status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveDashboard(dashboard); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving dashboard:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Marked %s in %s as %q\n", id, category, status)
	return subcommands.ExitSuccess
}
