package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

type importCmd struct {
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a dump of the original browser app" }
func (*importCmd) Usage() string {
	return `fintrack import [-f] <file>

  Replaces the current dashboard with the content of a JSON dump saved from
  the browser-based tracker's local storage.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Replace the dashboard without asking for confirmation.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected <file>")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	dashboard, err := fintrack.ImportBrowserDump(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !c.force {
		if !confirm(fmt.Sprintf("Replace the current dashboard with the %d entries of %q?", dashboard.Len(), filename)) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	if err := OpenStore().SaveDashboard(dashboard); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving dashboard:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d entries from %s\n", dashboard.Len(), filename)
	return subcommands.ExitSuccess
}
