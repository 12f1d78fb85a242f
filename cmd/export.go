package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all entries as CSV" }
func (*exportCmd) Usage() string {
	return `fintrack export [-o <file>]

  Writes every entry of every category as CSV with the columns
  Category,Label,Amount,Status. The default file name carries the current
  date; use "-o -" to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to fintrack-<date>.csv, \"-\" for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dashboard := OpenStore().LoadDashboard()

	if c.output == "-" {
		if err := fintrack.ExportCSV(os.Stdout, dashboard); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	filename := c.output
	if filename == "" {
		filename = fintrack.ExportFilename(time.Now())
	}
	f, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := fintrack.ExportCSV(f, dashboard); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d entries to %s\n", dashboard.Len(), filename)
	return subcommands.ExitSuccess
}
