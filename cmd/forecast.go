package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

type forecastCmd struct {
	months int
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project the balance over the coming months" }
func (*forecastCmd) Usage() string {
	return `fintrack forecast [-m <months>]

  Projects the usable balance forward assuming the current net flow repeats
  every month, with a safety percentage per month.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "m", 3, "Number of months to project.")
}

func (c *forecastCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months < 1 {
		fmt.Fprintln(os.Stderr, "Error: months must be at least 1")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	dashboard := store.LoadDashboard()
	currency := store.LoadSettings().Currency

	stats := fintrack.ComputeStats(dashboard)
	projections := fintrack.ProjectMonths(stats, c.months)

	var b strings.Builder
	b.WriteString("# Balance Forecast\n\n")
	b.WriteString("| Month | Projected Balance | Safety |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, p := range projections {
		fmt.Fprintf(&b, "| +%d | %s | %.0f%% |\n", p.Month, p.Balance.Display(currency), p.Safety)
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
