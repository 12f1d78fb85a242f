package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

// summaryCmd displays the dashboard's derived figures.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the derived dashboard figures" }
func (*summaryCmd) Usage() string {
	return `fintrack summary

  Displays the derived figures of the dashboard: usable funds, savings,
  expenses, remaining balance and the safety ratio.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	dashboard := store.LoadDashboard()
	currency := store.LoadSettings().Currency

	stats := fintrack.ComputeStats(dashboard)

	var b strings.Builder
	fmt.Fprintf(&b, "# Dashboard Summary\n\n")
	fmt.Fprintf(&b, "Safety ratio: **%d%%** of total expenses covered by usable funds.\n\n", fintrack.SafetyRatio(stats))
	b.WriteString("| Figure | Amount |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| Usable funds | %s |\n", stats.Usable.Display(currency))
	fmt.Fprintf(&b, "| Savings | %s |\n", stats.Savings.Display(currency))
	fmt.Fprintf(&b, "| Contributions | %s |\n", stats.Contributions.Display(currency))
	fmt.Fprintf(&b, "| Total savings | %s |\n", stats.TotalSavings.Display(currency))
	fmt.Fprintf(&b, "| Total expenses | %s |\n", stats.TotalExpenses.Display(currency))
	fmt.Fprintf(&b, "| Unpaid expenses | %s |\n", stats.UnpaidExpenses.Display(currency))
	fmt.Fprintf(&b, "| Remaining balance | %s |\n", stats.RemainingBalance.Display(currency))

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
