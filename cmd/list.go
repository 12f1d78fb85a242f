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

type listCmd struct {
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list dashboard entries" }
func (*listCmd) Usage() string {
	return `fintrack list [-c <category>]

  Lists all entries with their ids, optionally restricted to one category.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Only list this category.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	dashboard := store.LoadDashboard()
	currency := store.LoadSettings().Currency

	selected := fintrack.Categories()
	if c.category != "" {
		category, err := fintrack.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		selected = []fintrack.Category{category}
	}

	var b strings.Builder
	for _, category := range selected {
		entries := dashboard.Entries(category)
		if len(entries) == 0 && c.category == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", category.Title())
		if len(entries) == 0 {
			b.WriteString("No entries.\n\n")
			continue
		}
		b.WriteString("| ID | Label | Amount | Status |\n")
		b.WriteString("|---|---|---:|---|\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", e.ID, e.Label, e.Amount.Display(currency), e.Status)
		}
		fmt.Fprintf(&b, "| | Total | %s | |\n\n", fintrack.Sum(entries).Display(currency))
	}
	if b.Len() == 0 {
		b.WriteString("The dashboard is empty.\n")
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
