package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
)

// themes accepted for terminal rendering; they name glamour standard styles.
var themes = []string{"ascii", "auto", "dark", "dracula", "light", "notty", "pink"}

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or change the rendering theme" }
func (*themeCmd) Usage() string {
	return `fintrack theme [<name>]

  Without argument, prints the current theme. With an argument, persists the
  given theme and uses it for all markdown output.
`
}

func (*themeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	settings := store.LoadSettings()

	if f.NArg() == 0 {
		fmt.Println(settings.Theme)
		return subcommands.ExitSuccess
	}

	name := f.Arg(0)
	if !slices.Contains(themes, name) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q, pick one of %v\n", name, themes)
		return subcommands.ExitUsageError
	}

	settings.Theme = name
	if err := store.SaveSettings(settings); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving settings:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Theme set to %s\n", name)
	return subcommands.ExitSuccess
}
