// Package cmd implements the CLI application to manage a financial dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

// Environment variables honored by the application.
const (
	EnvStore = "FINTRACK_STORE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the few shared flags.

var storeDir = flag.String("store", defaultStoreDir(), "Path to the fintrack store directory")

func defaultStoreDir() string {
	if dir := os.Getenv(EnvStore); dir != "" {
		return dir
	}
	return ".fintrack"
}

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&statusCmd{},
	&listCmd{},
	&summaryCmd{},
	&forecastCmd{},
	&insightCmd{},
	&exportCmd{},
	&importCmd{},
	&themeCmd{},
	&topicCmd{},
}

// OpenStore opens the application store.
func OpenStore() *fintrack.Store {
	return fintrack.NewStore(*storeDir)
}

// parseEntryInput validates user input for a new or edited entry. Rejecting
// bad input here keeps partial entries out of the data model entirely.
func parseEntryInput(label, amount string) (string, fintrack.Amount, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", fintrack.Amount{}, fmt.Errorf("label cannot be empty")
	}
	a, err := fintrack.ParseAmount(amount)
	if err != nil {
		return "", fintrack.Amount{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if a.IsNegative() {
		return "", fintrack.Amount{}, fmt.Errorf("amount cannot be negative: %s", amount)
	}
	return label, a, nil
}

// confirm asks the user for a yes/no confirmation on the terminal. Anything
// but an explicit "y" answer cancels.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	var answer string
	fmt.Fscanln(os.Stdin, &answer)
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
