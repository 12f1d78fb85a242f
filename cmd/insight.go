package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bsombilon13/FinTrack/insight"
	"github.com/google/subcommands"
)

type insightCmd struct {
	view   string
	apiKey string
	model  string
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "ask the AI to narrate the dashboard" }
func (*insightCmd) Usage() string {
	return `fintrack insight [-view overview|prediction] [-api-key <key>] [-model <model>]

  Sends the dashboard to a Gemini model and prints its narrative: an
  executive summary (overview) or a 90-day trajectory (prediction).

  The API key is read from -api-key, then GEMINI_API_KEY, then
  GOOGLE_API_KEY.
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "overview", "Kind of narrative: overview or prediction.")
	f.StringVar(&c.apiKey, "api-key", "", "Gemini API key. Overrides the environment.")
	f.StringVar(&c.model, "model", insight.DefaultModel, "Model identifier to use.")
}

func (c *insightCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := insight.ParseView(c.view)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	svc, err := insight.NewService(ctx, insight.Config{APIKey: c.apiKey, Model: c.model})
	if err != nil {
		if errors.Is(err, insight.ErrCredentialMissing) {
			fmt.Fprintln(os.Stderr, "Error: no API key configured. Set GEMINI_API_KEY or pass -api-key.")
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	dashboard := OpenStore().LoadDashboard()

	narrative, err := svc.Generate(ctx, dashboard, view)
	if err != nil {
		if errors.Is(err, insight.ErrModelNotFound) {
			fmt.Fprintf(os.Stderr, "Error: the model %q was rejected. Pick another with -model.\n", c.model)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if !svc.Accept(narrative) {
		// a newer narrative was already displayed
		return subcommands.ExitSuccess
	}

	printMarkdown(narrative.Text)
	return subcommands.ExitSuccess
}
