package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	fintrack "github.com/bsombilon13/FinTrack"
)

// systemInstruction is the fixed persona sent with every request.
const systemInstruction = "You are an elite financial strategist. You analyze personal finance " +
	"snapshots and give clear, direct, actionable advice in plain language. " +
	"Never invent numbers that are not in the data."

const overviewInstruction = `Write a 3-sentence executive summary of this financial snapshot covering:
1. Overall liquidity-vs-debt health.
2. The most urgent expense to deal with.
3. One actionable step to take this week.`

const predictionInstruction = `Assume every recurring cost repeats each month. Produce a 90-day financial trajectory with exactly these sections:

## Trajectory Summary
## Risk Factor
## Recommended Actions`

// BuildPrompt serializes the dashboard and wraps it with the instruction for
// the requested view. The dashboard is embedded as JSON together with its
// derived stats, so the model comments on the same numbers the user sees.
func BuildPrompt(d fintrack.Dashboard, view View) string {
	stats := fintrack.ComputeStats(d)

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		// Dashboard marshaling is total; this only guards future field types.
		data = []byte(fmt.Sprintf("(unserializable dashboard: %v)", err))
	}

	var b strings.Builder
	b.WriteString("Here is my current financial data as JSON:\n\n")
	b.Write(data)
	fmt.Fprintf(&b, "\n\nDerived figures: usable funds %s, total savings %s, total expenses %s, unpaid expenses %s, remaining balance %s, safety ratio %d%%.\n\n",
		stats.Usable, stats.TotalSavings, stats.TotalExpenses, stats.UnpaidExpenses, stats.RemainingBalance, fintrack.SafetyRatio(stats))

	if view == Prediction {
		b.WriteString(predictionInstruction)
	} else {
		b.WriteString(overviewInstruction)
	}
	return b.String()
}
