package fintrack

import "math"

// This file is the metrics engine: deterministic, pure aggregations over a
// dashboard. Nothing here is ever persisted; stats are recomputed from
// scratch after every mutation.

// DerivedStats are the aggregate figures computed from a dashboard.
type DerivedStats struct {
	Savings          Amount // sum of savings accounts
	Contributions    Amount // sum of savings contributions
	TotalSavings     Amount // savings + contributions
	Usable           Amount // sum of immediately available account balances
	TotalExpenses    Amount // sum of all expense categories
	UnpaidExpenses   Amount // expense entries not marked Paid
	RemainingBalance Amount // usable - total expenses
}

// expenseCategories lists the categories that count toward expenses.
//
// Savings contributions appear here on purpose: a contribution is money
// leaving the usable balance (an expense) that also grows total savings, so
// it is counted on both sides.
var expenseCategories = []Category{
	Loans,
	Subscriptions,
	SavingsContribution,
	Utilities,
	Plans,
	Mandatories,
	OtherExpenses,
}

// Sum totals the amounts of a sequence of entries. An empty sequence sums
// to zero.
func Sum(entries []Entry) Amount {
	var total Amount
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// ComputeStats reduces a dashboard into its derived aggregate figures.
func ComputeStats(d Dashboard) DerivedStats {
	var s DerivedStats
	s.Savings = Sum(d.SavingsAccounts)
	s.Contributions = Sum(d.SavingsContribution)
	s.TotalSavings = s.Savings.Add(s.Contributions)
	s.Usable = Sum(d.AccountBalances)
	for _, c := range expenseCategories {
		for _, e := range d.Entries(c) {
			s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
			if !e.Status.IsPaid() {
				s.UnpaidExpenses = s.UnpaidExpenses.Add(e.Amount)
			}
		}
	}
	s.RemainingBalance = s.Usable.Sub(s.TotalExpenses)
	return s
}

// Projection is one month of a projected balance trajectory.
type Projection struct {
	Month   int     // 1-based month offset from now
	Balance Amount  // projected usable balance at the end of that month
	Safety  float64 // balance as a percentage of total expenses, clamped to [0,100]
}

// ProjectMonths projects the usable balance forward assuming the current net
// flow repeats every month. The safety percentage divides by 1 instead of a
// zero total expense.
func ProjectMonths(s DerivedStats, months int) []Projection {
	projections := make([]Projection, 0, months)
	for i := 1; i <= months; i++ {
		balance := s.Usable.Add(s.RemainingBalance.MulInt(i))
		safety := balance.Ratio(s.TotalExpenses) * 100
		projections = append(projections, Projection{
			Month:   i,
			Balance: balance,
			Safety:  clamp(safety, 0, 100),
		})
	}
	return projections
}

// SafetyRatio returns usable funds as a rounded percentage of total
// expenses, the dashboard's headline liquidity-coverage heuristic. The
// result is capped at 999 to keep a near-zero expense total from producing
// an unbounded headline number.
func SafetyRatio(s DerivedStats) int {
	ratio := math.Round(s.Usable.Ratio(s.TotalExpenses) * 100)
	return int(math.Min(ratio, 999))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
