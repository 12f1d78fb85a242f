package fintrack

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file contains code to persist the dashboard in a way that is still
// human-readable and git-friendly: a single JSON document whose category
// keys always appear in canonical order.

// MarshalJSON encodes the dashboard with its categories in canonical order.
// Empty categories are encoded as empty arrays, never null, so the persisted
// document always shows all ten buckets.
func (d Dashboard) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, c := range categories {
		list := d.Entries(c)
		if list == nil {
			list = []Entry{}
		}
		w.Append(string(c), list)
	}
	return w.MarshalJSON()
}

// EncodeDashboard writes the dashboard to w as indented JSON.
func EncodeDashboard(w io.Writer, d Dashboard) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal dashboard: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write dashboard: %w", err)
	}
	return nil
}

// DecodeDashboard reads a dashboard from the persisted JSON format.
func DecodeDashboard(r io.Reader) (Dashboard, error) {
	var d Dashboard
	data, err := io.ReadAll(r)
	if err != nil {
		return d, fmt.Errorf("cannot read dashboard: %w", err)
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("cannot parse dashboard: %w", err)
	}
	return d, nil
}

// DefaultDashboard returns the built-in starter dataset used when no store
// exists yet, or when the stored dashboard cannot be read. Entry ids are
// freshly generated on every call.
func DefaultDashboard() Dashboard {
	return Dashboard{
		SavingsAccounts: []Entry{
			NewEntry("Emergency Fund", A(2500)),
		},
		AccountBalances: []Entry{
			NewEntry("Checking Account", A(1850)),
			NewEntry("E-Wallet", A(320)),
		},
		Receivables: []Entry{},
		Loans: []Entry{
			NewEntry("Car Loan", A(450)).WithStatus(StatusUnpaid),
		},
		Subscriptions: []Entry{
			NewEntry("Netflix", A(15.49)),
			NewEntry("Spotify", A(10.99)),
		},
		SavingsContribution: []Entry{
			NewEntry("Monthly Savings", A(200)),
		},
		Utilities: []Entry{
			NewEntry("Electricity", A(120)).WithStatus(StatusUnpaid),
			NewEntry("Internet", A(60)),
		},
		Plans: []Entry{
			NewEntry("Phone Plan", A(45)),
		},
		Mandatories: []Entry{
			NewEntry("Rent", A(950)).WithStatus(StatusUnpaid),
		},
		OtherExpenses: []Entry{
			NewEntry("Groceries", A(400)),
		},
	}
}
