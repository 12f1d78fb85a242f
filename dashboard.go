package fintrack

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Category identifies one of the ten fixed buckets partitioning entries.
//
// Category membership is structural: it is determined by which dashboard list
// holds the entry, not by a field on the entry itself.
type Category string

const (
	SavingsAccounts     Category = "savingsAccounts"
	AccountBalances     Category = "accountBalances"
	Receivables         Category = "receivables"
	Loans               Category = "loans"
	Subscriptions       Category = "subscriptions"
	SavingsContribution Category = "savingsContribution"
	Utilities           Category = "utilities"
	Plans               Category = "plans"
	Mandatories         Category = "mandatories"
	OtherExpenses       Category = "otherExpenses"
)

// categories lists all categories in their canonical dashboard order.
var categories = []Category{
	SavingsAccounts,
	AccountBalances,
	Receivables,
	Loans,
	Subscriptions,
	SavingsContribution,
	Utilities,
	Plans,
	Mandatories,
	OtherExpenses,
}

// Categories returns all categories in their canonical dashboard order.
func Categories() []Category { return slices.Clone(categories) }

// ParseCategory parses a category name. Matching is case-insensitive so that
// "loans" and "Loans" both resolve to the loans bucket.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Title returns a human readable name for the category, e.g. "Savings Accounts".
func (c Category) Title() string {
	var b strings.Builder
	for i, r := range string(c) {
		if i == 0 {
			b.WriteRune(r - 'a' + 'A')
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ErrEntryNotFound is returned by reducers when no entry matches the given id.
var ErrEntryNotFound = errors.New("entry not found")

// Dashboard is the complete financial snapshot: ten ordered lists of entries.
//
// A Dashboard is treated as an immutable value. Reducers return a new
// Dashboard sharing the untouched category lists with the old one; callers
// must never mutate an entry list in place.
type Dashboard struct {
	SavingsAccounts     []Entry `json:"savingsAccounts"`
	AccountBalances     []Entry `json:"accountBalances"`
	Receivables         []Entry `json:"receivables"`
	Loans               []Entry `json:"loans"`
	Subscriptions       []Entry `json:"subscriptions"`
	SavingsContribution []Entry `json:"savingsContribution"`
	Utilities           []Entry `json:"utilities"`
	Plans               []Entry `json:"plans"`
	Mandatories         []Entry `json:"mandatories"`
	OtherExpenses       []Entry `json:"otherExpenses"`
}

// Entries returns the entry list of the given category.
func (d Dashboard) Entries(c Category) []Entry {
	switch c {
	case SavingsAccounts:
		return d.SavingsAccounts
	case AccountBalances:
		return d.AccountBalances
	case Receivables:
		return d.Receivables
	case Loans:
		return d.Loans
	case Subscriptions:
		return d.Subscriptions
	case SavingsContribution:
		return d.SavingsContribution
	case Utilities:
		return d.Utilities
	case Plans:
		return d.Plans
	case Mandatories:
		return d.Mandatories
	case OtherExpenses:
		return d.OtherExpenses
	default:
		return nil
	}
}

// withEntries returns a copy of the dashboard where the given category holds
// the given list.
func (d Dashboard) withEntries(c Category, list []Entry) Dashboard {
	switch c {
	case SavingsAccounts:
		d.SavingsAccounts = list
	case AccountBalances:
		d.AccountBalances = list
	case Receivables:
		d.Receivables = list
	case Loans:
		d.Loans = list
	case Subscriptions:
		d.Subscriptions = list
	case SavingsContribution:
		d.SavingsContribution = list
	case Utilities:
		d.Utilities = list
	case Plans:
		d.Plans = list
	case Mandatories:
		d.Mandatories = list
	case OtherExpenses:
		d.OtherExpenses = list
	}
	return d
}

// All iterates over every entry of the dashboard in canonical category order.
func (d Dashboard) All() iter.Seq2[Category, Entry] {
	return func(yield func(Category, Entry) bool) {
		for _, c := range categories {
			for _, e := range d.Entries(c) {
				if !yield(c, e) {
					return
				}
			}
		}
	}
}

// Len returns the total number of entries across all categories.
func (d Dashboard) Len() int {
	n := 0
	for _, c := range categories {
		n += len(d.Entries(c))
	}
	return n
}

// Equal reports whether two dashboards hold the same entries in the same
// order in every category.
func (d Dashboard) Equal(o Dashboard) bool {
	for _, c := range categories {
		if !slices.EqualFunc(d.Entries(c), o.Entries(c), Entry.Equal) {
			return false
		}
	}
	return true
}

// Add appends a new entry to the given category and returns the new dashboard.
func (d Dashboard) Add(c Category, e Entry) (Dashboard, error) {
	c, err := ParseCategory(string(c))
	if err != nil {
		return d, err
	}
	list := d.Entries(c)
	updated := make([]Entry, 0, len(list)+1)
	updated = append(updated, list...)
	updated = append(updated, e)
	return d.withEntries(c, updated), nil
}

// Update replaces the label and amount of the entry with the given id in the
// given category. The entry's status is preserved.
func (d Dashboard) Update(c Category, id, label string, amount Amount) (Dashboard, error) {
	return d.replace(c, id, func(e Entry) Entry {
		e.Label = label
		e.Amount = amount
		return e
	})
}

// SetStatus replaces the status of the entry with the given id in the given
// category.
func (d Dashboard) SetStatus(c Category, id string, s Status) (Dashboard, error) {
	return d.replace(c, id, func(e Entry) Entry { return e.WithStatus(s) })
}

// Remove deletes the entry with the given id from the given category.
func (d Dashboard) Remove(c Category, id string) (Dashboard, error) {
	c, err := ParseCategory(string(c))
	if err != nil {
		return d, err
	}
	list := d.Entries(c)
	updated := slices.DeleteFunc(slices.Clone(list), func(e Entry) bool { return e.ID == id })
	if len(updated) == len(list) {
		return d, fmt.Errorf("cannot remove %q from %s: %w", id, c, ErrEntryNotFound)
	}
	return d.withEntries(c, updated), nil
}

// replace applies fn to the entry with the given id, replacing the record.
func (d Dashboard) replace(c Category, id string, fn func(Entry) Entry) (Dashboard, error) {
	c, err := ParseCategory(string(c))
	if err != nil {
		return d, err
	}
	list := d.Entries(c)
	i := slices.IndexFunc(list, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return d, fmt.Errorf("cannot update %q in %s: %w", id, c, ErrEntryNotFound)
	}
	updated := slices.Clone(list)
	updated[i] = fn(list[i])
	return d.withEntries(c, updated), nil
}

// FindByID scans every category for an entry with the given id.
//
// This is a compatibility shim for callers that only know an entry id; new
// code should track the (category, id) pair and address entries directly.
func (d Dashboard) FindByID(id string) (Category, Entry, bool) {
	for c, e := range d.All() {
		if e.ID == id {
			return c, e, true
		}
	}
	return "", Entry{}, false
}
