package fintrack

import (
	"fmt"

	"github.com/google/uuid"
)

// Status is the payment status of an entry.
//
// The zero value is the empty status: the entry carries no explicit status
// and is treated as not paid by the metrics engine.
type Status string

const (
	// StatusNone marks an entry without an explicit payment status.
	StatusNone Status = ""
	// StatusUnpaid marks an obligation that is still due.
	StatusUnpaid Status = "Unpaid"
	// StatusPaid marks an obligation that has been settled.
	StatusPaid Status = "Paid"
	// StatusPending marks an obligation awaiting confirmation.
	StatusPending Status = "Pending"
)

// ParseStatus parses a string into a Status. Matching is exact; the empty
// string parses to StatusNone.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNone, StatusUnpaid, StatusPaid, StatusPending:
		return Status(s), nil
	default:
		return StatusNone, fmt.Errorf("unknown status: %q", s)
	}
}

// IsPaid reports whether the status counts as settled. Anything but an
// explicit "Paid" counts as outstanding, including the empty status.
func (s Status) IsPaid() bool { return s == StatusPaid }

// Entry is a single labeled monetary amount with an optional payment status.
//
// Entries are immutable value records: an edit replaces the record rather
// than mutating it in place. The ID is an opaque unique token; an entry has
// no relationship to any other entry.
type Entry struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount Amount `json:"amount"`
	Status Status `json:"status,omitempty"`
}

// NewEntry creates an entry with a freshly generated id and no status.
func NewEntry(label string, amount Amount) Entry {
	return Entry{ID: NewEntryID(), Label: label, Amount: amount}
}

// NewEntryID generates a new opaque unique token for an entry.
func NewEntryID() string { return uuid.NewString() }

// WithStatus returns a copy of the entry with the given status.
func (e Entry) WithStatus(s Status) Entry {
	e.Status = s
	return e
}

// Equal reports whether two entries have the same id and field values.
func (e Entry) Equal(o Entry) bool {
	return e.ID == o.ID && e.Label == o.Label && e.Amount.Equal(o.Amount) && e.Status == o.Status
}

// MarshalJSON keeps the persisted key order stable across saves, so the
// store file diffs cleanly under version control.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("label", e.Label)
	w.Append("amount", e.Amount)
	w.Optional("status", string(e.Status))
	return w.MarshalJSON()
}
