package fintrack

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to move data in and out of the tracker: the
// CSV export of all entries, and the import of dumps saved by the original
// browser-based version of the app.

// ExportFilename returns the conventional name for a CSV export made on the
// given day, e.g. "fintrack-2025-07-14.csv".
func ExportFilename(on time.Time) string {
	return fmt.Sprintf("fintrack-%s.csv", on.Format("2006-01-02"))
}

// ExportCSV writes every entry of every category to w as CSV with the
// columns Category, Label, Amount, Status. Quoting and escaping follow
// RFC 4180 via encoding/csv.
func ExportCSV(w io.Writer, d Dashboard) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Category", "Label", "Amount", "Status"}); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for c, e := range d.All() {
		record := []string{c.Title(), e.Label, e.Amount.String(), string(e.Status)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record for %q: %w", e.Label, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot flush CSV: %w", err)
	}
	return nil
}

// ImportBrowserDump reads a dashboard from a JSON dump of the original web
// app's local storage.
//
// The dump is one JSON object with the category names as keys. Categories
// absent from the dump import as empty; entry ids may be numbers (the web
// app used timestamps) and are converted to strings, and entries without an
// id get a freshly generated one.
func ImportBrowserDump(r io.Reader) (Dashboard, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return Dashboard{}, fmt.Errorf("cannot parse browser dump: %w", err)
	}

	var d Dashboard
	for _, c := range categories {
		jval, err := jsonpath.Get("$."+string(c), jobj)
		if err != nil {
			// category not present in this dump
			d = d.withEntries(c, []Entry{})
			continue
		}
		jlist, ok := jval.([]any)
		if !ok {
			return Dashboard{}, fmt.Errorf("cannot import category %q: not a list", c)
		}
		list := make([]Entry, 0, len(jlist))
		for i, jentry := range jlist {
			e, err := importEntry(jentry)
			if err != nil {
				return Dashboard{}, fmt.Errorf("cannot import entry %d of category %q: %w", i, c, err)
			}
			list = append(list, e)
		}
		d = d.withEntries(c, list)
	}
	return d, nil
}

// importEntry converts one decoded JSON object from a browser dump into an Entry.
func importEntry(jentry any) (Entry, error) {
	jmap, ok := jentry.(map[string]any)
	if !ok {
		return Entry{}, fmt.Errorf("not an object: %v", jentry)
	}

	var e Entry
	switch id := jmap["id"].(type) {
	case string:
		e.ID = id
	case float64:
		e.ID = fmt.Sprintf("%.0f", id)
	case nil:
		e.ID = NewEntryID()
	default:
		return Entry{}, fmt.Errorf("id must be a string or a number, got %T", id)
	}

	label, ok := jmap["label"].(string)
	if !ok {
		return Entry{}, fmt.Errorf("label must be a string, got %T", jmap["label"])
	}
	e.Label = label

	amount, ok := jmap["amount"].(float64)
	if !ok {
		return Entry{}, fmt.Errorf("amount must be a number, got %T", jmap["amount"])
	}
	e.Amount = A(amount)

	if jstatus, exists := jmap["status"]; exists {
		text, ok := jstatus.(string)
		if !ok {
			return Entry{}, fmt.Errorf("status must be a string, got %T", jstatus)
		}
		status, err := ParseStatus(text)
		if err != nil {
			return Entry{}, err
		}
		e.Status = status
	}
	return e, nil
}
