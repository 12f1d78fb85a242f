package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fintrack "github.com/bsombilon13/FinTrack"
	"github.com/google/subcommands"
)

// withTempStore points the global store flag at a temp directory holding an
// empty dashboard, and restores it afterwards.
func withTempStore(t *testing.T) *fintrack.Store {
	t.Helper()
	dir := t.TempDir()

	store := fintrack.NewStore(dir)
	if err := store.SaveDashboard(fintrack.Dashboard{}); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	old := storeDir
	storeDir = &dir
	t.Cleanup(func() { storeDir = old })
	return store
}

func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse args %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddCmd(t *testing.T) {
	store := withTempStore(t)

	status := execute(t, &addCmd{}, "utilities", "Water", "80")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", status)
	}

	d := store.LoadDashboard()
	if len(d.Utilities) != 1 {
		t.Fatalf("utilities has %d entries, want 1", len(d.Utilities))
	}
	got := d.Utilities[0]
	if got.Label != "Water" || !got.Amount.Equal(fintrack.A(80)) || got.ID == "" {
		t.Errorf("added entry = %+v", got)
	}
}

func TestAddCmd_RejectsBadInput(t *testing.T) {
	store := withTempStore(t)

	testCases := []struct {
		name string
		args []string
	}{
		{"unknown category", []string{"gadgets", "Thing", "10"}},
		{"empty label", []string{"utilities", "  ", "10"}},
		{"negative amount", []string{"utilities", "Water", "-10"}},
		{"non numeric amount", []string{"utilities", "Water", "ten"}},
		{"unknown status", []string{"-status", "Overdue", "utilities", "Water", "10"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := execute(t, &addCmd{}, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("add %v exited with %v, want usage error", tc.args, status)
			}
		})
	}

	// no partial entry ever reached the data model
	if got := store.LoadDashboard().Len(); got != 0 {
		t.Errorf("dashboard has %d entries after rejected inputs, want 0", got)
	}
}

func TestStatusCmd(t *testing.T) {
	store := withTempStore(t)
	d := fintrack.Dashboard{
		Loans: []fintrack.Entry{{ID: "l1", Label: "Car Loan", Amount: fintrack.A(450), Status: fintrack.StatusUnpaid}},
	}
	if err := store.SaveDashboard(d); err != nil {
		t.Fatal(err)
	}

	// -f skips the interactive confirmation; the id is found by scanning
	if status := execute(t, &statusCmd{}, "-f", "l1", "Paid"); status != subcommands.ExitSuccess {
		t.Fatalf("status exited with %v", status)
	}

	got := store.LoadDashboard().Loans[0].Status
	if got != fintrack.StatusPaid {
		t.Errorf("status = %q, want Paid", got)
	}
}

func TestEditCmd_ScansCategoriesWithoutFlag(t *testing.T) {
	store := withTempStore(t)
	d := fintrack.Dashboard{
		Subscriptions: []fintrack.Entry{{ID: "s1", Label: "Netflix", Amount: fintrack.A(15.49)}},
	}
	if err := store.SaveDashboard(d); err != nil {
		t.Fatal(err)
	}

	if status := execute(t, &editCmd{}, "s1", "Netflix Premium", "22.99"); status != subcommands.ExitSuccess {
		t.Fatalf("edit exited with %v", status)
	}

	got := store.LoadDashboard().Subscriptions[0]
	if got.Label != "Netflix Premium" || !got.Amount.Equal(fintrack.A(22.99)) {
		t.Errorf("edited entry = %+v", got)
	}
}

func TestExportCmd(t *testing.T) {
	store := withTempStore(t)
	d := fintrack.Dashboard{
		Utilities: []fintrack.Entry{{ID: "u1", Label: "Water", Amount: fintrack.A(80)}},
	}
	if err := store.SaveDashboard(d); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(t.TempDir(), "out.csv")
	if status := execute(t, &exportCmd{}, "-o", output); status != subcommands.ExitSuccess {
		t.Fatalf("export exited with %v", status)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if !strings.Contains(string(data), "Utilities,Water,80,") {
		t.Errorf("export content = %q", data)
	}
}

func TestImportCmd(t *testing.T) {
	store := withTempStore(t)

	dump := filepath.Join(t.TempDir(), "dump.json")
	content := `{"accountBalances": [{"id": "a1", "label": "Checking", "amount": 8500}]}`
	if err := os.WriteFile(dump, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if status := execute(t, &importCmd{}, "-f", dump); status != subcommands.ExitSuccess {
		t.Fatalf("import exited with %v", status)
	}

	d := store.LoadDashboard()
	if len(d.AccountBalances) != 1 || d.AccountBalances[0].Label != "Checking" {
		t.Errorf("imported dashboard = %+v", d)
	}
}

func TestParseEntryInput(t *testing.T) {
	label, amount, err := parseEntryInput("  Water  ", "80.5")
	if err != nil {
		t.Fatalf("parseEntryInput() failed: %v", err)
	}
	if label != "Water" {
		t.Errorf("label = %q, want trimmed %q", label, "Water")
	}
	if !amount.Equal(fintrack.A(80.5)) {
		t.Errorf("amount = %s, want 80.5", amount)
	}
}
