package renderer

import (
	"strings"
	"testing"

	"github.com/luoxin/cashbook"
)

func fixture(t *testing.T) *cashbook.Document {
	t.Helper()
	doc := cashbook.NewDefaultDocument()
	doc.Settings.Currency = "USD" // fixed symbol and grouping for the assertions
	food := doc.CategoryByName("餐饮", cashbook.Expense)
	salary := doc.CategoryByName("工资", cashbook.Income)

	for _, seed := range []struct {
		typ    cashbook.EntryType
		amount cashbook.Amount
		catID  string
		remark string
	}{
		{cashbook.Income, 500000, salary.ID, "八月工资"},
		{cashbook.Expense, 3500, food.ID, "午饭"},
	} {
		e, err := cashbook.NewEntry(seed.typ, seed.amount, seed.catID, doc.Accounts[0].ID, cashbook.NewDate(2026, 8, 28))
		if err != nil {
			t.Fatalf("NewEntry() error = %v", err)
		}
		e.Remark = seed.remark
		if err := doc.AddEntry(e); err != nil {
			t.Fatalf("AddEntry() error = %v", err)
		}
	}
	return doc
}

func TestEntries(t *testing.T) {
	doc := fixture(t)
	got := Entries(doc, doc.Entries)

	for _, want := range []string{"2026-08-28", "餐饮", "工资", "现金", "午饭", "-$35.00", "$5,000.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Entries() misses %q:\n%s", want, got)
		}
	}
	if got := Entries(doc, nil); got != "No entries.\n" {
		t.Errorf("Entries(empty) = %q", got)
	}
}

func TestEntriesDanglingReference(t *testing.T) {
	doc := fixture(t)
	doc.Entries[0].CategoryID = "gone"
	got := Entries(doc, doc.Entries)
	if !strings.Contains(got, "gone") {
		t.Errorf("Entries() hides a dangling category id:\n%s", got)
	}
}

func TestBalances(t *testing.T) {
	doc := fixture(t)
	got := Balances(doc)

	// 5000.00 income - 35.00 expense on the cash account.
	for _, want := range []string{"现金", "$4,965.00", "✓"} {
		if !strings.Contains(got, want) {
			t.Errorf("Balances() misses %q:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	doc := fixture(t)
	got := Summary(doc, cashbook.NewDate(2026, 8, 1), cashbook.NewDate(2026, 8, 31))

	for _, want := range []string{"Income: $5,000.00", "Expense: $35.00", "Net: $4,965.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() misses %q:\n%s", want, got)
		}
	}
}

func TestCategories(t *testing.T) {
	doc := cashbook.NewDefaultDocument()
	got := Categories(doc)

	if !strings.Contains(got, "# Expense categories") || !strings.Contains(got, "# Income categories") {
		t.Fatalf("Categories() misses a section:\n%s", got)
	}
	// Sorted sections: 餐饮 leads the expenses, 工资 the incomes.
	if strings.Index(got, "餐饮") > strings.Index(got, "交通") {
		t.Errorf("expense categories out of order:\n%s", got)
	}
}

func TestBackups(t *testing.T) {
	records := []cashbook.BackupRecord{
		{FileName: "ledger-backup-a.json", Size: 2048},
	}
	got := Backups(records)
	if !strings.Contains(got, "ledger-backup-a.json") || !strings.Contains(got, "2.0 KiB") {
		t.Errorf("Backups() = %q", got)
	}
	if got := Backups(nil); got != "No backups.\n" {
		t.Errorf("Backups(empty) = %q", got)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.in); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
