// Package renderer turns ledger data into markdown for the CLI.
package renderer

import (
	"fmt"
	"strings"

	"github.com/luoxin/cashbook"
)

// Entries renders a list of entries as a markdown table. Category and account
// ids are resolved to names against the document; dangling references are
// shown as the raw id.
func Entries(doc *cashbook.Document, entries []cashbook.Entry) string {
	if len(entries) == 0 {
		return "No entries.\n"
	}
	cur := doc.Settings.Currency

	b := &strings.Builder{}
	fmt.Fprintf(b, "| Date | Type | Amount | Category | Account | Remark |\n")
	fmt.Fprintf(b, "|---|---|---:|---|---|---|\n")
	for _, e := range entries {
		amount := e.Amount.Display(cur)
		if e.Type == cashbook.Expense {
			amount = "-" + amount
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			e.Date, e.Type, amount, categoryName(doc, e.CategoryID), accountName(doc, e.AccountID), e.Remark)
	}
	return b.String()
}

// Balances renders every account with its computed balance.
func Balances(doc *cashbook.Document) string {
	if len(doc.Accounts) == 0 {
		return "No accounts.\n"
	}
	cur := doc.Settings.Currency

	b := &strings.Builder{}
	fmt.Fprintf(b, "| Account | Type | Balance | Default |\n")
	fmt.Fprintf(b, "|---|---|---:|---|\n")
	for _, a := range doc.Accounts {
		def := ""
		if a.IsDefault {
			def = "✓"
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			a.Name, a.Type, doc.AccountBalance(a.ID).Display(cur), def)
	}
	return b.String()
}

// Summary renders income, expense and net totals over a date range.
func Summary(doc *cashbook.Document, start, end cashbook.Date) string {
	cur := doc.Settings.Currency
	income := doc.TotalIncome(start, end)
	expense := doc.TotalExpense(start, end)
	net := income.Sub(expense)

	b := &strings.Builder{}
	fmt.Fprintf(b, "# Summary %s to %s\n\n", start, end)
	fmt.Fprintf(b, "- Income: %s\n", income.Display(cur))
	fmt.Fprintf(b, "- Expense: %s\n", expense.Display(cur))
	fmt.Fprintf(b, "- Net: %s\n", net.Display(cur))
	return b.String()
}

// Categories renders the income and expense category lists, each in its sort
// order.
func Categories(doc *cashbook.Document) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Expense categories\n\n")
	categoryTable(b, doc.ExpenseCategories())
	fmt.Fprintf(b, "\n# Income categories\n\n")
	categoryTable(b, doc.IncomeCategories())
	return b.String()
}

func categoryTable(b *strings.Builder, categories []cashbook.Category) {
	if len(categories) == 0 {
		fmt.Fprintf(b, "None.\n")
		return
	}
	fmt.Fprintf(b, "| Name | Icon | Sort | ID |\n")
	fmt.Fprintf(b, "|---|---|---:|---|\n")
	for _, c := range categories {
		fmt.Fprintf(b, "| %s | %s | %d | %s |\n", c.Name, c.Icon, c.Sort, c.ID)
	}
}

// Backups renders the backup records, newest first as listed.
func Backups(records []cashbook.BackupRecord) string {
	if len(records) == 0 {
		return "No backups.\n"
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "| Created | Size | File |\n")
	fmt.Fprintf(b, "|---|---:|---|\n")
	for _, r := range records {
		fmt.Fprintf(b, "| %s | %s | %s |\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), formatSize(r.Size), r.FileName)
	}
	return b.String()
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

func categoryName(doc *cashbook.Document, id string) string {
	if c := doc.Category(id); c != nil {
		return c.Name
	}
	return id
}

func accountName(doc *cashbook.Document, id string) string {
	if a := doc.Account(id); a != nil {
		return a.Name
	}
	return id
}
