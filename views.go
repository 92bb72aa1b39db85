package cashbook

import (
	"iter"
	"sort"
)

// This file holds the derived-view layer: pure, synchronous computations over
// an in-memory document snapshot. Nothing here touches the disk.

// AccountBalance computes the balance of an account in minor currency units:
// its initial balance plus all income entries minus all expense entries
// booked against it. An unknown account id yields 0.
func (d *Document) AccountBalance(accountID string) Amount {
	acct := d.Account(accountID)
	if acct == nil {
		return 0
	}
	balance := acct.InitialBalance
	for _, e := range d.Entries {
		if e.AccountID != accountID {
			continue
		}
		switch e.Type {
		case Income:
			balance = balance.Add(e.Amount)
		case Expense:
			balance = balance.Sub(e.Amount)
		}
	}
	return balance
}

// TotalIncome and TotalExpense sum entry amounts over an inclusive date
// range, for the summary report.
func (d *Document) TotalIncome(start, end Date) Amount {
	return d.total(Income, start, end)
}

func (d *Document) TotalExpense(start, end Date) Amount {
	return d.total(Expense, start, end)
}

func (d *Document) total(typ EntryType, start, end Date) Amount {
	var sum Amount
	for _, e := range d.AllEntries(ByType(typ), InRange(start, end)) {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// AllEntries returns an iterator over the entries, in document order (most
// recently added first). Entries must match every given predicate; with no
// predicate all entries are yielded.
func (d *Document) AllEntries(filters ...func(Entry) bool) iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range d.Entries {
			accept := true
			for _, filter := range filters {
				if !filter(e) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// ByType returns a predicate that keeps entries of the given type.
func ByType(typ EntryType) func(Entry) bool {
	return func(e Entry) bool { return e.Type == typ }
}

// ByCategory returns a predicate that keeps entries of the given category.
func ByCategory(categoryID string) func(Entry) bool {
	return func(e Entry) bool { return e.CategoryID == categoryID }
}

// ByAccount returns a predicate that keeps entries of the given account.
func ByAccount(accountID string) func(Entry) bool {
	return func(e Entry) bool { return e.AccountID == accountID }
}

// InRange returns a predicate that keeps entries dated within [start, end],
// both inclusive.
func InRange(start, end Date) func(Entry) bool {
	return func(e Entry) bool { return !e.Date.Before(start) && !e.Date.After(end) }
}

// EntriesInRange returns the entries dated within [start, end], inclusive.
func (d *Document) EntriesInRange(start, end Date) []Entry {
	var out []Entry
	for _, e := range d.AllEntries(InRange(start, end)) {
		out = append(out, e)
	}
	return out
}

// EntriesByCategory returns the entries booked against the given category.
func (d *Document) EntriesByCategory(categoryID string) []Entry {
	var out []Entry
	for _, e := range d.AllEntries(ByCategory(categoryID)) {
		out = append(out, e)
	}
	return out
}

// ExpenseCategories returns the expense categories sorted ascending by their
// sort weight. The sort is stable: ties keep the collection order.
func (d *Document) ExpenseCategories() []Category {
	return d.categoriesOf(Expense)
}

// IncomeCategories returns the income categories sorted ascending by their
// sort weight. The sort is stable: ties keep the collection order.
func (d *Document) IncomeCategories() []Category {
	return d.categoriesOf(Income)
}

func (d *Document) categoriesOf(typ EntryType) []Category {
	var out []Category
	for _, c := range d.Categories {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sort < out[j].Sort })
	return out
}

// DefaultAccount resolves the default account: the one marked IsDefault, or
// the first account when none is marked (the mark can be lost if the file is
// edited by hand). It returns nil when the document has no accounts at all.
func (d *Document) DefaultAccount() *Account {
	for i := range d.Accounts {
		if d.Accounts[i].IsDefault {
			return &d.Accounts[i]
		}
	}
	if len(d.Accounts) > 0 {
		return &d.Accounts[0]
	}
	return nil
}

// AccountByName returns the account with the given name, or nil. Names are
// how accounts are addressed from the command line.
func (d *Document) AccountByName(name string) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].Name == name {
			return &d.Accounts[i]
		}
	}
	return nil
}

// CategoryByName returns the category with the given name and type, or nil.
func (d *Document) CategoryByName(name string, typ EntryType) *Category {
	for i := range d.Categories {
		if d.Categories[i].Name == name && d.Categories[i].Type == typ {
			return &d.Categories[i]
		}
	}
	return nil
}
