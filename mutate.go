package cashbook

import (
	"fmt"
	"slices"
	"time"
)

// This file is the mutation layer: every write to the in-memory document goes
// through one of these methods. They are the only place where referential
// integrity between entries and their category/account, and the uniqueness of
// the default account, are enforced. Each entity documents which fields are
// mutable; id and createdAt are immutable after creation.

// AddEntry validates the entry and inserts it at the front of the entry list.
func (d *Document) AddEntry(e Entry) error {
	if err := validateStruct(e); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	if err := d.checkEntryRefs(e); err != nil {
		return err
	}
	d.Entries = append([]Entry{e}, d.Entries...)
	return nil
}

// EntryUpdate lists the mutable fields of an entry. Nil fields are left
// untouched. ID and CreatedAt cannot be changed.
type EntryUpdate struct {
	Type       *EntryType
	Amount     *Amount
	CategoryID *string
	AccountID  *string
	Date       *Date
	Time       *string
	Remark     *string
	Tags       *[]string
}

// UpdateEntry applies the non-nil fields of u to the entry with the given id
// and stamps its UpdatedAt. It fails if the entry is unknown or the updated
// entry would be invalid.
func (d *Document) UpdateEntry(id string, u EntryUpdate) error {
	e := d.Entry(id)
	if e == nil {
		return fmt.Errorf("unknown entry %q", id)
	}
	updated := *e
	if u.Type != nil {
		updated.Type = *u.Type
	}
	if u.Amount != nil {
		updated.Amount = *u.Amount
	}
	if u.CategoryID != nil {
		updated.CategoryID = *u.CategoryID
	}
	if u.AccountID != nil {
		updated.AccountID = *u.AccountID
	}
	if u.Date != nil {
		updated.Date = *u.Date
	}
	if u.Time != nil {
		updated.Time = *u.Time
	}
	if u.Remark != nil {
		updated.Remark = *u.Remark
	}
	if u.Tags != nil {
		updated.Tags = slices.Clone(*u.Tags)
	}
	updated.UpdatedAt = time.Now().UTC()
	if err := validateStruct(updated); err != nil {
		return fmt.Errorf("invalid entry update: %w", err)
	}
	if err := d.checkEntryRefs(updated); err != nil {
		return err
	}
	*e = updated
	return nil
}

// DeleteEntry removes the entry with the given id. Removing an unknown id is
// a no-op.
func (d *Document) DeleteEntry(id string) {
	d.Entries = slices.DeleteFunc(d.Entries, func(e Entry) bool { return e.ID == id })
}

func (d *Document) checkEntryRefs(e Entry) error {
	cat := d.Category(e.CategoryID)
	if cat == nil {
		return fmt.Errorf("unknown category %q", e.CategoryID)
	}
	if cat.Type != e.Type {
		return fmt.Errorf("category %q is an %s category, entry is %s", cat.Name, cat.Type, e.Type)
	}
	if d.Account(e.AccountID) == nil {
		return fmt.Errorf("unknown account %q", e.AccountID)
	}
	return nil
}

// AddCategory validates the category and appends it.
func (d *Document) AddCategory(c Category) error {
	if err := validateStruct(c); err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}
	if c.ParentID != "" && d.Category(c.ParentID) == nil {
		return fmt.Errorf("unknown parent category %q", c.ParentID)
	}
	d.Categories = append(d.Categories, c)
	return nil
}

// CategoryUpdate lists the mutable fields of a category. Type is deliberately
// absent: flipping a category between income and expense would silently
// invalidate every entry referencing it.
type CategoryUpdate struct {
	Name     *string
	Icon     *string
	Color    *string
	ParentID *string
	Sort     *int
}

// UpdateCategory applies the non-nil fields of u to the category with the
// given id.
func (d *Document) UpdateCategory(id string, u CategoryUpdate) error {
	c := d.Category(id)
	if c == nil {
		return fmt.Errorf("unknown category %q", id)
	}
	updated := *c
	if u.Name != nil {
		updated.Name = *u.Name
	}
	if u.Icon != nil {
		updated.Icon = *u.Icon
	}
	if u.Color != nil {
		updated.Color = *u.Color
	}
	if u.ParentID != nil {
		if *u.ParentID != "" && d.Category(*u.ParentID) == nil {
			return fmt.Errorf("unknown parent category %q", *u.ParentID)
		}
		updated.ParentID = *u.ParentID
	}
	if u.Sort != nil {
		updated.Sort = *u.Sort
	}
	if err := validateStruct(updated); err != nil {
		return fmt.Errorf("invalid category update: %w", err)
	}
	*c = updated
	return nil
}

// DeleteCategory removes the category with the given id. It fails if any
// entry still references the category.
func (d *Document) DeleteCategory(id string) error {
	for _, e := range d.Entries {
		if e.CategoryID == id {
			return fmt.Errorf("category %q is still referenced by entry %q", id, e.ID)
		}
	}
	d.Categories = slices.DeleteFunc(d.Categories, func(c Category) bool { return c.ID == id })
	return nil
}

// AddAccount validates the account and appends it. If the new account is
// marked default, the mark is removed from every other account.
func (d *Document) AddAccount(a Account) error {
	if err := validateStruct(a); err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}
	if a.IsDefault {
		d.clearDefaultAccount()
	}
	d.Accounts = append(d.Accounts, a)
	return nil
}

// AccountUpdate lists the mutable fields of an account.
type AccountUpdate struct {
	Name           *string
	Type           *AccountType
	Icon           *string
	Color          *string
	InitialBalance *Amount
	Remark         *string
	IsDefault      *bool
}

// UpdateAccount applies the non-nil fields of u to the account with the given
// id and stamps its UpdatedAt. Promoting an account to default demotes every
// other account.
func (d *Document) UpdateAccount(id string, u AccountUpdate) error {
	a := d.Account(id)
	if a == nil {
		return fmt.Errorf("unknown account %q", id)
	}
	updated := *a
	if u.Name != nil {
		updated.Name = *u.Name
	}
	if u.Type != nil {
		updated.Type = *u.Type
	}
	if u.Icon != nil {
		updated.Icon = *u.Icon
	}
	if u.Color != nil {
		updated.Color = *u.Color
	}
	if u.InitialBalance != nil {
		updated.InitialBalance = *u.InitialBalance
	}
	if u.Remark != nil {
		updated.Remark = *u.Remark
	}
	if u.IsDefault != nil {
		updated.IsDefault = *u.IsDefault
	}
	updated.UpdatedAt = time.Now().UTC()
	if err := validateStruct(updated); err != nil {
		return fmt.Errorf("invalid account update: %w", err)
	}
	if updated.IsDefault {
		d.clearDefaultAccount()
	}
	*a = updated
	return nil
}

// SetDefaultAccount marks the account with the given id as the default one,
// demoting all others.
func (d *Document) SetDefaultAccount(id string) error {
	def := true
	return d.UpdateAccount(id, AccountUpdate{IsDefault: &def})
}

// DeleteAccount removes the account with the given id. It fails if any entry
// still references the account.
func (d *Document) DeleteAccount(id string) error {
	for _, e := range d.Entries {
		if e.AccountID == id {
			return fmt.Errorf("account %q is still referenced by entry %q", id, e.ID)
		}
	}
	d.Accounts = slices.DeleteFunc(d.Accounts, func(a Account) bool { return a.ID == id })
	return nil
}

func (d *Document) clearDefaultAccount() {
	for i := range d.Accounts {
		d.Accounts[i].IsDefault = false
	}
}

// SettingsPatch lists the mutable settings fields. Nil fields keep their
// current value.
type SettingsPatch struct {
	Theme          *string
	Language       *string
	Currency       *string
	FirstDayOfWeek *int
	AutoBackup     *bool
	BackupInterval *int
}

// UpdateSettings applies the non-nil fields of p to the document settings.
func (d *Document) UpdateSettings(p SettingsPatch) error {
	updated := d.Settings
	if p.Theme != nil {
		updated.Theme = *p.Theme
	}
	if p.Language != nil {
		updated.Language = *p.Language
	}
	if p.Currency != nil {
		updated.Currency = *p.Currency
	}
	if p.FirstDayOfWeek != nil {
		updated.FirstDayOfWeek = *p.FirstDayOfWeek
	}
	if p.AutoBackup != nil {
		updated.AutoBackup = *p.AutoBackup
	}
	if p.BackupInterval != nil {
		updated.BackupInterval = *p.BackupInterval
	}
	if err := validateStruct(updated); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	d.Settings = updated
	return nil
}
