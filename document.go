package cashbook

import (
	"slices"
	"time"
)

// Version is the schema version written to new documents. It is carried
// informationally and not enforced on load.
const Version = "1.0.0"

// Meta records the document lifecycle timestamps. UpdatedAt is rewritten on
// every save; LastBackupAt is stamped by the auto-backup trigger.
type Meta struct {
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastBackupAt time.Time `json:"lastBackupAt,omitzero"`
}

// Settings is the flat user preference record stored inside the document.
type Settings struct {
	Theme          string `json:"theme" validate:"oneof=light dark system"`
	Language       string `json:"language" validate:"oneof=zh-CN en-US"`
	Currency       string `json:"currency" validate:"required,iso4217"`
	FirstDayOfWeek int    `json:"firstDayOfWeek" validate:"min=0,max=1"`
	AutoBackup     bool   `json:"autoBackup"`
	BackupInterval int    `json:"backupInterval" validate:"min=1"`
}

// Document is the single root object holding all ledger state. It is the sole
// unit of persistence: entries, categories, accounts and settings are owned
// by it and always serialized together.
type Document struct {
	Version    string     `json:"version"`
	Meta       Meta       `json:"meta"`
	Entries    []Entry    `json:"entries"`
	Categories []Category `json:"categories"`
	Accounts   []Account  `json:"accounts"`
	Settings   Settings   `json:"settings"`
}

// NewDefaultDocument synthesizes the seed document used on first run and on
// recovery from a corrupt data file: eleven fixed categories, a single cash
// account marked default, and the default settings.
func NewDefaultDocument() *Document {
	now := time.Now().UTC()

	seed := []struct {
		name  string
		typ   EntryType
		icon  string
		color string
		sort  int
	}{
		{"餐饮", Expense, "food", "#FF6B6B", 1},
		{"交通", Expense, "car", "#4ECDC4", 2},
		{"购物", Expense, "shopping", "#45B7D1", 3},
		{"娱乐", Expense, "game", "#96CEB4", 4},
		{"医疗", Expense, "hospital", "#FFEAA7", 5},
		{"教育", Expense, "book", "#DDA0DD", 6},
		{"其他支出", Expense, "other", "#B0B0B0", 99},
		{"工资", Income, "money", "#2ECC71", 1},
		{"奖金", Income, "gift", "#F39C12", 2},
		{"投资收益", Income, "chart", "#9B59B6", 3},
		{"其他收入", Income, "other", "#95A5A6", 99},
	}

	categories := make([]Category, 0, len(seed))
	for _, s := range seed {
		categories = append(categories, Category{
			ID:    newID(),
			Name:  s.name,
			Type:  s.typ,
			Icon:  s.icon,
			Color: s.color,
			Sort:  s.sort,
		})
	}

	accounts := []Account{{
		ID:             newID(),
		Name:           "现金",
		Type:           Cash,
		Icon:           "cash",
		Color:          "#27AE60",
		InitialBalance: 0,
		IsDefault:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}}

	return &Document{
		Version: Version,
		Meta:    Meta{CreatedAt: now, UpdatedAt: now},
		Entries: []Entry{},
		Settings: Settings{
			Theme:          "light",
			Language:       "zh-CN",
			Currency:       "CNY",
			FirstDayOfWeek: 1,
			AutoBackup:     true,
			BackupInterval: 7,
		},
		Categories: categories,
		Accounts:   accounts,
	}
}

// Clone returns a deep copy of the document. The save queue snapshots the
// document with it so that in-flight writes never observe later mutations.
func (d *Document) Clone() *Document {
	c := *d
	c.Entries = slices.Clone(d.Entries)
	for i, e := range c.Entries {
		c.Entries[i].Tags = slices.Clone(e.Tags)
	}
	c.Categories = slices.Clone(d.Categories)
	c.Accounts = slices.Clone(d.Accounts)
	return &c
}

// Category returns the category with the given id, or nil if unknown.
func (d *Document) Category(id string) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i]
		}
	}
	return nil
}

// Account returns the account with the given id, or nil if unknown.
func (d *Document) Account(id string) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].ID == id {
			return &d.Accounts[i]
		}
	}
	return nil
}

// Entry returns the entry with the given id, or nil if unknown.
func (d *Document) Entry(id string) *Entry {
	for i := range d.Entries {
		if d.Entries[i].ID == id {
			return &d.Entries[i]
		}
	}
	return nil
}
