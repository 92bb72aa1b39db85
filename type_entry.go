package cashbook

import (
	"fmt"
	"time"
)

// EntryType tells whether an entry adds to or removes from an account.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// ParseEntryType parses a string into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown entry type %q: expected income or expense", s)
	}
}

// Entry is a single income or expense record.
//
// Amount is always a non-negative count of minor currency units; the sign of
// the flow is carried by Type. CategoryID and AccountID reference a Category
// and an Account of the same document.
type Entry struct {
	ID         string    `json:"id" validate:"required"`
	Type       EntryType `json:"type" validate:"required,oneof=income expense"`
	Amount     Amount    `json:"amount" validate:"min=0"`
	CategoryID string    `json:"categoryId" validate:"required"`
	AccountID  string    `json:"accountId" validate:"required"`
	Date       Date      `json:"date"`
	Time       string    `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Remark     string    `json:"remark,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewEntry creates a validated entry with a fresh id and timestamps.
func NewEntry(typ EntryType, amount Amount, categoryID, accountID string, date Date) (Entry, error) {
	now := time.Now().UTC()
	e := Entry{
		ID:         newID(),
		Type:       typ,
		Amount:     amount,
		CategoryID: categoryID,
		AccountID:  accountID,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := validateStruct(e); err != nil {
		return Entry{}, fmt.Errorf("invalid entry: %w", err)
	}
	return e, nil
}
