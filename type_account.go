package cashbook

import (
	"fmt"
	"time"
)

// AccountType is the kind of account holding money.
type AccountType string

const (
	Cash       AccountType = "cash"
	DebitCard  AccountType = "debit_card"
	CreditCard AccountType = "credit_card"
	EWallet    AccountType = "e_wallet"
	OtherAcct  AccountType = "other"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Cash, DebitCard, CreditCard, EWallet, OtherAcct:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type %q: expected cash, debit_card, credit_card, e_wallet or other", s)
	}
}

// Account is a place money lives: a wallet, a card, an e-wallet.
//
// InitialBalance is in minor currency units and may be negative (credit
// accounts). At most one account of a document has IsDefault set; the
// mutation layer enforces this on every write.
type Account struct {
	ID             string      `json:"id" validate:"required"`
	Name           string      `json:"name" validate:"required"`
	Type           AccountType `json:"type" validate:"required,oneof=cash debit_card credit_card e_wallet other"`
	Icon           string      `json:"icon,omitempty"`
	Color          string      `json:"color,omitempty" validate:"omitempty,hexcolor"`
	InitialBalance Amount      `json:"initialBalance"`
	Remark         string      `json:"remark,omitempty"`
	IsDefault      bool        `json:"isDefault"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// NewAccount creates a validated account with a fresh id and timestamps.
func NewAccount(name string, typ AccountType, initialBalance Amount) (Account, error) {
	now := time.Now().UTC()
	a := Account{
		ID:             newID(),
		Name:           name,
		Type:           typ,
		InitialBalance: initialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validateStruct(a); err != nil {
		return Account{}, fmt.Errorf("invalid account: %w", err)
	}
	return a, nil
}
