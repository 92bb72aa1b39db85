package cashbook

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value counted in minor currency units (e.g. cents).
//
// Amounts are always non-negative in entries: the direction of the money flow
// is carried by the entry type, never by the sign. Account initial balances
// may be negative (credit accounts).
type Amount int64

// ParseAmount converts a decimal string such as "12.50" into an Amount, using
// the fraction of the given ISO currency code to decide the shift (e.g. 2 for
// CNY and EUR, 0 for JPY). It rejects values with more fractional digits than
// the currency allows.
func ParseAmount(s string, currency string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	fraction := currencyFraction(currency)
	shifted := d.Shift(int32(fraction))
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", s, fraction)
	}
	return Amount(shifted.IntPart()), nil
}

// Display formats the amount with the symbol and grouping rules of the given
// currency code, e.g. Amount(123456).Display("CNY") == "¥1,234.56".
func (a Amount) Display(currency string) string {
	return money.New(int64(a), currency).Display()
}

// Decimal returns the amount as a major-unit decimal for the given currency.
func (a Amount) Decimal(currency string) decimal.Decimal {
	return decimal.New(int64(a), 0).Shift(-int32(currencyFraction(currency)))
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return a + b }

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount { return a - b }

// Neg returns the negated amount.
func (a Amount) Neg() Amount { return -a }

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool { return a < 0 }

// currencyFraction returns the number of minor-unit digits for a currency
// code, defaulting to 2 when the code is unknown to go-money.
func currencyFraction(code string) int {
	// The money constructor never returns a nil currency.
	return money.New(0, code).Currency().Fraction
}
