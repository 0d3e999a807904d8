package model

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places amounts are presented with.
const AmountScale = 2

// Amount is an hours or money value at presentation scale. It is written to
// JSON as a plain number with exactly two decimals, e.g. 8.50.
type Amount struct {
	decimal.Decimal
}

// NewAmount rounds d half away from zero to two places.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d.Round(AmountScale)}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(AmountScale)), nil
}

// UnmarshalJSON accepts numbers as well as the quoted form older snapshots
// were stored with.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}
