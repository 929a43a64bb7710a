package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Budget tracks allocated versus spent amounts for one catalog category.
// Both amounts are in the base currency.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Spent    decimal.Decimal `json:"spent"`
}

// Validate validates the budget data
func (b *Budget) Validate() error {
	if b.ID == "" {
		return errors.New("id is required")
	}
	if _, ok := CategoryByID(b.Category); !ok {
		return errors.New("category must exist in the catalog")
	}
	if b.Amount.IsNegative() {
		return errors.New("amount must be non-negative")
	}
	if b.Spent.IsNegative() {
		return errors.New("spent must be non-negative")
	}
	return nil
}
