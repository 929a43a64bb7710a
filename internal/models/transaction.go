package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction represents a single financial transaction. Amounts are positive
// and denominated in the base currency; the type field carries the sign.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    *string         `json:"category"`
}

// Validate validates the transaction data
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("id is required")
	}
	if t.Date.IsZero() {
		return errors.New("date is required")
	}
	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return errors.New("type must be 'income' or 'expense'")
	}
	if t.Amount.IsNegative() {
		return errors.New("amount must be non-negative")
	}
	return nil
}

// IsUncategorized reports whether the transaction has no category assigned.
func (t *Transaction) IsUncategorized() bool {
	return t.Category == nil
}
