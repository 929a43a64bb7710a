package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// FinancialGoal is a savings goal with a display-only deadline countdown.
type FinancialGoal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate validates the goal data
func (g *FinancialGoal) Validate() error {
	if g.ID == "" {
		return errors.New("id is required")
	}
	if g.Title == "" {
		return errors.New("title is required")
	}
	if g.TargetAmount.IsNegative() {
		return errors.New("targetAmount must be non-negative")
	}
	if g.CurrentAmount.IsNegative() {
		return errors.New("currentAmount must be non-negative")
	}
	return nil
}
