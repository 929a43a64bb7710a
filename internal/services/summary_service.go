package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/models"
)

// savingsRatio is the fixed share of income counted as savings. This is a
// heuristic, not a derived actual-savings figure.
var savingsRatio = decimal.NewFromFloat(0.2)

type summaryService struct{}

// NewSummaryService creates a new summary service
func NewSummaryService() SummaryService {
	return &summaryService{}
}

// Summarize buckets transactions into the current and previous calendar month
// relative to now and derives income, expenses, balance and savings for each.
// Empty buckets yield all-zero metrics.
func (s *summaryService) Summarize(transactions []*models.Transaction, now time.Time) models.Summary {
	currentMonth := now.Month()
	currentYear := now.Year()

	previousMonth := currentMonth - 1
	previousYear := currentYear
	if currentMonth == time.January {
		previousMonth = time.December
		previousYear = currentYear - 1
	}

	var current, previous []*models.Transaction
	for _, t := range transactions {
		switch {
		case t.Date.Month() == currentMonth && t.Date.Year() == currentYear:
			current = append(current, t)
		case t.Date.Month() == previousMonth && t.Date.Year() == previousYear:
			previous = append(previous, t)
		}
	}

	return models.Summary{
		Current:  calculateMetrics(current),
		Previous: calculateMetrics(previous),
	}
}

func calculateMetrics(transactions []*models.Transaction) models.MonthMetrics {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return models.MonthMetrics{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
		Savings:  income.Mul(savingsRatio),
	}
}

// PercentChange computes the month-over-month delta as a percentage, for the
// dashboard's summary-card trend badges. A zero previous value is treated
// specially to avoid division by zero: 0 when the current value is also zero,
// 100 when it is positive.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return decimal.NewFromInt(100)
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}
