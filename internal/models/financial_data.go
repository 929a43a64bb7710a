package models

import "github.com/shopspring/decimal"

// MonthMetrics holds the derived metrics for one calendar-month bucket.
type MonthMetrics struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
	Savings  decimal.Decimal
}

// Summary pairs current-month metrics with the previous month's.
type Summary struct {
	Current  MonthMetrics
	Previous MonthMetrics
}

// FinancialData is the per-user aggregate root: summary metrics plus the owned
// collections. It is persisted and updated as one indivisible unit; the summary
// fields are frozen at creation time and not recomputed on later reads.
type FinancialData struct {
	Balance           decimal.Decimal `json:"balance"`
	LastMonthBalance  decimal.Decimal `json:"lastMonthBalance"`
	Income            decimal.Decimal `json:"income"`
	LastMonthIncome   decimal.Decimal `json:"lastMonthIncome"`
	Expenses          decimal.Decimal `json:"expenses"`
	LastMonthExpenses decimal.Decimal `json:"lastMonthExpenses"`
	Savings           decimal.Decimal `json:"savings"`
	LastMonthSavings  decimal.Decimal `json:"lastMonthSavings"`

	Transactions []*Transaction   `json:"transactions"`
	Categories   []Category       `json:"categories"`
	Budgets      []*Budget        `json:"budgets"`
	Goals        []*FinancialGoal `json:"goals"`
}

// ApplySummary copies the summary metrics onto the aggregate's flat fields.
func (d *FinancialData) ApplySummary(s Summary) {
	d.Balance = s.Current.Balance
	d.Income = s.Current.Income
	d.Expenses = s.Current.Expenses
	d.Savings = s.Current.Savings
	d.LastMonthBalance = s.Previous.Balance
	d.LastMonthIncome = s.Previous.Income
	d.LastMonthExpenses = s.Previous.Expenses
	d.LastMonthSavings = s.Previous.Savings
}

// Transaction returns the owned transaction with the given id, if present.
func (d *FinancialData) Transaction(id string) (*Transaction, bool) {
	for _, t := range d.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Category resolves a category id against the aggregate's catalog snapshot.
func (d *FinancialData) Category(id string) (Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryExpense is one slice of the expense-by-category breakdown.
type CategoryExpense struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}
