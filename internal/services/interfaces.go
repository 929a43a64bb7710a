package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/models"
)

// CurrencyService converts and formats base-currency amounts and manages
// per-user currency preferences.
type CurrencyService interface {
	Convert(amount decimal.Decimal, targetCode string) decimal.Decimal
	Format(amount decimal.Decimal, code string) string
	UserCurrency(ctx context.Context, userID string) (string, error)
	SetUserCurrency(ctx context.Context, userID, code string) error
}

// GeneratorService produces the one-time bootstrap data for a new user.
type GeneratorService interface {
	GenerateTransactions(userID string) []*models.Transaction
	SeedBudgets() []*models.Budget
	SeedGoals(now time.Time) []*models.FinancialGoal
}

// SummaryService derives month-bucketed metrics from a transaction set.
type SummaryService interface {
	Summarize(transactions []*models.Transaction, now time.Time) models.Summary
}

// FinanceService owns the per-user financial aggregate: lazy bootstrap on
// first read, whole-aggregate read-modify-write on mutation.
type FinanceService interface {
	GetFinancialData(ctx context.Context, userID string) (*models.FinancialData, error)
	CategorizeTransaction(ctx context.Context, userID, transactionID, categoryID string) (*models.FinancialData, error)
}

// CategoryService exposes categorization views to the UI layer.
type CategoryService interface {
	Categorize(ctx context.Context, userID, transactionID, categoryID string) (*models.FinancialData, error)
	ListUncategorized(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)
	CategoryBreakdown(ctx context.Context, userID string) ([]*models.CategoryExpense, error)
}

// AuthService is the mock identity provider. The finance core only consumes
// the id of the current user.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	FederatedLogin(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}
