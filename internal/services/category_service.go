package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/models"
)

const defaultUncategorizedLimit = 5

// categoryService is a thin facade over the finance service for the
// categorization views of the dashboard.
type categoryService struct {
	finance FinanceService
}

// NewCategoryService creates a new category service
func NewCategoryService(finance FinanceService) CategoryService {
	return &categoryService{finance: finance}
}

func (s *categoryService) Categorize(ctx context.Context, userID, transactionID, categoryID string) (*models.FinancialData, error) {
	return s.finance.CategorizeTransaction(ctx, userID, transactionID, categoryID)
}

// ListUncategorized returns the first limit transactions without a category,
// in stored order. A non-positive limit uses the default of 5.
func (s *categoryService) ListUncategorized(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = defaultUncategorizedLimit
	}

	data, err := s.finance.GetFinancialData(ctx, userID)
	if err != nil {
		return nil, err
	}

	uncategorized := make([]*models.Transaction, 0, limit)
	for _, t := range data.Transactions {
		if !t.IsUncategorized() {
			continue
		}
		uncategorized = append(uncategorized, t)
		if len(uncategorized) == limit {
			break
		}
	}
	return uncategorized, nil
}

// CategoryBreakdown sums expense amounts per category and resolves each id
// against the aggregate's catalog snapshot. Ids missing from the catalog land
// in an "Uncategorized" bucket with a neutral color instead of being dropped.
// Entries are sorted descending by value.
func (s *categoryService) CategoryBreakdown(ctx context.Context, userID string) ([]*models.CategoryExpense, error) {
	data, err := s.finance.GetFinancialData(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, t := range data.Transactions {
		if t.Type != models.TransactionTypeExpense || t.Category == nil {
			continue
		}
		totals[*t.Category] = totals[*t.Category].Add(t.Amount)
	}

	breakdown := make([]*models.CategoryExpense, 0, len(totals))
	for categoryID, value := range totals {
		entry := &models.CategoryExpense{
			Name:  "Uncategorized",
			Value: value,
			Color: models.UncategorizedColor,
		}
		if category, ok := data.Category(categoryID); ok {
			entry.Name = category.Name
			entry.Color = category.Color
		}
		breakdown = append(breakdown, entry)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		if !breakdown[i].Value.Equal(breakdown[j].Value) {
			return breakdown[i].Value.GreaterThan(breakdown[j].Value)
		}
		return breakdown[i].Name < breakdown[j].Name
	})
	return breakdown, nil
}
