package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/models"
)

const (
	generatedTransactionCount = 30
	generatedDateSpanDays     = 30
	uncategorizedEvery        = 5

	incomeAmountMin  = 500
	incomeAmountMax  = 1500
	expenseAmountMin = 10
	expenseAmountMax = 210
)

var incomeDescriptions = []string{
	"Salary payment",
	"Freelance work",
	"Investment dividend",
	"Client payment",
	"Refund",
}

var expenseDescriptions = []string{
	"Grocery shopping",
	"Restaurant bill",
	"Gas station",
	"Online purchase",
	"Movie tickets",
	"Utility bill",
}

type generatorService struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGeneratorService creates a generator backed by the given random source.
// A nil source gets a time-seeded one; tests inject a fixed seed for
// reproducible output.
func NewGeneratorService(rng *rand.Rand) GeneratorService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &generatorService{rng: rng, now: time.Now}
}

// GenerateTransactions produces the 30-entry bootstrap set for a new user:
// uniformly random dates in the past 30 days, uniform income/expense split,
// type-dependent amount ranges and descriptions, and every 5th entry (by
// generation order) left uncategorized. Sorted newest first.
func (g *generatorService) GenerateTransactions(userID string) []*models.Transaction {
	catalog := models.DefaultCategories()
	now := g.now()

	transactions := make([]*models.Transaction, 0, generatedTransactionCount)
	for i := 0; i < generatedTransactionCount; i++ {
		date := now.AddDate(0, 0, -g.rng.Intn(generatedDateSpanDays))

		var category *string
		if i%uncategorizedEvery != 0 {
			id := catalog[g.rng.Intn(len(catalog))].ID
			category = &id
		}

		txType := models.TransactionTypeIncome
		if g.rng.Intn(2) == 1 {
			txType = models.TransactionTypeExpense
		}

		var amount int64
		var descriptions []string
		if txType == models.TransactionTypeIncome {
			amount = int64(g.rng.Intn(incomeAmountMax-incomeAmountMin)) + incomeAmountMin
			descriptions = incomeDescriptions
		} else {
			amount = int64(g.rng.Intn(expenseAmountMax-expenseAmountMin)) + expenseAmountMin
			descriptions = expenseDescriptions
		}

		transactions = append(transactions, &models.Transaction{
			ID:          fmt.Sprintf("trans_%s_%d", userID, i),
			Date:        date,
			Description: descriptions[g.rng.Intn(len(descriptions))],
			Amount:      decimal.NewFromInt(amount),
			Type:        txType,
			Category:    category,
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions
}

// SeedBudgets returns the fixed budget seed shared by every new user.
func (g *generatorService) SeedBudgets() []*models.Budget {
	return []*models.Budget{
		{ID: "budget_1", Category: "cat_1", Amount: decimal.NewFromInt(1500), Spent: decimal.NewFromInt(1200)},
		{ID: "budget_2", Category: "cat_2", Amount: decimal.NewFromInt(500), Spent: decimal.NewFromInt(350)},
		{ID: "budget_3", Category: "cat_3", Amount: decimal.NewFromInt(300), Spent: decimal.NewFromInt(250)},
		{ID: "budget_4", Category: "cat_4", Amount: decimal.NewFromInt(200), Spent: decimal.NewFromInt(180)},
		{ID: "budget_5", Category: "cat_5", Amount: decimal.NewFromInt(400), Spent: decimal.NewFromInt(200)},
	}
}

// SeedGoals returns the fixed goal seed with deadlines relative to now.
func (g *generatorService) SeedGoals(now time.Time) []*models.FinancialGoal {
	sixMonthsLater := now.AddDate(0, 6, 0)
	oneYearLater := now.AddDate(1, 0, 0)

	return []*models.FinancialGoal{
		{
			ID:            "goal_1",
			Title:         "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(10000),
			CurrentAmount: decimal.NewFromInt(5000),
			Deadline:      sixMonthsLater,
			CreatedAt:     now,
		},
		{
			ID:            "goal_2",
			Title:         "Vacation",
			TargetAmount:  decimal.NewFromInt(3000),
			CurrentAmount: decimal.NewFromInt(1200),
			Deadline:      oneYearLater,
			CreatedAt:     now,
		},
		{
			ID:            "goal_3",
			Title:         "New Laptop",
			TargetAmount:  decimal.NewFromInt(2000),
			CurrentAmount: decimal.NewFromInt(800),
			Deadline:      sixMonthsLater,
			CreatedAt:     now,
		},
	}
}
