package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/fintrackhq/fintrack/internal/errors"
	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/store"
)

type financeService struct {
	store     store.Store
	generator GeneratorService
	summary   SummaryService
	bus       *store.Bus
	logger    *zap.Logger
	now       func() time.Time

	// Serializes read-modify-write per user within this process. The store
	// has no cross-call transaction, so unserialized categorizations from
	// different surfaces would lose updates.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewFinanceService creates a new finance service
func NewFinanceService(st store.Store, generator GeneratorService, summary SummaryService, bus *store.Bus, logger *zap.Logger) FinanceService {
	return &financeService{
		store:     st,
		generator: generator,
		summary:   summary,
		bus:       bus,
		logger:    logger,
		now:       time.Now,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// GetFinancialData returns the user's aggregate, bootstrapping it on first
// access. Subsequent reads return the persisted aggregate verbatim; summary
// fields stay frozen at creation time.
func (s *financeService) GetFinancialData(ctx context.Context, userID string) (*models.FinancialData, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.loadOrBootstrap(ctx, userID)
}

// CategorizeTransaction reassigns one transaction's category and persists the
// whole aggregate. An unknown transaction id is a no-op.
func (s *financeService) CategorizeTransaction(ctx context.Context, userID, transactionID, categoryID string) (*models.FinancialData, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	data, err := s.loadOrBootstrap(ctx, userID)
	if err != nil {
		return nil, err
	}

	if tx, ok := data.Transaction(transactionID); ok {
		category := categoryID
		tx.Category = &category
	}

	if err := s.save(ctx, userID, data); err != nil {
		return nil, err
	}

	s.logger.Debug("transaction categorized",
		zap.String("user_id", userID),
		zap.String("transaction_id", transactionID),
		zap.String("category_id", categoryID))
	return data, nil
}

func (s *financeService) loadOrBootstrap(ctx context.Context, userID string) (*models.FinancialData, error) {
	raw, found, err := s.store.Get(ctx, store.DataKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load financial data: %w", err)
	}

	if found {
		var data models.FinancialData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, &apperrors.ErrCorruptAggregate{UserID: userID, Err: err}
		}
		return &data, nil
	}

	return s.bootstrap(ctx, userID)
}

func (s *financeService) bootstrap(ctx context.Context, userID string) (*models.FinancialData, error) {
	now := s.now()
	transactions := s.generator.GenerateTransactions(userID)

	data := &models.FinancialData{
		Transactions: transactions,
		Categories:   models.DefaultCategories(),
		Budgets:      s.generator.SeedBudgets(),
		Goals:        s.generator.SeedGoals(now),
	}
	data.ApplySummary(s.summary.Summarize(transactions, now))

	if err := s.save(ctx, userID, data); err != nil {
		return nil, err
	}

	s.logger.Info("financial data bootstrapped",
		zap.String("user_id", userID),
		zap.Int("transactions", len(transactions)))
	return data, nil
}

func (s *financeService) save(ctx context.Context, userID string, data *models.FinancialData) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode financial data: %w", err)
	}

	key := store.DataKey(userID)
	if err := s.store.Set(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist financial data: %w", err)
	}

	s.bus.Publish(store.Event{Key: key, Value: string(encoded)})
	return nil
}

func (s *financeService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}
