package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/services"
	"github.com/fintrackhq/fintrack/internal/store"
)

func newTestRouter() *mux.Router {
	st := store.NewMemoryStore()
	bus := store.NewBus()
	logger := zap.NewNop()

	generator := services.NewGeneratorService(rand.New(rand.NewSource(1)))
	finance := services.NewFinanceService(st, generator, services.NewSummaryService(), bus, logger)
	categories := services.NewCategoryService(finance)
	currency := services.NewCurrencyService(st, bus, logger)

	financeHandler := NewFinanceHandler(finance, categories)
	currencyHandler := NewCurrencyHandler(currency)

	router := mux.NewRouter()
	router.HandleFunc("/api/users/{userID}/finance", financeHandler.HandleGetFinancialData).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userID}/transactions/{transactionID}/category", financeHandler.HandleCategorize).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{userID}/transactions/uncategorized", financeHandler.HandleUncategorized).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userID}/expenses/by-category", financeHandler.HandleCategoryBreakdown).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userID}/currency", currencyHandler.HandleGetPreference).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userID}/currency", currencyHandler.HandleSetPreference).Methods(http.MethodPut)
	router.HandleFunc("/api/currency/convert", currencyHandler.HandleConvert).Methods(http.MethodGet)
	return router
}

func TestHandleGetFinancialData(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u1/finance", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var data models.FinancialData
	if err := json.NewDecoder(rec.Body).Decode(&data); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(data.Transactions) != 30 {
		t.Errorf("expected 30 transactions, got %d", len(data.Transactions))
	}
	if len(data.Categories) != 12 {
		t.Errorf("expected 12 categories, got %d", len(data.Categories))
	}
}

func TestHandleCategorize(t *testing.T) {
	router := newTestRouter()

	// Bootstrap the user first.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u1/finance", nil))

	body := strings.NewReader(`{"category_id":"cat_2"}`)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/users/u1/transactions/trans_u1_0/category", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var data models.FinancialData
	json.NewDecoder(rec.Body).Decode(&data)
	tx, ok := data.Transaction("trans_u1_0")
	if !ok || tx.Category == nil || *tx.Category != "cat_2" {
		t.Error("expected transaction categorized as cat_2")
	}
}

func TestHandleCategorize_MissingCategoryID(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/users/u1/transactions/trans_u1_0/category", strings.NewReader(`{}`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleUncategorized_DefaultLimit(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u1/transactions/uncategorized", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var transactions []*models.Transaction
	json.NewDecoder(rec.Body).Decode(&transactions)
	if len(transactions) != 5 {
		t.Errorf("expected 5 transactions, got %d", len(transactions))
	}
	for _, tx := range transactions {
		if tx.Category != nil {
			t.Errorf("transaction %s is categorized", tx.ID)
		}
	}
}

func TestHandleCategoryBreakdown_Sorted(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u1/expenses/by-category", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var breakdown []*models.CategoryExpense
	json.NewDecoder(rec.Body).Decode(&breakdown)
	for i := 1; i < len(breakdown); i++ {
		if breakdown[i].Value.GreaterThan(breakdown[i-1].Value) {
			t.Errorf("breakdown not sorted descending at index %d", i)
		}
	}
}

func TestHandleCurrencyPreferenceRoundTrip(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u1/currency", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "USD") {
		t.Fatalf("expected USD default, got %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/users/u1/currency", strings.NewReader(`{"currency":"JPY"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u1/currency", nil))
	if !strings.Contains(rec.Body.String(), "JPY") {
		t.Errorf("expected JPY preference, got %s", rec.Body.String())
	}
}

func TestHandleConvert(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/currency/convert?amount=100&to=EUR", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var response struct {
		Amount    decimal.Decimal `json:"amount"`
		Formatted string          `json:"formatted"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !response.Amount.Equal(decimal.NewFromInt(92)) {
		t.Errorf("amount = %s, want 92", response.Amount)
	}
	if response.Formatted != "92 €" {
		t.Errorf("formatted = %q, want %q", response.Formatted, "92 €")
	}
}

func TestHandleConvert_BadAmount(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/currency/convert?amount=abc&to=EUR", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
