package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	apperrors "github.com/fintrackhq/fintrack/internal/errors"
	"github.com/fintrackhq/fintrack/internal/services"
)

type FinanceHandler struct {
	finance    services.FinanceService
	categories services.CategoryService
}

func NewFinanceHandler(finance services.FinanceService, categories services.CategoryService) *FinanceHandler {
	return &FinanceHandler{finance: finance, categories: categories}
}

// HandleGetFinancialData returns the user's financial aggregate, creating it
// on first access.
func (h *FinanceHandler) HandleGetFinancialData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userID"]

	data, err := h.finance.GetFinancialData(r.Context(), userID)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(data)
}

type categorizeRequest struct {
	CategoryID string `json:"category_id"`
}

// HandleCategorize reassigns a transaction's category and returns the updated
// aggregate.
func (h *FinanceHandler) HandleCategorize(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	userID := vars["userID"]
	transactionID := vars["transactionID"]

	var req categorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.CategoryID == "" {
		http.Error(w, "category_id is required", http.StatusBadRequest)
		return
	}

	data, err := h.categories.Categorize(r.Context(), userID, transactionID, req.CategoryID)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(data)
}

// HandleUncategorized lists the first N uncategorized transactions.
func (h *FinanceHandler) HandleUncategorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userID"]

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	transactions, err := h.categories.ListUncategorized(r.Context(), userID, limit)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(transactions)
}

// HandleCategoryBreakdown returns expense totals grouped by category, sorted
// descending by value.
func (h *FinanceHandler) HandleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userID"]

	breakdown, err := h.categories.CategoryBreakdown(r.Context(), userID)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(breakdown)
}

func writeFinanceError(w http.ResponseWriter, err error) {
	var validation *apperrors.ErrValidation
	if errors.As(err, &validation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
