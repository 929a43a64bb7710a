package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/services"
)

type CurrencyHandler struct {
	currency services.CurrencyService
}

func NewCurrencyHandler(currency services.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currency: currency}
}

// HandleConvert converts a base-currency amount to a target currency.
// Query params: amount (decimal), to (currency code).
func (h *CurrencyHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		http.Error(w, "amount must be a number", http.StatusBadRequest)
		return
	}
	target := r.URL.Query().Get("to")
	if target == "" {
		http.Error(w, "to is required", http.StatusBadRequest)
		return
	}

	converted := h.currency.Convert(amount, target)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"amount":    converted,
		"formatted": h.currency.Format(converted, target),
	})
}

// HandleGetPreference returns the user's currency preference.
func (h *CurrencyHandler) HandleGetPreference(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userID"]

	code, err := h.currency.UserCurrency(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"currency": code})
}

type setCurrencyRequest struct {
	Currency string `json:"currency"`
}

// HandleSetPreference stores the user's currency preference.
func (h *CurrencyHandler) HandleSetPreference(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userID"]

	var req setCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Currency == "" {
		http.Error(w, "currency is required", http.StatusBadRequest)
		return
	}

	if err := h.currency.SetUserCurrency(r.Context(), userID, req.Currency); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"currency": req.Currency})
}
