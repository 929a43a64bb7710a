package models

import "github.com/shopspring/decimal"

// CurrencyUSD is the base currency; all stored amounts are denominated in it.
const CurrencyUSD = "USD"

// CurrencyInfo describes how a supported currency is converted and displayed.
type CurrencyInfo struct {
	Code         string          `json:"code"`
	Rate         decimal.Decimal `json:"rate"` // units per 1 USD
	Symbol       string          `json:"symbol"`
	Locale       string          `json:"locale"`
	SymbolSuffix bool            `json:"symbol_suffix"`
}

// Static exchange rate table against USD. In a real application these would be
// fetched from an FX provider; here they are fixed.
var currencies = map[string]CurrencyInfo{
	"USD": {Code: "USD", Rate: decimal.NewFromInt(1), Symbol: "$", Locale: "en-US"},
	"EUR": {Code: "EUR", Rate: decimal.NewFromFloat(0.92), Symbol: "€", Locale: "de-DE", SymbolSuffix: true},
	"GBP": {Code: "GBP", Rate: decimal.NewFromFloat(0.79), Symbol: "£", Locale: "en-GB"},
	"JPY": {Code: "JPY", Rate: decimal.NewFromFloat(151.42), Symbol: "¥", Locale: "ja-JP"},
	"INR": {Code: "INR", Rate: decimal.NewFromFloat(83.51), Symbol: "₹", Locale: "en-IN"},
}

// LookupCurrency returns display and conversion info for a currency code.
func LookupCurrency(code string) (CurrencyInfo, bool) {
	info, ok := currencies[code]
	return info, ok
}

// ExchangeRate returns the USD conversion rate for a currency code.
// Unknown codes report ok=false; callers fall back to an identity rate.
func ExchangeRate(code string) (decimal.Decimal, bool) {
	info, ok := currencies[code]
	if !ok {
		return decimal.NewFromInt(1), false
	}
	return info.Rate, true
}

// SupportedCurrencies returns the codes present in the rate table.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	return codes
}
