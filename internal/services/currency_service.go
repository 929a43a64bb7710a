package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/store"
)

type currencyService struct {
	store  store.Store
	bus    *store.Bus
	logger *zap.Logger
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(st store.Store, bus *store.Bus, logger *zap.Logger) CurrencyService {
	return &currencyService{store: st, bus: bus, logger: logger}
}

// Convert multiplies a base-currency amount by the rate for the target code.
// Unknown codes fall back to an identity rate rather than failing.
func (s *currencyService) Convert(amount decimal.Decimal, targetCode string) decimal.Decimal {
	rate, _ := models.ExchangeRate(targetCode)
	return amount.Mul(rate)
}

// Format renders an amount with the currency's symbol and locale grouping.
// All supported currencies display zero fractional digits; the amount is
// rounded to the nearest whole unit first.
func (s *currencyService) Format(amount decimal.Decimal, code string) string {
	units := amount.Round(0).IntPart()

	info, ok := models.LookupCurrency(code)
	if !ok {
		printer := message.NewPrinter(language.AmericanEnglish)
		return code + " " + printer.Sprintf("%v", number.Decimal(units))
	}

	printer := message.NewPrinter(language.MustParse(info.Locale))
	digits := printer.Sprintf("%v", number.Decimal(units))
	if info.SymbolSuffix {
		return digits + " " + info.Symbol
	}
	return info.Symbol + digits
}

// UserCurrency returns the user's stored preference, defaulting to USD.
func (s *currencyService) UserCurrency(ctx context.Context, userID string) (string, error) {
	code, found, err := s.store.Get(ctx, store.CurrencyKey(userID))
	if err != nil {
		return "", fmt.Errorf("failed to get currency preference: %w", err)
	}
	if !found || code == "" {
		return models.CurrencyUSD, nil
	}
	return code, nil
}

// SetUserCurrency persists the preference and broadcasts the change so every
// currency-displaying view can refresh.
func (s *currencyService) SetUserCurrency(ctx context.Context, userID, code string) error {
	key := store.CurrencyKey(userID)
	if err := s.store.Set(ctx, key, code); err != nil {
		return fmt.Errorf("failed to set currency preference: %w", err)
	}

	s.bus.Publish(store.Event{Key: key, Value: code})
	s.logger.Info("currency preference updated",
		zap.String("user_id", userID),
		zap.String("currency", code))
	return nil
}
