package currency

import (
	"context"
	"math"
	"strings"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/domain/port/exchange"
)

// BaseCurrency is the ledger-native currency; every stored balance is in it
const BaseCurrency = "INR"

// fallbackRates are the built-in INR spot rates used when the live provider
// is unavailable or unconfigured
var fallbackRates = map[string]float64{
	"USD": 0.012,
	"EUR": 0.011,
	"GBP": 0.0095,
}

// Converter converts ledger-native balances into a display currency. It is
// pure read-side: a conversion never touches stored state. Live rates come
// from the provider when one is configured; on any provider failure the
// built-in fallback table takes over.
type Converter struct {
	provider exchange.RateProvider
	logger   coreport.Logger
}

// NewConverter creates a converter. provider may be nil, in which case only
// the fallback table is consulted.
func NewConverter(provider exchange.RateProvider, logger coreport.Logger) *Converter {
	return &Converter{
		provider: provider,
		logger:   logger,
	}
}

// Convert converts amount from one currency to another. Identity when the
// currencies match. Conversions are supported from and to the base currency;
// the result is rounded half away from zero to 2 decimal places. Fails with
// ErrUnsupportedCurrency when neither the provider nor the fallback table
// knows the requested currency.
func (c *Converter) Convert(ctx context.Context, amount entity.Money, from, to string) (entity.Money, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if from == to {
		return amount, nil
	}

	rate, err := c.rate(ctx, from, to)
	if err != nil {
		return 0, err
	}

	return applyRate(amount, rate), nil
}

// rate resolves the conversion factor for the pair. Rates are quoted against
// the base currency; the inverse is used when converting back into it.
func (c *Converter) rate(ctx context.Context, from, to string) (float64, error) {
	switch {
	case from == BaseCurrency:
		return c.baseRate(ctx, to)
	case to == BaseCurrency:
		rate, err := c.baseRate(ctx, from)
		if err != nil {
			return 0, err
		}
		return 1 / rate, nil
	default:
		return 0, errs.ErrUnsupportedCurrency
	}
}

// baseRate returns how many units of currency one unit of the base buys
func (c *Converter) baseRate(ctx context.Context, currency string) (float64, error) {
	if c.provider != nil {
		rate, err := c.provider.Rate(ctx, BaseCurrency, currency)
		if err == nil && rate > 0 {
			return rate, nil
		}
		if err != nil {
			// Provider failures never propagate; degrade to the fallback table
			c.logger.Warn("Rate provider lookup failed, using fallback rates", map[string]any{
				"currency": currency,
				"error":    err.Error(),
			})
		}
	}

	rate, ok := fallbackRates[currency]
	if !ok {
		return 0, errs.ErrUnsupportedCurrency
	}
	return rate, nil
}

// applyRate multiplies the minor-unit amount by the rate and rounds half
// away from zero back to minor units
func applyRate(amount entity.Money, rate float64) entity.Money {
	return entity.MoneyFromPaise(int64(math.Round(float64(amount.Paise()) * rate)))
}
