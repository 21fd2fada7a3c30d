package exchange

import "context"

// RateProvider resolves a spot exchange rate for a currency pair from an
// external source. Implementations are expected to bound the lookup with a
// timeout and honor context cancellation; callers degrade to fallback rates
// when the provider fails.
type RateProvider interface {
	// Rate returns how many units of target one unit of base buys.
	Rate(ctx context.Context, base, target string) (float64, error)
}
