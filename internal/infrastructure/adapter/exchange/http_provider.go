package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	coreport "wallet/internal/domain/port/core"
)

// DefaultTimeout bounds a single rate lookup
const DefaultTimeout = 10 * time.Second

// ErrNoCredentials is returned when no API key is configured; callers fall
// back to their built-in rate table
var ErrNoCredentials = errors.New("no rate provider credentials configured")

// rateResponse mirrors the provider's wire format:
// {"data":{"USD":{"value":0.012}}}
type rateResponse struct {
	Data map[string]struct {
		Value float64 `json:"value"`
	} `json:"data"`
}

// HTTPRateProvider implements the RateProvider port against an HTTP rate
// API. Lookups are bounded by a timeout and honor context cancellation.
type HTTPRateProvider struct {
	apiKey       string
	baseURL      string
	timeout      time.Duration
	client       *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHTTPRateProvider creates a new rate provider client
func NewHTTPRateProvider(
	apiKey, baseURL string,
	timeout time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *HTTPRateProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPRateProvider{
		apiKey:       apiKey,
		baseURL:      baseURL,
		timeout:      timeout,
		client:       &http.Client{Timeout: timeout},
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Rate fetches the spot rate for base -> target
func (p *HTTPRateProvider) Rate(ctx context.Context, base, target string) (float64, error) {
	if p.apiKey == "" {
		return 0, ErrNoCredentials
	}

	ctx, cancel := p.timeProvider.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return 0, fmt.Errorf("building rate request: %w", err)
	}

	q := url.Values{}
	q.Set("apikey", p.apiKey)
	q.Set("base_currency", base)
	q.Set("currencies", target)
	req.URL.RawQuery = q.Encode()

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rate lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding rate response: %w", err)
	}

	entry, ok := body.Data[target]
	if !ok || entry.Value <= 0 {
		return 0, fmt.Errorf("no rate for %s in provider response", target)
	}

	p.logger.Debug("Fetched live exchange rate", map[string]any{
		"base":   base,
		"target": target,
		"rate":   entry.Value,
	})
	return entry.Value, nil
}
