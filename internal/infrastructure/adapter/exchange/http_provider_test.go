package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet/internal/infrastructure/adapter/logger"
	timeProvider "wallet/internal/infrastructure/adapter/time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(apiKey, baseURL string) *HTTPRateProvider {
	return NewHTTPRateProvider(apiKey, baseURL, 2*time.Second, timeProvider.NewRealTimeProvider(), logger.NewNoopLogger())
}

func TestRateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "INR", r.URL.Query().Get("base_currency"))
		assert.Equal(t, "USD", r.URL.Query().Get("currencies"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"USD":{"value":0.012}}}`))
	}))
	defer server.Close()

	provider := newTestProvider("test-key", server.URL)

	rate, err := provider.Rate(context.Background(), "INR", "USD")

	require.NoError(t, err)
	assert.Equal(t, 0.012, rate)
}

func TestRateWithoutAPIKey(t *testing.T) {
	provider := newTestProvider("", "http://unused.invalid")

	_, err := provider.Rate(context.Background(), "INR", "USD")

	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestRateNon200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := newTestProvider("test-key", server.URL)

	_, err := provider.Rate(context.Background(), "INR", "USD")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestRateMissingCurrencyInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"EUR":{"value":0.011}}}`))
	}))
	defer server.Close()

	provider := newTestProvider("test-key", server.URL)

	_, err := provider.Rate(context.Background(), "INR", "USD")

	assert.Error(t, err)
}

func TestRateZeroValueRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"USD":{"value":0}}}`))
	}))
	defer server.Close()

	provider := newTestProvider("test-key", server.URL)

	_, err := provider.Rate(context.Background(), "INR", "USD")

	assert.Error(t, err)
}

func TestRateMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	provider := newTestProvider("test-key", server.URL)

	_, err := provider.Rate(context.Background(), "INR", "USD")

	assert.Error(t, err)
}

func TestRateHonorsContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	provider := newTestProvider("test-key", server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := provider.Rate(ctx, "INR", "USD")

	assert.Error(t, err)
}
