package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRateAPIKey = "k3y-s3cr3t"

func newRateServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		assert.Equal(t, "Bearer "+testRateAPIKey, r.Header.Get("Authorization"))
		assert.NotContains(t, r.URL.String(), testRateAPIKey)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHTTPRateProvider_FetchRates(t *testing.T) {
	server := newRateServer(t, http.StatusOK, `{
		"result": "success",
		"base_code": "USD",
		"conversion_rates": {"USD": 1, "eur": 0.9213, "JPY": 148.25}
	}`)

	fetchedAt := time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)
	provider := NewHTTPRateProvider(server.URL+"/", testRateAPIKey, time.Second)
	provider.now = func() time.Time { return fetchedAt }

	snap, err := provider.FetchRates(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, "USD", snap.Base)
	assert.Equal(t, fetchedAt, snap.FetchedAt)
	assert.True(t, snap.Rates["EUR"].Equal(decimal.RequireFromString("0.9213")))
	assert.True(t, snap.Rates["USD"].Equal(decimal.NewFromInt(1)))
	assert.Len(t, snap.Rates, 3)
}

func TestHTTPRateProvider_Failures(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"result":"error"}`},
		{"forbidden", http.StatusForbidden, `{"result":"error","error-type":"invalid-key"}`},
		{"malformed body", http.StatusOK, `{"result":`},
		{"provider error", http.StatusOK, `{"result":"error","error-type":"quota-reached"}`},
		{"wrong base", http.StatusOK, `{"result":"success","base_code":"EUR","conversion_rates":{"USD":1.08}}`},
		{"empty table", http.StatusOK, `{"result":"success","base_code":"USD","conversion_rates":{}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newRateServer(t, tc.status, tc.body)
			provider := NewHTTPRateProvider(server.URL, testRateAPIKey, time.Second)

			snap, err := provider.FetchRates(context.Background(), "USD")

			require.Error(t, err)
			assert.Nil(t, snap)
			assert.ErrorIs(t, err, models.ErrRateFetchFailed)
			assert.True(t, models.IsUpstreamUnavailable(err))
			assert.NotContains(t, err.Error(), testRateAPIKey)
		})
	}
}

func TestHTTPRateProvider_StatusInError(t *testing.T) {
	server := newRateServer(t, http.StatusBadGateway, "")
	provider := NewHTTPRateProvider(server.URL, testRateAPIKey, time.Second)

	_, err := provider.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestHTTPRateProvider_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	provider := NewHTTPRateProvider(server.URL, testRateAPIKey, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := provider.FetchRates(ctx, "USD")

	assert.ErrorIs(t, err, models.ErrRateFetchFailed)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "token [REDACTED] rejected", redact(stringError("token abc rejected"), "abc"))
	assert.Equal(t, "plain", redact(stringError("plain"), ""))
}

type stringError string

func (e stringError) Error() string { return string(e) }
