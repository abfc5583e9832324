package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finance-analytics/internal/models"

	"github.com/shopspring/decimal"
)

const maxRateResponseBytes = 1 << 20

// HTTPRateProvider fetches rate tables from an exchangerate-api compatible
// endpoint: GET {BaseURL}/latest/{BASE}.
type HTTPRateProvider struct {
	Client  *http.Client
	BaseURL string
	apiKey  string
	now     func() time.Time
}

// NewHTTPRateProvider creates a provider. The API key travels in the
// Authorization header and is never part of a returned error.
func NewHTTPRateProvider(baseURL, apiKey string, timeout time.Duration) *HTTPRateProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPRateProvider{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		now:     time.Now,
	}
}

type latestRatesResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

func (p *HTTPRateProvider) FetchRates(ctx context.Context, base string) (*models.ExchangeRateSnapshot, error) {
	endpoint := fmt.Sprintf("%s/latest/%s", p.BaseURL, url.PathEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", models.ErrRateFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s rates: %v", models.ErrRateFetchFailed, base, redact(err, p.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRateResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s rates: %v", models.ErrRateFetchFailed, base, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s rates: status %d", models.ErrRateFetchFailed, base, resp.StatusCode)
	}

	var payload latestRatesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode %s rates: %v", models.ErrRateFetchFailed, base, err)
	}

	if payload.Result != "success" {
		return nil, fmt.Errorf("%w: %s rates: provider result %q %s", models.ErrRateFetchFailed, base, payload.Result, payload.ErrorType)
	}

	if !strings.EqualFold(payload.BaseCode, base) {
		return nil, fmt.Errorf("%w: %s rates: provider returned base %q", models.ErrRateFetchFailed, base, payload.BaseCode)
	}

	if len(payload.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: %s rates: empty rate table", models.ErrRateFetchFailed, base)
	}

	rates := make(map[string]decimal.Decimal, len(payload.ConversionRates))
	for code, rate := range payload.ConversionRates {
		rates[strings.ToUpper(code)] = rate
	}
	rates[strings.ToUpper(base)] = decimal.NewFromInt(1)

	return &models.ExchangeRateSnapshot{
		Base:      strings.ToUpper(base),
		Rates:     rates,
		FetchedAt: p.now().UTC(),
	}, nil
}

func redact(err error, secret string) string {
	msg := err.Error()
	if secret == "" {
		return msg
	}
	return strings.ReplaceAll(msg, secret, "[REDACTED]")
}
