package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"finance-analytics/internal/dto"
	"finance-analytics/internal/models"
	"finance-analytics/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CurrencyHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	currency *service_mocks.MockCurrencyServiceInterface
	handler  *CurrencyHandler
	echo     *echo.Echo
	now      time.Time
}

func (s *CurrencyHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.currency = service_mocks.NewMockCurrencyServiceInterface(s.ctrl)
	s.handler = NewCurrencyHandler(s.currency)
	s.now = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	s.handler.now = func() time.Time { return s.now }

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *CurrencyHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCurrencyHandlerSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerSuite))
}

func (s *CurrencyHandlerSuite) TestConvert_Success() {
	s.currency.EXPECT().
		Convert(gomock.Any(), gomock.Any(), "EUR", "GBP").
		DoAndReturn(func(_ interface{}, amount decimal.Decimal, from, to string) (*models.ConversionResult, error) {
			s.True(amount.Equal(decimal.NewFromInt(100)))
			return &models.ConversionResult{
				Amount:       amount,
				From:         from,
				To:           to,
				Converted:    decimal.RequireFromString("85.71"),
				BaseCurrency: "USD",
			}, nil
		})

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/currency/convert?amount=100&from=EUR&to=GBP", nil, nil)

	s.Require().NoError(s.handler.Convert(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp models.ConversionResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Converted.Equal(decimal.RequireFromString("85.71")))
}

func (s *CurrencyHandlerSuite) TestConvert_Errors() {
	testCases := []struct {
		name   string
		target string
		err    error
		status int
		code   string
	}{
		{"missing amount", "/api/v1/currency/convert?from=EUR&to=GBP", nil, http.StatusBadRequest, "VALIDATION_001"},
		{"negative amount", "/api/v1/currency/convert?amount=-3&from=EUR&to=GBP", nil, http.StatusBadRequest, "VALIDATION_001"},
		{"unsupported currency", "/api/v1/currency/convert?amount=3&from=EUR&to=XYZ", models.ErrUnsupportedCurrency, http.StatusBadRequest, "CURRENCY_001"},
		{"rates unavailable", "/api/v1/currency/convert?amount=3&from=EUR&to=GBP", models.ErrRatesUnavailable, http.StatusServiceUnavailable, "CURRENCY_002"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.err != nil {
				s.currency.EXPECT().Convert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			}

			c, rec := newTestContext(s.echo, http.MethodGet, tc.target, nil, nil)

			s.Require().NoError(s.handler.Convert(c))
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, decodeError(rec).Error.Code)
		})
	}
}

func (s *CurrencyHandlerSuite) TestGetRates() {
	snapshot := &models.ExchangeRateSnapshot{
		Base:      "USD",
		FetchedAt: s.now.Add(-90 * time.Second),
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("0.92"),
		},
	}
	s.currency.EXPECT().Snapshot(gomock.Any()).Return(snapshot, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/currency/rates", nil, nil)

	s.Require().NoError(s.handler.GetRates(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RatesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("USD", resp.Base)
	s.Equal(int64(90), resp.AgeSeconds)
	s.Len(resp.Rates, 2)
}

func (s *CurrencyHandlerSuite) TestGetRates_Unavailable() {
	s.currency.EXPECT().Snapshot(gomock.Any()).Return(nil, models.ErrRatesUnavailable)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/currency/rates", nil, nil)

	s.Require().NoError(s.handler.GetRates(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}
