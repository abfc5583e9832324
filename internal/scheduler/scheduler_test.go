package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"finance-analytics/internal/config"
	"finance-analytics/internal/services"
	"finance-analytics/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		Enabled:           true,
		RateRefreshCron:   "0 */30 * * * *",
		BackfillCron:      "0 */10 * * * *",
		BackfillBatchSize: 25,
	}
}

func TestRegisterAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewScheduler(context.Background(), testConfig(),
		service_mocks.NewMockCurrencyServiceInterface(ctrl),
		service_mocks.NewMockTransactionServiceInterface(ctrl))

	require.NoError(t, s.RegisterAll())
	assert.Len(t, s.cron.Entries(), 2)
}

func TestRegisterAll_InvalidExpression(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.BackfillCron = "every ten minutes"
	s := NewScheduler(context.Background(), cfg,
		service_mocks.NewMockCurrencyServiceInterface(ctrl),
		service_mocks.NewMockTransactionServiceInterface(ctrl))

	err := s.RegisterAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register backfill")
}

func TestRefreshRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currency := service_mocks.NewMockCurrencyServiceInterface(ctrl)
	currency.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		assert.True(t, strings.HasPrefix(services.CorrelationID(ctx), "rate_refresh-"))
		return errors.New("provider down")
	})

	s := NewScheduler(context.Background(), testConfig(), currency, service_mocks.NewMockTransactionServiceInterface(ctrl))

	assert.NotPanics(t, s.RefreshRates)
}

func TestBackfillBaseAmounts_UsesBatchSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := service_mocks.NewMockTransactionServiceInterface(ctrl)
	gomock.InOrder(
		transactions.EXPECT().BackfillBaseAmounts(gomock.Any(), 25).Return(7, nil),
		transactions.EXPECT().BackfillBaseAmounts(gomock.Any(), 25).Return(0, errors.New("rates unavailable")),
	)

	s := NewScheduler(context.Background(), testConfig(), service_mocks.NewMockCurrencyServiceInterface(ctrl), transactions)

	s.BackfillBaseAmounts()
	s.BackfillBaseAmounts()
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewScheduler(context.Background(), testConfig(),
		service_mocks.NewMockCurrencyServiceInterface(ctrl),
		service_mocks.NewMockTransactionServiceInterface(ctrl))
	require.NoError(t, s.RegisterAll())

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
