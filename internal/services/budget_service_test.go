package services

import (
	"context"
	"errors"
	"testing"

	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"
	"finance-analytics/internal/repositories/repository_mocks"
	"finance-analytics/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	budgetRepo *repository_mocks.MockBudgetRepositoryInterface
	currency   *service_mocks.MockCurrencyServiceInterface
	service    BudgetServiceInterface
	ctx        context.Context
	ownerID    uuid.UUID
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceSuite))
}

func (s *BudgetServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.currency = service_mocks.NewMockCurrencyServiceInterface(s.ctrl)
	s.service = NewBudgetService(s.budgetRepo, s.currency, []int{100, 50, 80})
	s.ctx = context.Background()
	s.ownerID = uuid.New()
}

func (s *BudgetServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetServiceSuite) TestCreateBudget_ConvertsLimitOnce() {
	s.currency.EXPECT().ToBase(gomock.Any(), decimal.NewFromInt(552), "eur").Return(decimal.NewFromInt(600), nil)
	s.budgetRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, budget *models.Budget) error {
			budget.ID = uuid.New()
			return nil
		})

	budget, err := s.service.CreateBudget(s.ctx, s.ownerID, " groceries ", 1, 2026, decimal.NewFromInt(552), "eur", []int{100, 80, 80})

	s.Require().NoError(err)
	s.Equal("groceries", budget.Category)
	s.Equal("EUR", budget.Currency)
	s.True(budget.LimitBase.Equal(decimal.NewFromInt(600)))
	s.Equal(models.ThresholdList{80, 100}, budget.Thresholds)
}

func (s *BudgetServiceSuite) TestCreateBudget_UsesConfiguredDefaults() {
	s.currency.EXPECT().ToBase(gomock.Any(), gomock.Any(), "USD").Return(decimal.NewFromInt(300), nil)
	s.budgetRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	budget, err := s.service.CreateBudget(s.ctx, s.ownerID, "dining", 2, 2026, decimal.NewFromInt(300), "USD", nil)

	s.Require().NoError(err)
	s.Equal(models.ThresholdList{50, 80, 100}, budget.Thresholds)
}

func (s *BudgetServiceSuite) TestCreateBudget_InvalidDefaultsAreIgnored() {
	service := NewBudgetService(s.budgetRepo, s.currency, []int{0, 80})
	s.currency.EXPECT().ToBase(gomock.Any(), gomock.Any(), "USD").Return(decimal.NewFromInt(300), nil)
	s.budgetRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	budget, err := service.CreateBudget(s.ctx, s.ownerID, "dining", 2, 2026, decimal.NewFromInt(300), "USD", nil)

	s.Require().NoError(err)
	s.Empty(budget.Thresholds)
	s.Equal(models.DefaultThresholds, budget.EffectiveThresholds())
}

func (s *BudgetServiceSuite) TestCreateBudget_Validation() {
	testCases := []struct {
		name       string
		month      int
		limit      decimal.Decimal
		thresholds []int
		expected   error
	}{
		{"month out of range", 13, decimal.NewFromInt(10), nil, models.ErrInvalidMonth},
		{"zero limit", 1, decimal.Zero, nil, models.ErrInvalidBudgetLimit},
		{"negative limit", 1, decimal.NewFromInt(-5), nil, models.ErrInvalidBudgetLimit},
		{"threshold out of range", 1, decimal.NewFromInt(10), []int{80, 1500}, models.ErrInvalidThreshold},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateBudget(s.ctx, s.ownerID, "dining", tc.month, 2026, tc.limit, "USD", tc.thresholds)
			s.ErrorIs(err, tc.expected)
			s.True(models.IsInvalidInput(err))
		})
	}
}

func (s *BudgetServiceSuite) TestCreateBudget_RatesUnavailable() {
	s.currency.EXPECT().ToBase(gomock.Any(), gomock.Any(), "JPY").Return(decimal.Zero, models.ErrRatesUnavailable)

	_, err := s.service.CreateBudget(s.ctx, s.ownerID, "travel", 3, 2026, decimal.NewFromInt(90000), "JPY", nil)

	s.True(models.IsUpstreamUnavailable(err))
}

func (s *BudgetServiceSuite) TestCreateBudget_Duplicate() {
	s.currency.EXPECT().ToBase(gomock.Any(), gomock.Any(), "USD").Return(decimal.NewFromInt(100), nil)
	s.budgetRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrBudgetAlreadyExists)

	_, err := s.service.CreateBudget(s.ctx, s.ownerID, "dining", 2, 2026, decimal.NewFromInt(100), "USD", nil)

	s.ErrorIs(err, repositories.ErrBudgetAlreadyExists)
}

func (s *BudgetServiceSuite) TestGetBudget_OtherOwnerIsNotFound() {
	budgetID := uuid.New()
	s.budgetRepo.EXPECT().GetByID(gomock.Any(), budgetID).Return(&models.Budget{ID: budgetID, OwnerID: uuid.New()}, nil)

	_, err := s.service.GetBudget(s.ctx, s.ownerID, budgetID)

	s.ErrorIs(err, repositories.ErrBudgetNotFound)
}

func (s *BudgetServiceSuite) TestDeleteBudget() {
	budgetID := uuid.New()
	s.budgetRepo.EXPECT().GetByID(gomock.Any(), budgetID).Return(&models.Budget{ID: budgetID, OwnerID: s.ownerID}, nil)
	s.budgetRepo.EXPECT().Delete(gomock.Any(), budgetID).Return(nil)

	s.NoError(s.service.DeleteBudget(s.ctx, s.ownerID, budgetID))
}

func (s *BudgetServiceSuite) TestDeleteBudget_RepositoryError() {
	budgetID := uuid.New()
	s.budgetRepo.EXPECT().GetByID(gomock.Any(), budgetID).Return(&models.Budget{ID: budgetID, OwnerID: s.ownerID}, nil)
	s.budgetRepo.EXPECT().Delete(gomock.Any(), budgetID).Return(errors.New("locked"))

	s.Error(s.service.DeleteBudget(s.ctx, s.ownerID, budgetID))
}
