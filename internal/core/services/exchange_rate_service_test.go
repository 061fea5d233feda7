package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	portssvc "github.com/sarrafhub/exchange_backend/internal/core/ports/services"
	"github.com/sarrafhub/exchange_backend/internal/core/services"
	"github.com/sarrafhub/exchange_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencySvc  *MockCurrencyReader
	service          portssvc.ExchangeRateSvcFacade
	validRateRequest dto.CreateExchangeRateRequest
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencySvc = new(MockCurrencyReader)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencySvc)

	suite.validRateRequest = dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "LYD",
		Rate:             decimal.RequireFromString("4.85"),
		DateEffective:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- CreateExchangeRate ---

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	ctx := context.Background()
	req := suite.validRateRequest

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "LYD").Return(&domain.Currency{CurrencyCode: "LYD"}, nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.FromCurrencyCode == "USD" &&
			r.ToCurrencyCode == "LYD" &&
			r.Rate.Equal(req.Rate) &&
			r.ExchangeRateID != ""
	})).Return(nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal("USD", rate.FromCurrencyCode)
	suite.True(rate.Rate.Equal(req.Rate))

	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NonPositiveRate() {
	ctx := context.Background()
	req := suite.validRateRequest
	req.Rate = decimal.Zero

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SamePair() {
	ctx := context.Background()
	req := suite.validRateRequest
	req.ToCurrencyCode = req.FromCurrencyCode

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_UnknownFromCurrency() {
	ctx := context.Background()
	req := suite.validRateRequest

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_UnknownToCurrency() {
	ctx := context.Background()
	req := suite.validRateRequest

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "LYD").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetExchangeRate ---

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Success() {
	ctx := context.Background()
	expected := &domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "LYD",
		Rate:             decimal.RequireFromString("4.85"),
	}

	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "LYD").Return(expected, nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "USD", "LYD")

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_NormalizesCase() {
	ctx := context.Background()
	expected := &domain.ExchangeRate{FromCurrencyCode: "USD", ToCurrencyCode: "LYD"}

	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "LYD").Return(expected, nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "usd", "lyd")

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_InvalidCode() {
	ctx := context.Background()

	rate, err := suite.service.GetExchangeRate(ctx, "US", "LYD")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_NotFound() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "TND").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "USD", "TND")

	// No silent 1:1 fallback; the caller decides what an unknown pair means.
	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "LYD").Return(nil, expectedErr).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "USD", "LYD")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, expectedErr)
}

func TestExchangeRateService(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
