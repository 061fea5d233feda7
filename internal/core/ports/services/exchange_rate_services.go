package services

import (
	"context"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rates.
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the effective rate for a currency pair. There
	// is no implicit 1:1 fallback; an unknown pair is apperrors.ErrNotFound.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rates.
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate records a new rate for a currency pair.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
