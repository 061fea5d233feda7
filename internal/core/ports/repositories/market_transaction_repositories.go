package repositories

import (
	"context"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
)

// MarketTransactionReader defines read operations for completed trades.
type MarketTransactionReader interface {
	// FindMarketTransactionByID retrieves a completed trade by its ID.
	FindMarketTransactionByID(ctx context.Context, transactionID int64) (*domain.MarketTransaction, error)
}

// MarketTransactionWriter defines write operations for completed trades.
type MarketTransactionWriter interface {
	// SaveMarketTransaction persists a settled trade and returns it with the
	// database-assigned transaction ID.
	SaveMarketTransaction(ctx context.Context, tx domain.MarketTransaction) (*domain.MarketTransaction, error)
}

// MarketTransactionRepositoryFacade combines all market transaction repository interfaces
type MarketTransactionRepositoryFacade interface {
	MarketTransactionReader
	MarketTransactionWriter
}
