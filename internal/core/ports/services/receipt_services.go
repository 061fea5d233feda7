package services

import (
	"context"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/dto"
)

// MarketTransactionSvc records completed marketplace trades.
type MarketTransactionSvc interface {
	// RecordMarketTransaction persists a settled trade and returns it with
	// its database-assigned ID.
	RecordMarketTransaction(ctx context.Context, req dto.CreateMarketTransactionRequest) (*domain.MarketTransaction, error)

	// GetMarketTransactionByID retrieves a settled trade.
	GetMarketTransactionByID(ctx context.Context, transactionID int64) (*domain.MarketTransaction, error)
}

// ReceiptSvc assembles and renders printable market receipts.
type ReceiptSvc interface {
	// PrepareMarketReceipt builds the display-ready receipt for a trade.
	// Account lookups degrade to a sentinel value instead of failing the
	// whole receipt.
	PrepareMarketReceipt(ctx context.Context, transactionID int64) (*domain.MarketReceipt, error)

	// RenderMarketReceipt renders the receipt as a thermal-printer-sized PNG.
	RenderMarketReceipt(ctx context.Context, transactionID int64) ([]byte, error)

	// VerifyMarketTransaction recomputes the verification hash for a trade so
	// the public verify page can confirm a printed receipt is genuine.
	VerifyMarketTransaction(ctx context.Context, transactionID int64) (*dto.VerificationResponse, error)
}

// ReceiptSvcFacade combines trade recording with receipt generation
type ReceiptSvcFacade interface {
	MarketTransactionSvc
	ReceiptSvc
}
