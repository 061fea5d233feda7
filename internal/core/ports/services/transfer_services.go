package services

import (
	"context"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/dto"
)

// TransferReaderSvc defines read operations for transfers.
type TransferReaderSvc interface {
	// GetTransferByID retrieves a transfer by its ID.
	GetTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// ListTransfersBySender retrieves a page of a user's transfers, newest first.
	ListTransfersBySender(ctx context.Context, senderID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error)
}

// TransferWriterSvc defines write operations for transfers.
type TransferWriterSvc interface {
	// CreateTransfer prices and persists an inter-office transfer: it resolves
	// the exchange rate for the currency pair and the receiving office's
	// commission rule for the destination city.
	CreateTransfer(ctx context.Context, senderID string, req dto.CreateTransferRequest) (*domain.Transfer, error)
}

// TransferSvcFacade combines all transfer service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}
