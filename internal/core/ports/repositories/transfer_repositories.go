package repositories

import (
	"context"
	"time"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
)

// TransferReader defines read operations for transfers.
type TransferReader interface {
	// FindTransferByID retrieves a transfer by its ID.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// ListTransfersBySender retrieves transfers created by a user, newest
	// first, starting strictly before the given cursor time.
	ListTransfersBySender(ctx context.Context, senderID string, before time.Time, limit int) ([]domain.Transfer, error)
}

// TransferWriter defines write operations for transfers.
type TransferWriter interface {
	// SaveTransfer persists a new transfer.
	SaveTransfer(ctx context.Context, transfer domain.Transfer) error
}

// TransferRepositoryFacade combines all transfer repository interfaces
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
