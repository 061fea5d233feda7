package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	portsrepo "github.com/sarrafhub/exchange_backend/internal/core/ports/repositories"
	"github.com/sarrafhub/exchange_backend/internal/models"
	"github.com/sarrafhub/exchange_backend/internal/utils/mapping"
)

const transferColumns = `transfer_id, sender_id, receiver_office_id, destination_city, from_currency_code, to_currency_code, amount, exchange_rate, commission_rate, commission_amount, receiver_total, rule_applied, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for transfers.
func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

func scanTransfer(row pgx.Row) (models.Transfer, error) {
	var t models.Transfer
	err := row.Scan(
		&t.TransferID,
		&t.SenderID,
		&t.ReceiverOfficeID,
		&t.DestinationCity,
		&t.FromCurrencyCode,
		&t.ToCurrencyCode,
		&t.Amount,
		&t.ExchangeRate,
		&t.CommissionRate,
		&t.CommissionAmount,
		&t.ReceiverTotal,
		&t.RuleApplied,
		&t.Status,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// SaveTransfer persists a new transfer.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	modelTransfer := mapping.ToModelTransfer(transfer)

	query := `
		INSERT INTO transfers (transfer_id, sender_id, receiver_office_id, destination_city, from_currency_code, to_currency_code, amount, exchange_rate, commission_rate, commission_amount, receiver_total, rule_applied, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelTransfer.TransferID,
		modelTransfer.SenderID,
		modelTransfer.ReceiverOfficeID,
		modelTransfer.DestinationCity,
		modelTransfer.FromCurrencyCode,
		modelTransfer.ToCurrencyCode,
		modelTransfer.Amount,
		modelTransfer.ExchangeRate,
		modelTransfer.CommissionRate,
		modelTransfer.CommissionAmount,
		modelTransfer.ReceiverTotal,
		modelTransfer.RuleApplied,
		modelTransfer.Status,
		modelTransfer.CreatedAt,
		modelTransfer.CreatedBy,
		modelTransfer.LastUpdatedAt,
		modelTransfer.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save transfer %s: %w", modelTransfer.TransferID, err)
	}
	return nil
}

// FindTransferByID retrieves a transfer by its ID.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := fmt.Sprintf(`SELECT %s FROM transfers WHERE transfer_id = $1;`, transferColumns)

	modelTransfer, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}

	domainTransfer := mapping.ToDomainTransfer(modelTransfer)
	return &domainTransfer, nil
}

// ListTransfersBySender retrieves transfers created by a user, newest first,
// starting strictly before the given cursor time.
func (r *PgxTransferRepository) ListTransfersBySender(ctx context.Context, senderID string, before time.Time, limit int) ([]domain.Transfer, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM transfers
		WHERE sender_id = $1 AND created_at < $2
		ORDER BY created_at DESC
		LIMIT $3;
	`, transferColumns)

	rows, err := r.Pool.Query(ctx, query, senderID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	modelTransfers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transfer, error) {
		return scanTransfer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transfers: %w", err)
	}

	return mapping.ToDomainTransferSlice(modelTransfers), nil
}
