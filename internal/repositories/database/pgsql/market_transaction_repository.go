package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	portsrepo "github.com/sarrafhub/exchange_backend/internal/core/ports/repositories"
	"github.com/sarrafhub/exchange_backend/internal/models"
	"github.com/sarrafhub/exchange_backend/internal/utils/mapping"
)

type PgxMarketTransactionRepository struct {
	BaseRepository
}

// newPgxMarketTransactionRepository creates a new repository for completed trades.
func newPgxMarketTransactionRepository(pool *pgxpool.Pool) portsrepo.MarketTransactionRepositoryFacade {
	return &PgxMarketTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MarketTransactionRepositoryFacade = (*PgxMarketTransactionRepository)(nil)

// SaveMarketTransaction persists a settled trade. The transaction ID is
// assigned by the database sequence and returned on the stored record.
func (r *PgxMarketTransactionRepository) SaveMarketTransaction(ctx context.Context, tx domain.MarketTransaction) (*domain.MarketTransaction, error) {
	modelTx := mapping.ToModelMarketTransaction(tx)

	query := `
		INSERT INTO market_transactions (buyer_id, seller_id, system_account, from_currency_code, to_currency_code, amount, total_cost, rate, commission, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING transaction_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelTx.BuyerID,
		modelTx.SellerID,
		modelTx.SystemAccount,
		modelTx.FromCurrencyCode,
		modelTx.ToCurrencyCode,
		modelTx.Amount,
		modelTx.TotalCost,
		modelTx.Rate,
		modelTx.Commission,
		modelTx.CreatedAt,
	).Scan(&modelTx.TransactionID)

	if err != nil {
		return nil, fmt.Errorf("failed to save market transaction: %w", err)
	}

	domainTx := mapping.ToDomainMarketTransaction(modelTx)
	return &domainTx, nil
}

// FindMarketTransactionByID retrieves a completed trade by its ID.
func (r *PgxMarketTransactionRepository) FindMarketTransactionByID(ctx context.Context, transactionID int64) (*domain.MarketTransaction, error) {
	query := `
		SELECT transaction_id, buyer_id, seller_id, system_account, from_currency_code, to_currency_code, amount, total_cost, rate, commission, created_at
		FROM market_transactions
		WHERE transaction_id = $1;
	`

	var modelTx models.MarketTransaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTx.TransactionID,
		&modelTx.BuyerID,
		&modelTx.SellerID,
		&modelTx.SystemAccount,
		&modelTx.FromCurrencyCode,
		&modelTx.ToCurrencyCode,
		&modelTx.Amount,
		&modelTx.TotalCost,
		&modelTx.Rate,
		&modelTx.Commission,
		&modelTx.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find market transaction %d: %w", transactionID, err)
	}

	domainTx := mapping.ToDomainMarketTransaction(modelTx)
	return &domainTx, nil
}
