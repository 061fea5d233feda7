package pgsql

import (
	portsrepo "github.com/sarrafhub/exchange_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:           newPgxUserRepository(dbPool),
		CurrencyRepo:       newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo:   newPgxExchangeRateRepository(dbPool),
		MarketTxRepo:       newPgxMarketTransactionRepository(dbPool),
		CommissionRuleRepo: newPgxCommissionRuleRepository(dbPool),
		TransferRepo:       newPgxTransferRepository(dbPool),
	}
}
