package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketTransaction is the database row model for the market_transactions table.
type MarketTransaction struct {
	TransactionID    int64           `db:"transaction_id"`
	BuyerID          string          `db:"buyer_id"`
	SellerID         string          `db:"seller_id"`
	SystemAccount    string          `db:"system_account"`
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	Amount           decimal.Decimal `db:"amount"`
	TotalCost        decimal.Decimal `db:"total_cost"`
	Rate             decimal.Decimal `db:"rate"`
	Commission       decimal.Decimal `db:"commission"`
	CreatedAt        time.Time       `db:"created_at"`
}
