package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketTransaction represents a completed currency trade on the marketplace.
// It is produced by the trade-matching flow and is immutable once created;
// the receipt pipeline only ever reads it.
type MarketTransaction struct {
	TransactionID    int64           `json:"transactionID"` // Primary Key (sequence)
	BuyerID          string          `json:"buyerID"`       // FK -> users.user_id
	SellerID         string          `json:"sellerID"`      // FK -> users.user_id
	SystemAccount    string          `json:"systemAccount"` // Clearing account number the trade settled through
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Amount           decimal.Decimal `json:"amount"`     // Traded amount in the source currency
	TotalCost        decimal.Decimal `json:"totalCost"`  // Purchase value in the destination currency
	Rate             decimal.Decimal `json:"rate"`       // Agreed exchange rate
	Commission       decimal.Decimal `json:"commission"` // Marketplace commission, destination currency
	CreatedAt        time.Time       `json:"createdAt"`
}
