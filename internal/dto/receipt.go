package dto

import (
	"time"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMarketTransactionRequest defines the data the trade-settlement flow
// submits once a marketplace trade completes.
type CreateMarketTransactionRequest struct {
	BuyerID          string          `json:"buyerID" binding:"required,uuid"`
	SellerID         string          `json:"sellerID" binding:"required,uuid"`
	SystemAccount    string          `json:"systemAccount" binding:"required"`
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,uppercase,len=3"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,uppercase,len=3"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	TotalCost        decimal.Decimal `json:"totalCost" binding:"required"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	Commission       decimal.Decimal `json:"commission"`
}

// MarketTransactionResponse defines the data returned for a completed trade.
type MarketTransactionResponse struct {
	TransactionID    int64           `json:"transactionID"`
	BuyerID          string          `json:"buyerID"`
	SellerID         string          `json:"sellerID"`
	SystemAccount    string          `json:"systemAccount"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Amount           decimal.Decimal `json:"amount"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	Rate             decimal.Decimal `json:"rate"`
	Commission       decimal.Decimal `json:"commission"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToMarketTransactionResponse converts a domain.MarketTransaction to its response DTO
func ToMarketTransactionResponse(tx *domain.MarketTransaction) MarketTransactionResponse {
	return MarketTransactionResponse{
		TransactionID:    tx.TransactionID,
		BuyerID:          tx.BuyerID,
		SellerID:         tx.SellerID,
		SystemAccount:    tx.SystemAccount,
		FromCurrencyCode: tx.FromCurrencyCode,
		ToCurrencyCode:   tx.ToCurrencyCode,
		Amount:           tx.Amount,
		TotalCost:        tx.TotalCost,
		Rate:             tx.Rate,
		Commission:       tx.Commission,
		CreatedAt:        tx.CreatedAt,
	}
}

// VerificationResponse is the public payload of GET /verify/market/:transactionID.
type VerificationResponse struct {
	TransactionID    int64  `json:"transactionID"`
	VerificationHash string `json:"verificationHash"`
	Verified         bool   `json:"verified"`
}
