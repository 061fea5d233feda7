package mapping

import (
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/models"
)

// ToModelMarketTransaction converts a domain.MarketTransaction to its database row model.
func ToModelMarketTransaction(d domain.MarketTransaction) models.MarketTransaction {
	return models.MarketTransaction{
		TransactionID:    d.TransactionID,
		BuyerID:          d.BuyerID,
		SellerID:         d.SellerID,
		SystemAccount:    d.SystemAccount,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		Amount:           d.Amount,
		TotalCost:        d.TotalCost,
		Rate:             d.Rate,
		Commission:       d.Commission,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainMarketTransaction converts a market transaction row model to the domain type.
func ToDomainMarketTransaction(m models.MarketTransaction) domain.MarketTransaction {
	return domain.MarketTransaction{
		TransactionID:    m.TransactionID,
		BuyerID:          m.BuyerID,
		SellerID:         m.SellerID,
		SystemAccount:    m.SystemAccount,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Amount:           m.Amount,
		TotalCost:        m.TotalCost,
		Rate:             m.Rate,
		Commission:       m.Commission,
		CreatedAt:        m.CreatedAt,
	}
}
