package mapping

import (
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/models"
)

// ToModelTransfer converts a domain.Transfer to its database row model.
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:       d.TransferID,
		SenderID:         d.SenderID,
		ReceiverOfficeID: d.ReceiverOfficeID,
		DestinationCity:  d.DestinationCity,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		Amount:           d.Amount,
		ExchangeRate:     d.ExchangeRate,
		CommissionRate:   d.CommissionRate,
		CommissionAmount: d.CommissionAmount,
		ReceiverTotal:    d.ReceiverTotal,
		RuleApplied:      d.RuleApplied,
		Status:           string(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransfer converts a transfer row model to the domain type.
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:       m.TransferID,
		SenderID:         m.SenderID,
		ReceiverOfficeID: m.ReceiverOfficeID,
		DestinationCity:  m.DestinationCity,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Amount:           m.Amount,
		ExchangeRate:     m.ExchangeRate,
		CommissionRate:   m.CommissionRate,
		CommissionAmount: m.CommissionAmount,
		ReceiverTotal:    m.ReceiverTotal,
		RuleApplied:      m.RuleApplied,
		Status:           domain.TransferStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransferSlice converts a slice of transfer row models.
func ToDomainTransferSlice(ms []models.Transfer) []domain.Transfer {
	ds := make([]domain.Transfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransfer(m)
	}
	return ds
}
