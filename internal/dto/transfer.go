package dto

import (
	"time"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed to create an inter-office transfer.
type CreateTransferRequest struct {
	ReceiverOfficeID string          `json:"receiverOfficeID" binding:"required,uuid"`
	DestinationCity  string          `json:"destinationCity" binding:"required,min=2"`
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,uppercase,len=3"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,uppercase,len=3"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID       string          `json:"transferID"`
	SenderID         string          `json:"senderID"`
	ReceiverOfficeID string          `json:"receiverOfficeID"`
	DestinationCity  string          `json:"destinationCity"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Amount           decimal.Decimal `json:"amount"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	CommissionRate   decimal.Decimal `json:"commissionRate"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	ReceiverTotal    decimal.Decimal `json:"receiverTotal"`
	RuleApplied      bool            `json:"ruleApplied"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToTransferResponse converts a domain.Transfer to its response DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:       t.TransferID,
		SenderID:         t.SenderID,
		ReceiverOfficeID: t.ReceiverOfficeID,
		DestinationCity:  t.DestinationCity,
		FromCurrencyCode: t.FromCurrencyCode,
		ToCurrencyCode:   t.ToCurrencyCode,
		Amount:           t.Amount,
		ExchangeRate:     t.ExchangeRate,
		CommissionRate:   t.CommissionRate,
		CommissionAmount: t.CommissionAmount,
		ReceiverTotal:    t.ReceiverTotal,
		RuleApplied:      t.RuleApplied,
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
	}
}

// ListTransfersParams holds paging parameters for transfer listing.
type ListTransfersParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	NextToken string `form:"nextToken" binding:"omitempty"`
}

// ListTransfersResponse is a page of transfers plus the cursor for the next page.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	NextToken string             `json:"nextToken,omitempty"`
}
