package domain

import "github.com/shopspring/decimal"

// TransferStatus indicates the lifecycle state of a transfer.
type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferCompleted TransferStatus = "COMPLETED"
	TransferCancelled TransferStatus = "CANCELLED"
)

// Transfer represents an inter-office money transfer. Commission is additive
// revenue to the receiving office: the receiver sees amount + commission, the
// sender is never debited for it.
type Transfer struct {
	TransferID       string          `json:"transferID"` // Primary Key (UUID)
	SenderID         string          `json:"senderID"`   // FK -> users.user_id
	ReceiverOfficeID string          `json:"receiverOfficeID"`
	DestinationCity  string          `json:"destinationCity"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Amount           decimal.Decimal `json:"amount"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"` // 1 for same-currency transfers
	CommissionRate   decimal.Decimal `json:"commissionRate"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	ReceiverTotal    decimal.Decimal `json:"receiverTotal"`
	RuleApplied      bool            `json:"ruleApplied"` // False when no city rule existed and zero commission was an explicit decision
	Status           TransferStatus  `json:"status"`
	AuditFields
}
