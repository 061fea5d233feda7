package models

import "github.com/shopspring/decimal"

// Transfer is the database row model for the transfers table.
type Transfer struct {
	TransferID       string          `db:"transfer_id"`
	SenderID         string          `db:"sender_id"`
	ReceiverOfficeID string          `db:"receiver_office_id"`
	DestinationCity  string          `db:"destination_city"`
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	Amount           decimal.Decimal `db:"amount"`
	ExchangeRate     decimal.Decimal `db:"exchange_rate"`
	CommissionRate   decimal.Decimal `db:"commission_rate"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
	ReceiverTotal    decimal.Decimal `db:"receiver_total"`
	RuleApplied      bool            `db:"rule_applied"`
	Status           string          `db:"status"`
	AuditFields
}
