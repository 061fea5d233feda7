package domain

import "github.com/shopspring/decimal"

// CommissionRule maps a destination city to the commission percentage an
// office charges for transfers to that city. (office_id, city) is a natural
// key: saving a rule for an existing city replaces the stored rate in place.
type CommissionRule struct {
	RuleID         string          `json:"ruleID"`   // Primary Key (UUID)
	OfficeID       string          `json:"officeID"` // FK -> users.user_id (office account)
	City           string          `json:"city"`
	CommissionRate decimal.Decimal `json:"commissionRate"` // Percent, within [0, 10]
	AuditFields
}

// CommissionQuote is the outcome of resolving an office's rule for a
// destination city and applying it to a transfer amount.
type CommissionQuote struct {
	Rate          decimal.Decimal `json:"rate"`
	Commission    decimal.Decimal `json:"commission"`
	ReceiverTotal decimal.Decimal `json:"receiverTotal"` // amount + commission; the sender is never debited for it
	RuleApplied   bool            `json:"ruleApplied"`   // False when no rule existed for the city
}
