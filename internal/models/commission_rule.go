package models

import "github.com/shopspring/decimal"

// CommissionRule is the database row model for the office_commission_rules table.
type CommissionRule struct {
	RuleID         string          `db:"rule_id"`
	OfficeID       string          `db:"office_id"`
	City           string          `db:"city"`
	CommissionRate decimal.Decimal `db:"commission_rate"`
	AuditFields
}
