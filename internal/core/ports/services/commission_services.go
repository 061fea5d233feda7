package services

import (
	"context"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CommissionRuleReaderSvc defines read operations for office commission rules.
type CommissionRuleReaderSvc interface {
	// ListOfficeRules retrieves all commission rules configured by an office.
	ListOfficeRules(ctx context.Context, officeID string) ([]domain.CommissionRule, error)
}

// CommissionRuleWriterSvc defines write operations for office commission rules.
type CommissionRuleWriterSvc interface {
	// UpsertOfficeRule creates a commission rule for a destination city, or
	// replaces the rate when the office already has a rule for that city.
	UpsertOfficeRule(ctx context.Context, officeID string, req dto.UpsertCommissionRuleRequest) (*domain.CommissionRule, error)

	// DeleteOfficeRule removes a rule. Deleting an absent rule succeeds.
	DeleteOfficeRule(ctx context.Context, officeID string, ruleID string) error
}

// CommissionCalculatorSvc resolves and applies per-city commission.
type CommissionCalculatorSvc interface {
	// QuoteCommission resolves the office's rule for the destination city and
	// returns the rate, the commission on the amount, the receiver total, and
	// whether a rule was found. A missing rule quotes zero commission.
	QuoteCommission(ctx context.Context, officeID string, city string, amount decimal.Decimal) (*domain.CommissionQuote, error)
}

// CommissionSvcFacade combines all commission service interfaces
type CommissionSvcFacade interface {
	CommissionRuleReaderSvc
	CommissionRuleWriterSvc
	CommissionCalculatorSvc
}
