package repositories

import (
	"context"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
)

// CommissionRuleReader defines read operations for office commission rules.
type CommissionRuleReader interface {
	// ListRulesByOffice retrieves all commission rules configured by an office.
	ListRulesByOffice(ctx context.Context, officeID string) ([]domain.CommissionRule, error)

	// FindRuleByOfficeAndCity retrieves the rule an office configured for a
	// destination city, or apperrors.ErrNotFound if none exists.
	FindRuleByOfficeAndCity(ctx context.Context, officeID string, city string) (*domain.CommissionRule, error)
}

// CommissionRuleWriter defines write operations for office commission rules.
type CommissionRuleWriter interface {
	// UpsertRule inserts the rule or, when the office already has a rule for
	// the same city, atomically replaces its rate. Returns the stored rule.
	UpsertRule(ctx context.Context, rule domain.CommissionRule) (*domain.CommissionRule, error)

	// DeleteRule removes a rule owned by the office. Deleting an absent rule
	// is not an error; the already-absent state is the desired outcome.
	DeleteRule(ctx context.Context, officeID string, ruleID string) error
}

// CommissionRuleRepositoryFacade combines all commission rule repository interfaces
type CommissionRuleRepositoryFacade interface {
	CommissionRuleReader
	CommissionRuleWriter
}
