package mapping

import (
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/models"
)

// ToModelCommissionRule converts a domain.CommissionRule to its database row model.
func ToModelCommissionRule(d domain.CommissionRule) models.CommissionRule {
	return models.CommissionRule{
		RuleID:         d.RuleID,
		OfficeID:       d.OfficeID,
		City:           d.City,
		CommissionRate: d.CommissionRate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCommissionRule converts a commission rule row model to the domain type.
func ToDomainCommissionRule(m models.CommissionRule) domain.CommissionRule {
	return domain.CommissionRule{
		RuleID:         m.RuleID,
		OfficeID:       m.OfficeID,
		City:           m.City,
		CommissionRate: m.CommissionRate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCommissionRuleSlice converts a slice of commission rule row models.
func ToDomainCommissionRuleSlice(ms []models.CommissionRule) []domain.CommissionRule {
	ds := make([]domain.CommissionRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCommissionRule(m)
	}
	return ds
}
