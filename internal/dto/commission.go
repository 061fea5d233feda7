package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	commissioncalc "github.com/sarrafhub/exchange_backend/internal/utils/commission"
	"github.com/shopspring/decimal"
)

// UpsertCommissionRuleRequest defines the body of POST /office-commissions.
// A zero rate is valid (free transfers to that city), so the rate field must
// not carry the `required` tag; range checking is done by the custom
// commission_rate validator.
type UpsertCommissionRuleRequest struct {
	City           string          `json:"city" binding:"required,min=2"`
	CommissionRate decimal.Decimal `json:"commissionRate" binding:"commission_rate"`
}

// CommissionRuleResponse defines the data returned for a commission rule.
type CommissionRuleResponse struct {
	RuleID         string          `json:"id"`
	City           string          `json:"city"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
}

// ToCommissionRuleResponse converts a domain.CommissionRule to its response DTO
func ToCommissionRuleResponse(r *domain.CommissionRule) CommissionRuleResponse {
	return CommissionRuleResponse{
		RuleID:         r.RuleID,
		City:           r.City,
		CommissionRate: r.CommissionRate,
	}
}

// ToListCommissionRuleResponse converts a slice of domain rules to response DTOs
func ToListCommissionRuleResponse(rules []domain.CommissionRule) []CommissionRuleResponse {
	res := make([]CommissionRuleResponse, len(rules))
	for i, r := range rules {
		res[i] = ToCommissionRuleResponse(&r)
	}
	return res
}

// RegisterCustomValidations wires DTO-level validators into gin's binding
// engine. Called once from main.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("commission_rate", validateCommissionRate)
	}
}

func validateCommissionRate(fl validator.FieldLevel) bool {
	rate, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return commissioncalc.ValidateRate(rate) == nil
}
