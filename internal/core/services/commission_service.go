package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	portsrepo "github.com/sarrafhub/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/sarrafhub/exchange_backend/internal/core/ports/services"
	"github.com/sarrafhub/exchange_backend/internal/dto"
	"github.com/sarrafhub/exchange_backend/internal/middleware"
	"github.com/sarrafhub/exchange_backend/internal/platform/events"
	commissioncalc "github.com/sarrafhub/exchange_backend/internal/utils/commission"
	"github.com/shopspring/decimal"
)

// commissionService manages per-city commission rules and applies them to
// transfer amounts.
type commissionService struct {
	ruleRepo  portsrepo.CommissionRuleRepositoryFacade
	userRepo  portsrepo.UserReader
	publisher events.Publisher
}

// NewCommissionService creates a new commission service.
func NewCommissionService(ruleRepo portsrepo.CommissionRuleRepositoryFacade, userRepo portsrepo.UserReader, publisher events.Publisher) portssvc.CommissionSvcFacade {
	return &commissionService{
		ruleRepo:  ruleRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *commissionService) ListOfficeRules(ctx context.Context, officeID string) ([]domain.CommissionRule, error) {
	rules, err := s.ruleRepo.ListRulesByOffice(ctx, officeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission rules in service: %w", err)
	}
	if rules == nil {
		return []domain.CommissionRule{}, nil
	}
	return rules, nil
}

func (s *commissionService) UpsertOfficeRule(ctx context.Context, officeID string, req dto.UpsertCommissionRuleRequest) (*domain.CommissionRule, error) {
	// Binding tags already cover these, but the service is also called from
	// non-HTTP paths, so the invariants are enforced here too.
	city := strings.TrimSpace(req.City)
	if len([]rune(city)) < 2 {
		return nil, fmt.Errorf("%w: city must be at least 2 characters", apperrors.ErrValidation)
	}
	if err := commissioncalc.ValidateRate(req.CommissionRate); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	office, err := s.userRepo.FindUserByID(ctx, officeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: office '%s' not found", apperrors.ErrValidation, officeID)
		}
		return nil, fmt.Errorf("failed to validate office for commission rule: %w", err)
	}
	if !office.IsOffice {
		return nil, fmt.Errorf("%w: only office accounts can configure commission rules", apperrors.ErrValidation)
	}

	now := time.Now()
	rule := domain.CommissionRule{
		RuleID:         uuid.NewString(),
		OfficeID:       officeID,
		City:           city,
		CommissionRate: req.CommissionRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     officeID,
			LastUpdatedAt: now,
			LastUpdatedBy: officeID,
		},
	}

	// (office_id, city) is a natural key: the repository replaces the rate in
	// place when the office already has a rule for this city.
	stored, err := s.ruleRepo.UpsertRule(ctx, rule)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert commission rule in service: %w", err)
	}

	s.publishRuleEvent(ctx, "upserted", stored.OfficeID, stored.RuleID, stored.City)

	return stored, nil
}

func (s *commissionService) DeleteOfficeRule(ctx context.Context, officeID string, ruleID string) error {
	// Deleting an absent rule succeeds; the already-absent state is the
	// desired outcome.
	if err := s.ruleRepo.DeleteRule(ctx, officeID, ruleID); err != nil {
		return fmt.Errorf("failed to delete commission rule in service: %w", err)
	}

	s.publishRuleEvent(ctx, "deleted", officeID, ruleID, "")

	return nil
}

func (s *commissionService) QuoteCommission(ctx context.Context, officeID string, city string, amount decimal.Decimal) (*domain.CommissionQuote, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: transfer amount must not be negative", apperrors.ErrValidation)
	}

	rule, err := s.ruleRepo.FindRuleByOfficeAndCity(ctx, officeID, city)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No rule for the city: zero commission, flagged so the caller can
			// distinguish "free by rule" from "no rule existed".
			return &domain.CommissionQuote{
				Rate:          decimal.Zero,
				Commission:    decimal.Zero,
				ReceiverTotal: amount,
				RuleApplied:   false,
			}, nil
		}
		return nil, fmt.Errorf("failed to resolve commission rule in service: %w", err)
	}

	fee, err := commissioncalc.Amount(amount, rule.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	return &domain.CommissionQuote{
		Rate:          rule.CommissionRate,
		Commission:    fee,
		ReceiverTotal: amount.Add(fee),
		RuleApplied:   true,
	}, nil
}

// publishRuleEvent broadcasts a rule change. Delivery is best effort; a
// publish failure must not fail the write that already committed.
func (s *commissionService) publishRuleEvent(ctx context.Context, action, officeID, ruleID, city string) {
	event := events.CommissionRuleEvent{
		Action:   action,
		OfficeID: officeID,
		RuleID:   ruleID,
		City:     city,
		At:       time.Now(),
	}
	if err := s.publisher.PublishCommissionRuleEvent(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish commission rule event",
			slog.String("action", action),
			slog.String("rule_id", ruleID),
			slog.String("error", err.Error()),
		)
	}
}
