package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	portsrepo "github.com/sarrafhub/exchange_backend/internal/core/ports/repositories"
	"github.com/sarrafhub/exchange_backend/internal/models"
	"github.com/sarrafhub/exchange_backend/internal/utils/mapping"
)

const commissionRuleColumns = `rule_id, office_id, city, commission_rate, created_at, created_by, last_updated_at, last_updated_by`

type PgxCommissionRuleRepository struct {
	BaseRepository
}

// newPgxCommissionRuleRepository creates a new repository for office commission rules.
func newPgxCommissionRuleRepository(pool *pgxpool.Pool) portsrepo.CommissionRuleRepositoryFacade {
	return &PgxCommissionRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CommissionRuleRepositoryFacade = (*PgxCommissionRuleRepository)(nil)

func scanCommissionRule(row pgx.Row) (models.CommissionRule, error) {
	var rule models.CommissionRule
	err := row.Scan(
		&rule.RuleID,
		&rule.OfficeID,
		&rule.City,
		&rule.CommissionRate,
		&rule.CreatedAt,
		&rule.CreatedBy,
		&rule.LastUpdatedAt,
		&rule.LastUpdatedBy,
	)
	return rule, err
}

// UpsertRule inserts a commission rule, or replaces the stored rate when the
// office already has a rule for the same city. The existing rule keeps its
// rule_id so links held by clients stay valid across rate changes.
func (r *PgxCommissionRuleRepository) UpsertRule(ctx context.Context, rule domain.CommissionRule) (*domain.CommissionRule, error) {
	modelRule := mapping.ToModelCommissionRule(rule)

	query := fmt.Sprintf(`
		INSERT INTO office_commission_rules (rule_id, office_id, city, commission_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (office_id, city) DO UPDATE SET
			commission_rate = EXCLUDED.commission_rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING %s;
	`, commissionRuleColumns)

	stored, err := scanCommissionRule(r.Pool.QueryRow(ctx, query,
		modelRule.RuleID,
		modelRule.OfficeID,
		modelRule.City,
		modelRule.CommissionRate,
		modelRule.CreatedAt,
		modelRule.CreatedBy,
		modelRule.LastUpdatedAt,
		modelRule.LastUpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert commission rule for office %s: %w", modelRule.OfficeID, err)
	}

	domainRule := mapping.ToDomainCommissionRule(stored)
	return &domainRule, nil
}

// ListRulesByOffice retrieves all commission rules configured by an office.
func (r *PgxCommissionRuleRepository) ListRulesByOffice(ctx context.Context, officeID string) ([]domain.CommissionRule, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM office_commission_rules
		WHERE office_id = $1
		ORDER BY city;
	`, commissionRuleColumns)

	rows, err := r.Pool.Query(ctx, query, officeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query commission rules: %w", err)
	}
	defer rows.Close()

	modelRules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CommissionRule, error) {
		return scanCommissionRule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan commission rules: %w", err)
	}

	return mapping.ToDomainCommissionRuleSlice(modelRules), nil
}

// FindRuleByOfficeAndCity retrieves the rule an office configured for a destination city.
func (r *PgxCommissionRuleRepository) FindRuleByOfficeAndCity(ctx context.Context, officeID string, city string) (*domain.CommissionRule, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM office_commission_rules
		WHERE office_id = $1 AND city = $2;
	`, commissionRuleColumns)

	modelRule, err := scanCommissionRule(r.Pool.QueryRow(ctx, query, officeID, city))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find commission rule for office %s, city %s: %w", officeID, city, err)
	}

	domainRule := mapping.ToDomainCommissionRule(modelRule)
	return &domainRule, nil
}

// DeleteRule removes a rule owned by the office. Deleting an already-absent
// rule is not an error.
func (r *PgxCommissionRuleRepository) DeleteRule(ctx context.Context, officeID string, ruleID string) error {
	query := `DELETE FROM office_commission_rules WHERE office_id = $1 AND rule_id = $2;`

	_, err := r.Pool.Exec(ctx, query, officeID, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete commission rule %s: %w", ruleID, err)
	}
	return nil
}
