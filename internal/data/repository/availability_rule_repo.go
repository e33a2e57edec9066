package repository

import (
	"context"
	"fmt"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityRuleRepository interface {
	FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.AvailabilityRule, error)
	FindByOperatorAndWeekday(ctx context.Context, operatorID uuid.UUID, dayOfWeek int) ([]*entity.AvailabilityRule, error)

	// ReplaceAll swaps the operator's entire rule set in one transaction
	// (delete-all, insert-all), optionally updating the operator timezone.
	// Nothing is written if any step fails.
	ReplaceAll(ctx context.Context, operatorID uuid.UUID, timezone *string, rules []*entity.AvailabilityRule) error
}

type availabilityRuleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityRuleRepository(db database.PgxIface, log *zap.Logger) AvailabilityRuleRepository {
	return &availabilityRuleRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability_rule")),
	}
}

func (r *availabilityRuleRepository) FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.AvailabilityRule, error) {
	query := `
		SELECT id, operator_id, day_of_week, start_time, end_time, created_at
		FROM availability_rules
		WHERE operator_id = $1
		ORDER BY day_of_week, start_time
	`

	rows, err := r.db.Query(ctx, query, operatorID)
	if err != nil {
		r.log.Error("Failed to find rules by operator ID",
			zap.Error(err),
			zap.String("operator_id", operatorID.String()),
		)
		return nil, fmt.Errorf("find rules by operator ID %s: %w", operatorID.String(), err)
	}
	defer rows.Close()

	var rules []*entity.AvailabilityRule
	for rows.Next() {
		var rule entity.AvailabilityRule
		err := rows.Scan(
			&rule.ID,
			&rule.OperatorID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rule row", zap.Error(err))
			return nil, fmt.Errorf("scan rule row: %w", err)
		}
		rules = append(rules, &rule)
	}

	return rules, nil
}

func (r *availabilityRuleRepository) FindByOperatorAndWeekday(ctx context.Context, operatorID uuid.UUID, dayOfWeek int) ([]*entity.AvailabilityRule, error) {
	query := `
		SELECT id, operator_id, day_of_week, start_time, end_time, created_at
		FROM availability_rules
		WHERE operator_id = $1 AND day_of_week = $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, operatorID, dayOfWeek)
	if err != nil {
		r.log.Error("Failed to find rules by operator and weekday",
			zap.Error(err),
			zap.String("operator_id", operatorID.String()),
			zap.Int("day_of_week", dayOfWeek),
		)
		return nil, fmt.Errorf("find rules by operator %s weekday %d: %w", operatorID.String(), dayOfWeek, err)
	}
	defer rows.Close()

	var rules []*entity.AvailabilityRule
	for rows.Next() {
		var rule entity.AvailabilityRule
		err := rows.Scan(
			&rule.ID,
			&rule.OperatorID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rule row", zap.Error(err))
			return nil, fmt.Errorf("scan rule row: %w", err)
		}
		rules = append(rules, &rule)
	}

	return rules, nil
}

func (r *availabilityRuleRepository) ReplaceAll(ctx context.Context, operatorID uuid.UUID, timezone *string, rules []*entity.AvailabilityRule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace rules for operator %s: %w", operatorID.String(), err)
	}
	defer tx.Rollback(ctx)

	if timezone != nil {
		result, err := tx.Exec(ctx,
			`UPDATE operators SET timezone = $1, updated_at = NOW() WHERE id = $2`,
			*timezone, operatorID,
		)
		if err != nil {
			r.log.Error("Failed to update operator timezone",
				zap.Error(err),
				zap.String("operator_id", operatorID.String()),
				zap.String("timezone", *timezone),
			)
			return fmt.Errorf("update operator %s timezone: %w", operatorID.String(), err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("update operator %s timezone: %w", operatorID.String(), ErrNotFound)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM availability_rules WHERE operator_id = $1`, operatorID); err != nil {
		r.log.Error("Failed to delete rules",
			zap.Error(err),
			zap.String("operator_id", operatorID.String()),
		)
		return fmt.Errorf("delete rules for operator %s: %w", operatorID.String(), err)
	}

	for _, rule := range rules {
		_, err := tx.Exec(ctx,
			`INSERT INTO availability_rules (id, operator_id, day_of_week, start_time, end_time, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			rule.ID,
			rule.OperatorID,
			rule.DayOfWeek,
			rule.StartTime,
			rule.EndTime,
			rule.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert rule",
				zap.Error(err),
				zap.String("operator_id", operatorID.String()),
				zap.Int("day_of_week", rule.DayOfWeek),
			)
			return fmt.Errorf("insert rule for operator %s: %w", operatorID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace rules for operator %s: %w", operatorID.String(), err)
	}

	r.log.Info("Availability rules replaced",
		zap.String("operator_id", operatorID.String()),
		zap.Int("rule_count", len(rules)),
	)
	return nil
}
