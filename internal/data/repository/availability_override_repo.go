package repository

import (
	"context"
	"fmt"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AvailabilityOverrideRepository interface {
	FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.AvailabilityOverride, error)
	FindByOperatorAndDate(ctx context.Context, operatorID uuid.UUID, date string) (*entity.AvailabilityOverride, error)
	Upsert(ctx context.Context, override *entity.AvailabilityOverride) error
	DeleteByDate(ctx context.Context, operatorID uuid.UUID, date string) error
}

type availabilityOverrideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityOverrideRepository(db database.PgxIface, log *zap.Logger) AvailabilityOverrideRepository {
	return &availabilityOverrideRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability_override")),
	}
}

func (r *availabilityOverrideRepository) FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.AvailabilityOverride, error) {
	query := `
		SELECT id, operator_id, date, is_blocked, created_at
		FROM availability_overrides
		WHERE operator_id = $1
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, operatorID)
	if err != nil {
		r.log.Error("Failed to find overrides by operator ID",
			zap.Error(err),
			zap.String("operator_id", operatorID.String()),
		)
		return nil, fmt.Errorf("find overrides by operator ID %s: %w", operatorID.String(), err)
	}
	defer rows.Close()

	var overrides []*entity.AvailabilityOverride
	for rows.Next() {
		var override entity.AvailabilityOverride
		err := rows.Scan(
			&override.ID,
			&override.OperatorID,
			&override.Date,
			&override.IsBlocked,
			&override.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan override row", zap.Error(err))
			return nil, fmt.Errorf("scan override row: %w", err)
		}
		overrides = append(overrides, &override)
	}

	return overrides, nil
}

func (r *availabilityOverrideRepository) FindByOperatorAndDate(ctx context.Context, operatorID uuid.UUID, date string) (*entity.AvailabilityOverride, error) {
	query := `
		SELECT id, operator_id, date, is_blocked, created_at
		FROM availability_overrides
		WHERE operator_id = $1 AND date = $2
	`

	var override entity.AvailabilityOverride
	err := r.db.QueryRow(ctx, query, operatorID, date).Scan(
		&override.ID,
		&override.OperatorID,
		&override.Date,
		&override.IsBlocked,
		&override.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find override by operator and date",
			zap.Error(err),
			zap.String("operator_id", operatorID.String()),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find override for operator %s date %s: %w", operatorID.String(), date, err)
	}

	return &override, nil
}

func (r *availabilityOverrideRepository) Upsert(ctx context.Context, override *entity.AvailabilityOverride) error {
	query := `
		INSERT INTO availability_overrides (id, operator_id, date, is_blocked, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (operator_id, date) DO UPDATE SET is_blocked = EXCLUDED.is_blocked
	`

	_, err := r.db.Exec(ctx, query,
		override.ID,
		override.OperatorID,
		override.Date,
		override.IsBlocked,
		override.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert override",
			zap.Error(err),
			zap.String("operator_id", override.OperatorID.String()),
			zap.Time("date", override.Date),
		)
		return fmt.Errorf("upsert override for operator %s: %w", override.OperatorID.String(), err)
	}

	return nil
}

func (r *availabilityOverrideRepository) DeleteByDate(ctx context.Context, operatorID uuid.UUID, date string) error {
	query := `DELETE FROM availability_overrides WHERE operator_id = $1 AND date = $2`

	result, err := r.db.Exec(ctx, query, operatorID, date)
	if err != nil {
		r.log.Error("Failed to delete override",
			zap.Error(err),
			zap.String("operator_id", operatorID.String()),
			zap.String("date", date),
		)
		return fmt.Errorf("delete override for operator %s date %s: %w", operatorID.String(), date, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete override for operator %s date %s: %w", operatorID.String(), date, ErrNotFound)
	}

	return nil
}
