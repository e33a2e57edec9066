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

type OperatorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)
}

type operatorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOperatorRepository(db database.PgxIface, log *zap.Logger) OperatorRepository {
	return &operatorRepository{
		db:  db,
		log: log.With(zap.String("repository", "operator")),
	}
}

func (r *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	query := `
		SELECT id, display_name, timezone, created_at, updated_at
		FROM operators
		WHERE id = $1
	`

	var operator entity.Operator
	err := r.db.QueryRow(ctx, query, id).Scan(
		&operator.ID,
		&operator.DisplayName,
		&operator.Timezone,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find operator by ID",
			zap.Error(err),
			zap.String("operator_id", id.String()),
		)
		return nil, fmt.Errorf("find operator by ID %s: %w", id.String(), err)
	}

	return &operator, nil
}
