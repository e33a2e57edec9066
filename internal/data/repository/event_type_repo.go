package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type EventTypeRepository interface {
	Create(ctx context.Context, eventType *entity.EventType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EventType, error)
	FindBySlug(ctx context.Context, slug string) (*entity.EventType, error)
	FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.EventType, error)
	Update(ctx context.Context, eventType *entity.EventType) error

	// DeleteCascade removes the event type together with all of its
	// bookings in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type eventTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventTypeRepository(db database.PgxIface, log *zap.Logger) EventTypeRepository {
	return &eventTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "event_type")),
	}
}

// isUniqueViolation reports SQLSTATE 23505 (unique constraint).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *eventTypeRepository) Create(ctx context.Context, eventType *entity.EventType) error {
	query := `
		INSERT INTO event_types (id, operator_id, title, description, duration_minutes, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		eventType.ID,
		eventType.OperatorID,
		eventType.Title,
		eventType.Description,
		eventType.DurationMinutes,
		eventType.Slug,
		eventType.CreatedAt,
		eventType.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create event type %s: %w", eventType.Slug, ErrDuplicateSlug)
		}
		r.log.Error("Failed to create event type",
			zap.Error(err),
			zap.String("slug", eventType.Slug),
		)
		return fmt.Errorf("create event type %s: %w", eventType.Slug, err)
	}

	return nil
}

func (r *eventTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EventType, error) {
	query := `
		SELECT id, operator_id, title, description, duration_minutes, slug, created_at, updated_at
		FROM event_types
		WHERE id = $1
	`

	var eventType entity.EventType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&eventType.ID,
		&eventType.OperatorID,
		&eventType.Title,
		&eventType.Description,
		&eventType.DurationMinutes,
		&eventType.Slug,
		&eventType.CreatedAt,
		&eventType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event type by ID",
			zap.Error(err),
			zap.String("event_type_id", id.String()),
		)
		return nil, fmt.Errorf("find event type by ID %s: %w", id.String(), err)
	}

	return &eventType, nil
}

func (r *eventTypeRepository) FindBySlug(ctx context.Context, slug string) (*entity.EventType, error) {
	query := `
		SELECT id, operator_id, title, description, duration_minutes, slug, created_at, updated_at
		FROM event_types
		WHERE slug = $1
	`

	var eventType entity.EventType
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&eventType.ID,
		&eventType.OperatorID,
		&eventType.Title,
		&eventType.Description,
		&eventType.DurationMinutes,
		&eventType.Slug,
		&eventType.CreatedAt,
		&eventType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event type by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find event type by slug %s: %w", slug, err)
	}

	return &eventType, nil
}

func (r *eventTypeRepository) FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.EventType, error) {
	query := `
		SELECT id, operator_id, title, description, duration_minutes, slug, created_at, updated_at
		FROM event_types
		WHERE operator_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, operatorID)
	if err != nil {
		r.log.Error("Failed to find event types by operator ID",
			zap.Error(err),
			zap.String("operator_id", operatorID.String()),
		)
		return nil, fmt.Errorf("find event types by operator ID %s: %w", operatorID.String(), err)
	}
	defer rows.Close()

	var eventTypes []*entity.EventType
	for rows.Next() {
		var eventType entity.EventType
		err := rows.Scan(
			&eventType.ID,
			&eventType.OperatorID,
			&eventType.Title,
			&eventType.Description,
			&eventType.DurationMinutes,
			&eventType.Slug,
			&eventType.CreatedAt,
			&eventType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan event type row", zap.Error(err))
			return nil, fmt.Errorf("scan event type row: %w", err)
		}
		eventTypes = append(eventTypes, &eventType)
	}

	return eventTypes, nil
}

func (r *eventTypeRepository) Update(ctx context.Context, eventType *entity.EventType) error {
	query := `
		UPDATE event_types
		SET title = $2, description = $3, duration_minutes = $4, slug = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		eventType.ID,
		eventType.Title,
		eventType.Description,
		eventType.DurationMinutes,
		eventType.Slug,
		eventType.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update event type %s: %w", eventType.ID.String(), ErrDuplicateSlug)
		}
		r.log.Error("Failed to update event type",
			zap.Error(err),
			zap.String("event_type_id", eventType.ID.String()),
		)
		return fmt.Errorf("update event type %s: %w", eventType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update event type %s: %w", eventType.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *eventTypeRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete event type %s: %w", id.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE event_type_id = $1`, id); err != nil {
		r.log.Error("Failed to delete bookings for event type",
			zap.Error(err),
			zap.String("event_type_id", id.String()),
		)
		return fmt.Errorf("delete bookings for event type %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM event_types WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete event type",
			zap.Error(err),
			zap.String("event_type_id", id.String()),
		)
		return fmt.Errorf("delete event type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete event type %s: %w", id.String(), ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete event type %s: %w", id.String(), err)
	}

	r.log.Info("Event type deleted with bookings", zap.String("event_type_id", id.String()))
	return nil
}
