package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindConfirmedOverlapping returns confirmed bookings of the event
	// type that intersect [from, to), ordered by start time.
	FindConfirmedOverlapping(ctx context.Context, eventTypeID uuid.UUID, from, to time.Time) ([]*entity.Booking, error)

	// Reserve atomically re-checks the non-overlap invariant and inserts
	// the booking. A losing concurrent insert fails with ErrOverlap; the
	// schema's exclusion constraint backstops the in-transaction check.
	Reserve(ctx context.Context, booking *entity.Booking) error

	// ListConfirmed returns confirmed bookings joined with event type
	// display fields. Upcoming bookings ascend by start time, past ones
	// descend.
	ListConfirmed(ctx context.Context, upcoming bool, now time.Time) ([]*entity.BookingWithEvent, error)

	// CancelConfirmed transitions confirmed -> cancelled. It fails with
	// ErrNotFound when the booking is absent or already cancelled, which
	// makes repeat cancellation observable rather than silent.
	CancelConfirmed(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// isExclusionViolation reports SQLSTATE 23P01 (exclusion constraint),
// raised when two confirmed bookings would occupy intersecting ranges.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, event_type_id, operator_id, booker_name, booker_email, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.EventTypeID,
		&booking.OperatorID,
		&booking.BookerName,
		&booking.BookerEmail,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindConfirmedOverlapping(ctx context.Context, eventTypeID uuid.UUID, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT id, event_type_id, operator_id, booker_name, booker_email, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE event_type_id = $1
		  AND status = 'confirmed'
		  AND NOT ($3 <= start_time OR $2 >= end_time)
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, eventTypeID, from, to)
	if err != nil {
		r.log.Error("Failed to find confirmed bookings in range",
			zap.Error(err),
			zap.String("event_type_id", eventTypeID.String()),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find confirmed bookings for event type %s: %w", eventTypeID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.EventTypeID,
			&booking.OperatorID,
			&booking.BookerName,
			&booking.BookerEmail,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Reserve(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reserve: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conflict check and insert share the transaction so the window
	// between them is covered; the exclusion constraint decides races
	// between concurrent transactions.
	var exists int
	err = tx.QueryRow(ctx, `
		SELECT 1 FROM bookings
		WHERE event_type_id = $1
		  AND status = 'confirmed'
		  AND NOT ($3 <= start_time OR $2 >= end_time)
		LIMIT 1
	`, booking.EventTypeID, booking.StartTime, booking.EndTime).Scan(&exists)

	if err == nil {
		return fmt.Errorf("reserve %s-%s for event type %s: %w",
			booking.StartTime.Format(time.RFC3339), booking.EndTime.Format(time.RFC3339),
			booking.EventTypeID.String(), ErrOverlap)
	}
	if err != pgx.ErrNoRows {
		r.log.Error("Failed to check booking overlap",
			zap.Error(err),
			zap.String("event_type_id", booking.EventTypeID.String()),
		)
		return fmt.Errorf("check booking overlap: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, event_type_id, operator_id, booker_name, booker_email, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		booking.ID,
		booking.EventTypeID,
		booking.OperatorID,
		booking.BookerName,
		booking.BookerEmail,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return fmt.Errorf("reserve for event type %s: %w", booking.EventTypeID.String(), ErrOverlap)
		}
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("event_type_id", booking.EventTypeID.String()),
			zap.Time("start_time", booking.StartTime),
		)
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isExclusionViolation(err) {
			return fmt.Errorf("reserve for event type %s: %w", booking.EventTypeID.String(), ErrOverlap)
		}
		return fmt.Errorf("commit reserve: %w", err)
	}

	return nil
}

func (r *bookingRepository) ListConfirmed(ctx context.Context, upcoming bool, now time.Time) ([]*entity.BookingWithEvent, error) {
	query := `
		SELECT b.id, b.event_type_id, b.operator_id, b.booker_name, b.booker_email,
		       b.start_time, b.end_time, b.status, b.created_at, b.updated_at,
		       e.title AS event_title, e.slug AS event_slug
		FROM bookings b
		JOIN event_types e ON b.event_type_id = e.id
		WHERE b.status = 'confirmed'
	`
	if upcoming {
		query += ` AND b.end_time >= $1 ORDER BY b.start_time ASC`
	} else {
		query += ` AND b.end_time < $1 ORDER BY b.start_time DESC`
	}

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		r.log.Error("Failed to list confirmed bookings",
			zap.Error(err),
			zap.Bool("upcoming", upcoming),
		)
		return nil, fmt.Errorf("list confirmed bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingWithEvent
	for rows.Next() {
		var booking entity.BookingWithEvent
		err := rows.Scan(
			&booking.ID,
			&booking.EventTypeID,
			&booking.OperatorID,
			&booking.BookerName,
			&booking.BookerEmail,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
			&booking.EventTitle,
			&booking.EventSlug,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CancelConfirmed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("cancel booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cancel booking %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Booking cancelled", zap.String("booking_id", id.String()))
	return nil
}
