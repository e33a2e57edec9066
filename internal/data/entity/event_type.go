package entity

import (
	"github.com/google/uuid"
)

// EventType is a bookable meeting template owned by an operator.
type EventType struct {
	Base
	OperatorID      uuid.UUID `db:"operator_id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	DurationMinutes int       `db:"duration_minutes"`
	Slug            string    `db:"slug"`
}
