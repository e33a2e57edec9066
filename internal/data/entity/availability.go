package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule is a recurring weekly open-hours window, stored as
// local wall-clock times ("HH:MM") in the operator's timezone.
// day_of_week follows time.Weekday numbering: 0 = Sunday.
type AvailabilityRule struct {
	BaseSimple
	OperatorID uuid.UUID `db:"operator_id"`
	DayOfWeek  int       `db:"day_of_week"`
	StartTime  string    `db:"start_time"`
	EndTime    string    `db:"end_time"`
}

// AvailabilityOverride blocks a specific calendar date regardless of
// weekly rules. At most one per (operator, date).
type AvailabilityOverride struct {
	BaseSimple
	OperatorID uuid.UUID `db:"operator_id"`
	Date       time.Time `db:"date"`
	IsBlocked  bool      `db:"is_blocked"`
}
