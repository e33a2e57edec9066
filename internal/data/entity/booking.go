package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking occupies [StartTime, EndTime) on an event type's calendar.
// Times are absolute UTC instants. The only mutation after creation is
// the confirmed -> cancelled transition, which is terminal.
type Booking struct {
	Base
	EventTypeID uuid.UUID     `db:"event_type_id"`
	OperatorID  uuid.UUID     `db:"operator_id"`
	BookerName  string        `db:"booker_name"`
	BookerEmail string        `db:"booker_email"`
	StartTime   time.Time     `db:"start_time"`
	EndTime     time.Time     `db:"end_time"`
	Status      BookingStatus `db:"status"`
}

// Overlaps reports whether the booking intersects [start, end).
// Half-open intervals: touching boundaries do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !(end.Compare(b.StartTime) <= 0 || start.Compare(b.EndTime) >= 0)
}

// BookingWithEvent joins a booking with its event type's display fields
// for listing views.
type BookingWithEvent struct {
	Booking
	EventTitle string `db:"event_title"`
	EventSlug  string `db:"event_slug"`
}
