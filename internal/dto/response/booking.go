package response

import (
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	EventTypeID string               `json:"event_type_id"`
	BookerName  string               `json:"booker_name"`
	BookerEmail string               `json:"booker_email"`
	StartTime   time.Time            `json:"start_time"`
	EndTime     time.Time            `json:"end_time"`
	Status      entity.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

type BookingListItem struct {
	BookingResponse
	EventTitle string `json:"event_title"`
	EventSlug  string `json:"event_slug"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		EventTypeID: booking.EventTypeID.String(),
		BookerName:  booking.BookerName,
		BookerEmail: booking.BookerEmail,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}
}

func BookingWithEventToResponse(booking *entity.BookingWithEvent) BookingListItem {
	return BookingListItem{
		BookingResponse: BookingToResponse(&booking.Booking),
		EventTitle:      booking.EventTitle,
		EventSlug:       booking.EventSlug,
	}
}
