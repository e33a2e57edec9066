package wire

import (
	"github.com/rohanranjan0902/Scheduling-Platform/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings?scope=upcoming|past - confirmed bookings
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings/{id}/cancel - confirmed -> cancelled
		r.Post("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
