package wire

import (
	"github.com/rohanranjan0902/Scheduling-Platform/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePublic(r chi.Router, publicHandler *adaptor.PublicHandler) {
	// Visitor-facing booking flow, unauthenticated.
	r.Route("/api/public/{slug}", func(r chi.Router) {
		// GET /api/public/{slug} - event type details for the booking page
		r.Get("/", publicHandler.GetEventType)

		// GET /api/public/{slug}/availability?date=YYYY-MM-DD - free slots
		r.Get("/availability", publicHandler.GetAvailability)

		// POST /api/public/{slug}/book - claim a slot
		r.Post("/book", publicHandler.Book)
	})
}
