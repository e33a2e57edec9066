package wire

import (
	"github.com/rohanranjan0902/Scheduling-Platform/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEventType(r chi.Router, eventTypeHandler *adaptor.EventTypeHandler) {
	r.Route("/api/event-types", func(r chi.Router) {
		// GET /api/event-types?operator_id={id} - list an operator's event types
		r.Get("/", eventTypeHandler.List)

		// POST /api/event-types - create event type
		r.Post("/", eventTypeHandler.Create)

		// GET /api/event-types/{id}
		r.Get("/{id}", eventTypeHandler.Get)

		// PUT /api/event-types/{id}
		r.Put("/{id}", eventTypeHandler.Update)

		// DELETE /api/event-types/{id} - removes the event type and its bookings
		r.Delete("/{id}", eventTypeHandler.Delete)
	})
}
