package wire

import (
	"github.com/rohanranjan0902/Scheduling-Platform/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	r.Route("/api/operators/{operatorID}/availability", func(r chi.Router) {
		// GET /api/operators/{operatorID}/availability - timezone, rules, overrides
		r.Get("/", availabilityHandler.GetConfig)

		// PUT /api/operators/{operatorID}/availability/rules - replace weekly rules
		r.Put("/rules", availabilityHandler.ReplaceRules)

		// PUT /api/operators/{operatorID}/availability/overrides - block/unblock a date
		r.Put("/overrides", availabilityHandler.UpsertOverride)

		// DELETE /api/operators/{operatorID}/availability/overrides/{date}
		r.Delete("/overrides/{date}", availabilityHandler.DeleteOverride)
	})
}
