package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/request"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/usecase"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PublicHandler serves the visitor-facing booking flow: look up an event
// type, see its free slots, claim one.
type PublicHandler struct {
	bookingService   usecase.BookingService
	eventTypeService usecase.EventTypeService
	log              *zap.Logger
}

func NewPublicHandler(bookingService usecase.BookingService, eventTypeService usecase.EventTypeService, log *zap.Logger) *PublicHandler {
	return &PublicHandler{
		bookingService:   bookingService,
		eventTypeService: eventTypeService,
		log:              log.With(zap.String("handler", "public")),
	}
}

// GetEventType handles GET /api/public/{slug}
func (h *PublicHandler) GetEventType(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Event type slug is required", nil)
		return
	}

	eventType, err := h.eventTypeService.GetBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "get event type")
		return
	}

	utils.ResponseSuccess(w, "success", eventType)
}

// GetAvailability handles GET /api/public/{slug}/availability?date=YYYY-MM-DD
func (h *PublicHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Event type slug is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query param is required (YYYY-MM-DD)", nil)
		return
	}

	slots, err := h.bookingService.ListAvailableSlots(r.Context(), slug, date)
	if err != nil {
		handleServiceError(w, h.log, err, "list available slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// Book handles POST /api/public/{slug}/book
func (h *PublicHandler) Book(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Event type slug is required", nil)
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.bookingService.CreateBooking(r.Context(), slug, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}
