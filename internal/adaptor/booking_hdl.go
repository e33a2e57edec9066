package adaptor

import (
	"net/http"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/usecase"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/bookings?scope=upcoming|past
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")

	bookings, err := h.service.ListBookings(r.Context(), scope)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles POST /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
