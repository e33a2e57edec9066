package adaptor

import (
	"github.com/rohanranjan0902/Scheduling-Platform/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	EventType    *EventTypeHandler
	Public       *PublicHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Availability: NewAvailabilityHandler(service.Availability, log),
		Booking:      NewBookingHandler(service.Booking, log),
		EventType:    NewEventTypeHandler(service.EventType, log),
		Public:       NewPublicHandler(service.Booking, service.EventType, log),
	}
}
