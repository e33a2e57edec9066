package usecase

import (
	"context"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/repository"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Availability AvailabilityService
	Booking      BookingService
	EventType    EventTypeService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Availability: NewAvailabilityService(repo, config.Store.Timeout, log),
		Booking:      NewBookingService(repo, config.Store.Timeout, log),
		EventType:    NewEventTypeService(repo, config.Store.Timeout, log),
	}
}

// storeCtx bounds a store operation so no request blocks indefinitely.
func storeCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
