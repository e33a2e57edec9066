package repository

import (
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Operator  OperatorRepository
	EventType EventTypeRepository
	Rule      AvailabilityRuleRepository
	Override  AvailabilityOverrideRepository
	Booking   BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Operator:  NewOperatorRepository(db, log),
		EventType: NewEventTypeRepository(db, log),
		Rule:      NewAvailabilityRuleRepository(db, log),
		Override:  NewAvailabilityOverrideRepository(db, log),
		Booking:   NewBookingRepository(db, log),
	}
}
