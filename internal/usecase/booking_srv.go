package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/repository"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/request"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/response"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// ListAvailableSlots generates the free, non-overlapping slots for
	// the event type on a calendar date, interpreted in the operator's
	// timezone. The returned list may go stale at any moment; only
	// CreateBooking decides whether a slot is actually free.
	ListAvailableSlots(ctx context.Context, slug string, date string) (*response.AvailableSlotsResponse, error)

	// CreateBooking reserves the slot beginning at the given instant.
	// It never trusts a previously fetched slot list: the instant must
	// fall on a valid slot boundary for that day, and the non-overlap
	// check runs again inside the insert transaction.
	CreateBooking(ctx context.Context, slug string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	CancelBooking(ctx context.Context, bookingID string) error
	ListBookings(ctx context.Context, scope string) ([]response.BookingListItem, error)
}

type bookingService struct {
	repo    *repository.Repository
	timeout time.Duration
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, timeout time.Duration, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "booking")),
	}
}

// loadEventContext resolves the event type by slug together with its
// operator and the operator's timezone location.
func (s *bookingService) loadEventContext(ctx context.Context, slug string) (*entity.EventType, *entity.Operator, *time.Location, error) {
	eventType, err := s.repo.EventType.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, nil, classifyStoreError("find event type", err)
	}
	if eventType == nil {
		return nil, nil, nil, notFound("event type %s not found", slug)
	}

	operator, err := s.repo.Operator.FindByID(ctx, eventType.OperatorID)
	if err != nil {
		return nil, nil, nil, classifyStoreError("find operator", err)
	}
	if operator == nil {
		return nil, nil, nil, notFound("operator for event type %s not found", slug)
	}

	loc, err := time.LoadLocation(operator.Timezone)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load timezone %s: %w", operator.Timezone, err)
	}

	return eventType, operator, loc, nil
}

func (s *bookingService) ListAvailableSlots(ctx context.Context, slug string, date string) (*response.AvailableSlotsResponse, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, invalidInput("%s", err.Error())
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	eventType, operator, loc, err := s.loadEventContext(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := &response.AvailableSlotsResponse{
		Slots:    []response.SlotResponse{},
		Timezone: operator.Timezone,
	}

	// A blocking override pre-empts every weekly rule for the date.
	override, err := s.repo.Override.FindByOperatorAndDate(ctx, operator.ID, date)
	if err != nil {
		return nil, classifyStoreError("find override", err)
	}
	if override != nil && override.IsBlocked {
		return resp, nil
	}

	weekday := localWeekday(day, loc)
	rules, err := s.repo.Rule.FindByOperatorAndWeekday(ctx, operator.ID, int(weekday))
	if err != nil {
		return nil, classifyStoreError("find rules", err)
	}
	if len(rules) == 0 {
		// No rules for this weekday is an empty day, not a fault.
		return resp, nil
	}

	dayStart, dayEnd := localDayBounds(day, loc)
	bookings, err := s.repo.Booking.FindConfirmedOverlapping(ctx, eventType.ID, dayStart, dayEnd)
	if err != nil {
		return nil, classifyStoreError("find bookings", err)
	}

	slots, err := buildSlots(day, rules, eventType.DurationMinutes, loc, bookings)
	if err != nil {
		return nil, fmt.Errorf("generate slots for %s on %s: %w", slug, date, err)
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, response.SlotResponse{Start: slot.Start, End: slot.End})
	}

	s.log.Debug("Slots generated",
		zap.String("slug", slug),
		zap.String("date", date),
		zap.Int("count", len(resp.Slots)),
	)
	return resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, slug string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, err := utils.ParseInstant(req.Start)
	if err != nil {
		return nil, invalidInput("%s", err.Error())
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	eventType, operator, loc, err := s.loadEventContext(ctx, slug)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(eventType.DurationMinutes) * time.Minute)

	// The requested instant must begin a slot the schedule actually
	// offers for its local day; an instant outside every rule window is
	// a conflict, not a silent success.
	localDay := start.In(loc)
	dateKey := localDay.Format("2006-01-02")

	override, err := s.repo.Override.FindByOperatorAndDate(ctx, operator.ID, dateKey)
	if err != nil {
		return nil, classifyStoreError("find override", err)
	}
	if override != nil && override.IsBlocked {
		return nil, fmt.Errorf("date %s is blocked: %w", dateKey, ErrSlotTaken)
	}

	rules, err := s.repo.Rule.FindByOperatorAndWeekday(ctx, operator.ID, int(localDay.Weekday()))
	if err != nil {
		return nil, classifyStoreError("find rules", err)
	}

	candidates, err := buildSlots(localDay, rules, eventType.DurationMinutes, loc, nil)
	if err != nil {
		return nil, fmt.Errorf("generate candidates for %s on %s: %w", slug, dateKey, err)
	}

	valid := false
	for _, candidate := range candidates {
		if candidate.Start.Equal(start) {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("no bookable slot begins at %s: %w", req.Start, ErrSlotTaken)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EventTypeID: eventType.ID,
		OperatorID:  operator.ID,
		BookerName:  req.Name,
		BookerEmail: req.Email,
		StartTime:   start,
		EndTime:     end,
		Status:      entity.BookingStatusConfirmed,
	}

	if err := s.repo.Booking.Reserve(ctx, booking); err != nil {
		return nil, classifyStoreError("reserve slot", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("slug", slug),
		zap.Time("start_time", booking.StartTime),
		zap.String("booker_email", booking.BookerEmail),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return invalidInput("invalid booking ID %s", bookingID)
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Booking.CancelConfirmed(ctx, bookingUUID); err != nil {
		return classifyStoreError("cancel booking", err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, scope string) ([]response.BookingListItem, error) {
	if scope == "" {
		scope = "upcoming"
	}
	if scope != "upcoming" && scope != "past" {
		return nil, invalidInput("invalid scope %s, expected upcoming or past", scope)
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	bookings, err := s.repo.Booking.ListConfirmed(ctx, scope == "upcoming", time.Now().UTC())
	if err != nil {
		return nil, classifyStoreError("list bookings", err)
	}

	items := make([]response.BookingListItem, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, response.BookingWithEventToResponse(booking))
	}

	return items, nil
}
