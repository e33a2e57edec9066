package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ---- repository stubs ----

type operatorRepoStub struct {
	operator *entity.Operator
	err      error
}

func (s *operatorRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.operator == nil || s.operator.ID != id {
		return nil, nil
	}
	return s.operator, nil
}

type eventTypeRepoStub struct {
	eventTypes []*entity.EventType
	err        error
	createErr  error
	deleted    []uuid.UUID
}

func (s *eventTypeRepoStub) Create(ctx context.Context, eventType *entity.EventType) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.eventTypes = append(s.eventTypes, eventType)
	return nil
}

func (s *eventTypeRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.EventType, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, eventType := range s.eventTypes {
		if eventType.ID == id {
			return eventType, nil
		}
	}
	return nil, nil
}

func (s *eventTypeRepoStub) FindBySlug(ctx context.Context, slug string) (*entity.EventType, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, eventType := range s.eventTypes {
		if eventType.Slug == slug {
			return eventType, nil
		}
	}
	return nil, nil
}

func (s *eventTypeRepoStub) FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.EventType, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.EventType
	for _, eventType := range s.eventTypes {
		if eventType.OperatorID == operatorID {
			out = append(out, eventType)
		}
	}
	return out, nil
}

func (s *eventTypeRepoStub) Update(ctx context.Context, eventType *entity.EventType) error {
	return s.err
}

func (s *eventTypeRepoStub) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	for _, eventType := range s.eventTypes {
		if eventType.ID == id {
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

type ruleRepoStub struct {
	rules       []*entity.AvailabilityRule
	err         error
	replaced    []*entity.AvailabilityRule
	replacedTZ  *string
	replaceErr  error
	replaceDone bool
}

func (s *ruleRepoStub) FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.AvailabilityRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rules, nil
}

func (s *ruleRepoStub) FindByOperatorAndWeekday(ctx context.Context, operatorID uuid.UUID, dayOfWeek int) ([]*entity.AvailabilityRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.AvailabilityRule
	for _, rule := range s.rules {
		if rule.OperatorID == operatorID && rule.DayOfWeek == dayOfWeek {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (s *ruleRepoStub) ReplaceAll(ctx context.Context, operatorID uuid.UUID, timezone *string, rules []*entity.AvailabilityRule) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced = rules
	s.replacedTZ = timezone
	s.replaceDone = true
	return nil
}

type overrideRepoStub struct {
	overrides map[string]*entity.AvailabilityOverride
	err       error
	deleted   []string
}

func (s *overrideRepoStub) FindByOperatorID(ctx context.Context, operatorID uuid.UUID) ([]*entity.AvailabilityOverride, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.AvailabilityOverride
	for _, override := range s.overrides {
		out = append(out, override)
	}
	return out, nil
}

func (s *overrideRepoStub) FindByOperatorAndDate(ctx context.Context, operatorID uuid.UUID, date string) (*entity.AvailabilityOverride, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.overrides[date], nil
}

func (s *overrideRepoStub) Upsert(ctx context.Context, override *entity.AvailabilityOverride) error {
	if s.err != nil {
		return s.err
	}
	if s.overrides == nil {
		s.overrides = make(map[string]*entity.AvailabilityOverride)
	}
	s.overrides[override.Date.Format("2006-01-02")] = override
	return nil
}

func (s *overrideRepoStub) DeleteByDate(ctx context.Context, operatorID uuid.UUID, date string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.overrides[date]; !ok {
		return repository.ErrNotFound
	}
	delete(s.overrides, date)
	s.deleted = append(s.deleted, date)
	return nil
}

// bookingLedgerStub mimics the store's atomicity guarantee: the overlap
// check and the insert happen under one lock, so concurrent reservations
// for intersecting ranges cannot both succeed.
type bookingLedgerStub struct {
	mu       sync.Mutex
	bookings []*entity.Booking
	err      error
}

func (s *bookingLedgerStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, booking := range s.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return nil, nil
}

func (s *bookingLedgerStub) FindConfirmedOverlapping(ctx context.Context, eventTypeID uuid.UUID, from, to time.Time) ([]*entity.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Booking
	for _, booking := range s.bookings {
		if booking.EventTypeID == eventTypeID && booking.Status == entity.BookingStatusConfirmed && booking.Overlaps(from, to) {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (s *bookingLedgerStub) Reserve(ctx context.Context, booking *entity.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.bookings {
		if existing.EventTypeID == booking.EventTypeID &&
			existing.Status == entity.BookingStatusConfirmed &&
			existing.Overlaps(booking.StartTime, booking.EndTime) {
			return repository.ErrOverlap
		}
	}
	s.bookings = append(s.bookings, booking)
	return nil
}

func (s *bookingLedgerStub) ListConfirmed(ctx context.Context, upcoming bool, now time.Time) ([]*entity.BookingWithEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.BookingWithEvent
	for _, booking := range s.bookings {
		if booking.Status != entity.BookingStatusConfirmed {
			continue
		}
		if upcoming != !booking.EndTime.Before(now) {
			continue
		}
		out = append(out, &entity.BookingWithEvent{Booking: *booking})
	}
	return out, nil
}

func (s *bookingLedgerStub) CancelConfirmed(ctx context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, booking := range s.bookings {
		if booking.ID == id && booking.Status == entity.BookingStatusConfirmed {
			booking.Status = entity.BookingStatusCancelled
			return nil
		}
	}
	return repository.ErrNotFound
}

// ---- fixtures ----

var (
	fixtureOperatorID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fixtureEventTypeID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func fixtureOperator(timezone string) *entity.Operator {
	return &entity.Operator{
		Base:        entity.Base{ID: fixtureOperatorID},
		DisplayName: "Test Operator",
		Timezone:    timezone,
	}
}

func fixtureEventType(durationMinutes int) *entity.EventType {
	return &entity.EventType{
		Base:            entity.Base{ID: fixtureEventTypeID},
		OperatorID:      fixtureOperatorID,
		Title:           "Intro Call",
		DurationMinutes: durationMinutes,
		Slug:            "intro-call",
	}
}

func fixtureRule(dayOfWeek int, startTime, endTime string) *entity.AvailabilityRule {
	return &entity.AvailabilityRule{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		OperatorID: fixtureOperatorID,
		DayOfWeek:  dayOfWeek,
		StartTime:  startTime,
		EndTime:    endTime,
	}
}

func newTestRepo(operator *entity.Operator, eventTypes *eventTypeRepoStub, rules *ruleRepoStub, overrides *overrideRepoStub, ledger *bookingLedgerStub) *repository.Repository {
	if eventTypes == nil {
		eventTypes = &eventTypeRepoStub{}
	}
	if rules == nil {
		rules = &ruleRepoStub{}
	}
	if overrides == nil {
		overrides = &overrideRepoStub{}
	}
	if ledger == nil {
		ledger = &bookingLedgerStub{}
	}
	return &repository.Repository{
		Operator:  &operatorRepoStub{operator: operator},
		EventType: eventTypes,
		Rule:      rules,
		Override:  overrides,
		Booking:   ledger,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
