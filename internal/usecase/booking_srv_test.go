package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/request"

	"github.com/google/uuid"
)

func newBookingService(repoParts ...any) (BookingService, *bookingLedgerStub) {
	ledger := &bookingLedgerStub{}
	eventTypes := &eventTypeRepoStub{eventTypes: []*entity.EventType{fixtureEventType(30)}}
	rules := &ruleRepoStub{rules: []*entity.AvailabilityRule{fixtureRule(1, "09:00", "10:00")}}
	overrides := &overrideRepoStub{}

	for _, part := range repoParts {
		switch p := part.(type) {
		case *bookingLedgerStub:
			ledger = p
		case *eventTypeRepoStub:
			eventTypes = p
		case *ruleRepoStub:
			rules = p
		case *overrideRepoStub:
			overrides = p
		}
	}

	repo := newTestRepo(fixtureOperator("America/New_York"), eventTypes, rules, overrides, ledger)
	return NewBookingService(repo, time.Second, testLogger()), ledger
}

func TestListAvailableSlots_MondayWindow(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService()

	resp, err := svc.ListAvailableSlots(context.Background(), "intro-call", "2025-06-09")
	if err != nil {
		t.Fatalf("ListAvailableSlots: %v", err)
	}

	if resp.Timezone != "America/New_York" {
		t.Errorf("timezone = %s, want America/New_York", resp.Timezone)
	}
	if len(resp.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(resp.Slots))
	}
	// 09:00 and 09:30 local, EDT in June.
	wantFirst := time.Date(2025, 6, 9, 13, 0, 0, 0, time.UTC)
	if !resp.Slots[0].Start.Equal(wantFirst) {
		t.Errorf("first slot = %v, want %v", resp.Slots[0].Start, wantFirst)
	}
}

func TestListAvailableSlots_OmitsBookedSlot(t *testing.T) {
	t.Parallel()

	ledger := &bookingLedgerStub{bookings: []*entity.Booking{{
		Base:        entity.Base{ID: uuid.New()},
		EventTypeID: fixtureEventTypeID,
		StartTime:   time.Date(2025, 6, 9, 13, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 6, 9, 13, 30, 0, 0, time.UTC),
		Status:      entity.BookingStatusConfirmed,
	}}}
	svc, _ := newBookingService(ledger)

	resp, err := svc.ListAvailableSlots(context.Background(), "intro-call", "2025-06-09")
	if err != nil {
		t.Fatalf("ListAvailableSlots: %v", err)
	}

	if len(resp.Slots) != 1 {
		t.Fatalf("expected 1 remaining slot, got %d", len(resp.Slots))
	}
	want := time.Date(2025, 6, 9, 13, 30, 0, 0, time.UTC)
	if !resp.Slots[0].Start.Equal(want) {
		t.Errorf("remaining slot = %v, want %v", resp.Slots[0].Start, want)
	}
}

func TestListAvailableSlots_BlockedOverridePreempts(t *testing.T) {
	t.Parallel()

	overrides := &overrideRepoStub{overrides: map[string]*entity.AvailabilityOverride{
		"2025-06-09": {
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			OperatorID: fixtureOperatorID,
			Date:       time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			IsBlocked:  true,
		},
	}}
	svc, _ := newBookingService(overrides)

	resp, err := svc.ListAvailableSlots(context.Background(), "intro-call", "2025-06-09")
	if err != nil {
		t.Fatalf("ListAvailableSlots: %v", err)
	}

	if len(resp.Slots) != 0 {
		t.Fatalf("expected no slots on blocked date, got %d", len(resp.Slots))
	}
}

func TestListAvailableSlots_NoRulesIsEmptyNotError(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService(&ruleRepoStub{})

	resp, err := svc.ListAvailableSlots(context.Background(), "intro-call", "2025-06-09")
	if err != nil {
		t.Fatalf("ListAvailableSlots: %v", err)
	}
	if len(resp.Slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(resp.Slots))
	}
}

func TestListAvailableSlots_UnknownSlug(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService()

	_, err := svc.ListAvailableSlots(context.Background(), "missing", "2025-06-09")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAvailableSlots_MalformedDate(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService()

	_, err := svc.ListAvailableSlots(context.Background(), "intro-call", "09-06-2025")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateBooking_ReservesValidSlot(t *testing.T) {
	t.Parallel()

	svc, ledger := newBookingService()

	resp, err := svc.CreateBooking(context.Background(), "intro-call", &request.CreateBookingRequest{
		Start: "2025-06-09T13:30:00Z",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if resp.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", resp.Status)
	}
	if got := resp.EndTime.Sub(resp.StartTime); got != 30*time.Minute {
		t.Errorf("booking length = %v, want 30m", got)
	}
	if len(ledger.bookings) != 1 {
		t.Fatalf("expected 1 booking in ledger, got %d", len(ledger.bookings))
	}
}

func TestCreateBooking_OutsideRuleWindowIsConflict(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService()

	// 11:00 local is past the 09:00-10:00 window; 13:15 UTC is not a
	// slot boundary either.
	for _, start := range []string{"2025-06-09T15:00:00Z", "2025-06-09T13:15:00Z"} {
		_, err := svc.CreateBooking(context.Background(), "intro-call", &request.CreateBookingRequest{
			Start: start,
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
		})
		if !errors.Is(err, ErrSlotTaken) {
			t.Errorf("start %s: expected ErrSlotTaken, got %v", start, err)
		}
	}
}

func TestCreateBooking_TakenSlotIsConflict(t *testing.T) {
	t.Parallel()

	ledger := &bookingLedgerStub{bookings: []*entity.Booking{{
		Base:        entity.Base{ID: uuid.New()},
		EventTypeID: fixtureEventTypeID,
		StartTime:   time.Date(2025, 6, 9, 13, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 6, 9, 13, 30, 0, 0, time.UTC),
		Status:      entity.BookingStatusConfirmed,
	}}}
	svc, _ := newBookingService(ledger)

	_, err := svc.CreateBooking(context.Background(), "intro-call", &request.CreateBookingRequest{
		Start: "2025-06-09T13:00:00Z",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestCreateBooking_BlockedDateIsConflict(t *testing.T) {
	t.Parallel()

	overrides := &overrideRepoStub{overrides: map[string]*entity.AvailabilityOverride{
		"2025-06-09": {
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			OperatorID: fixtureOperatorID,
			Date:       time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			IsBlocked:  true,
		},
	}}
	svc, _ := newBookingService(overrides)

	_, err := svc.CreateBooking(context.Background(), "intro-call", &request.CreateBookingRequest{
		Start: "2025-06-09T13:00:00Z",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestCreateBooking_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService()

	_, err := svc.CreateBooking(context.Background(), "intro-call", &request.CreateBookingRequest{
		Start: "2025-06-09T13:00:00Z",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateBooking_ConcurrentClaimsSingleWinner(t *testing.T) {
	t.Parallel()

	svc, ledger := newBookingService()

	const attempts = 25
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(context.Background(), "intro-call", &request.CreateBookingRequest{
				Start: "2025-06-09T13:00:00Z",
				Name:  "Ada Lovelace",
				Email: "ada@example.com",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotTaken):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if wins != 1 {
		t.Errorf("wins = %d, want exactly 1", wins)
	}
	if conflicts != attempts-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, attempts-1)
	}
	if len(ledger.bookings) != 1 {
		t.Errorf("ledger holds %d bookings, want 1", len(ledger.bookings))
	}
}

func TestCancelBooking_IdempotentTransition(t *testing.T) {
	t.Parallel()

	bookingID := uuid.New()
	ledger := &bookingLedgerStub{bookings: []*entity.Booking{{
		Base:        entity.Base{ID: bookingID},
		EventTypeID: fixtureEventTypeID,
		StartTime:   time.Date(2025, 6, 9, 13, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 6, 9, 13, 30, 0, 0, time.UTC),
		Status:      entity.BookingStatusConfirmed,
	}}}
	svc, _ := newBookingService(ledger)

	if err := svc.CancelBooking(context.Background(), bookingID.String()); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if ledger.bookings[0].Status != entity.BookingStatusCancelled {
		t.Fatalf("status = %s, want cancelled", ledger.bookings[0].Status)
	}

	// Second cancel must report NotFound, never a second transition.
	err := svc.CancelBooking(context.Background(), bookingID.String())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("second cancel: expected ErrNotFound, got %v", err)
	}
}

func TestCancelBooking_UnknownID(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService()

	err := svc.CancelBooking(context.Background(), uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListBookings_InvalidScope(t *testing.T) {
	t.Parallel()

	svc, _ := newBookingService()

	_, err := svc.ListBookings(context.Background(), "yesterday")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListBookings_FiltersCancelled(t *testing.T) {
	t.Parallel()

	future := time.Now().UTC().Add(48 * time.Hour)
	ledger := &bookingLedgerStub{bookings: []*entity.Booking{
		{
			Base:        entity.Base{ID: uuid.New()},
			EventTypeID: fixtureEventTypeID,
			StartTime:   future,
			EndTime:     future.Add(30 * time.Minute),
			Status:      entity.BookingStatusConfirmed,
		},
		{
			Base:        entity.Base{ID: uuid.New()},
			EventTypeID: fixtureEventTypeID,
			StartTime:   future.Add(time.Hour),
			EndTime:     future.Add(90 * time.Minute),
			Status:      entity.BookingStatusCancelled,
		},
	}}
	svc, _ := newBookingService(ledger)

	items, err := svc.ListBookings(context.Background(), "upcoming")
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 confirmed booking, got %d", len(items))
	}
	if items[0].Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", items[0].Status)
	}
}
