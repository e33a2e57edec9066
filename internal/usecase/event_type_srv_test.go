package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/repository"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/request"

	"github.com/google/uuid"
)

func newEventTypeService(eventTypes *eventTypeRepoStub) EventTypeService {
	repo := newTestRepo(fixtureOperator("America/New_York"), eventTypes, nil, nil, nil)
	return NewEventTypeService(repo, time.Second, testLogger())
}

func TestEventTypeCreate_PersistsAndEchoes(t *testing.T) {
	t.Parallel()

	eventTypes := &eventTypeRepoStub{}
	svc := newEventTypeService(eventTypes)

	resp, err := svc.Create(context.Background(), &request.CreateEventTypeRequest{
		OperatorID:      fixtureOperatorID.String(),
		Title:           "Deep Dive",
		Description:     "A longer working session",
		DurationMinutes: 60,
		Slug:            "deep-dive",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if resp.Slug != "deep-dive" {
		t.Errorf("slug = %s, want deep-dive", resp.Slug)
	}
	if resp.DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", resp.DurationMinutes)
	}
	if len(eventTypes.eventTypes) != 1 {
		t.Fatalf("expected 1 stored event type, got %d", len(eventTypes.eventTypes))
	}
}

func TestEventTypeCreate_RejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  *request.CreateEventTypeRequest
	}{
		{
			name: "missing title",
			req: &request.CreateEventTypeRequest{
				OperatorID:      fixtureOperatorID.String(),
				DurationMinutes: 30,
				Slug:            "no-title",
			},
		},
		{
			name: "zero duration",
			req: &request.CreateEventTypeRequest{
				OperatorID: fixtureOperatorID.String(),
				Title:      "Zero",
				Slug:       "zero",
			},
		},
		{
			name: "bad operator id",
			req: &request.CreateEventTypeRequest{
				OperatorID:      "not-a-uuid",
				Title:           "Bad Operator",
				DurationMinutes: 30,
				Slug:            "bad-operator",
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			eventTypes := &eventTypeRepoStub{}
			svc := newEventTypeService(eventTypes)

			_, err := svc.Create(context.Background(), tc.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(eventTypes.eventTypes) != 0 {
				t.Fatal("invalid payload reached the store")
			}
		})
	}
}

func TestEventTypeCreate_DuplicateSlug(t *testing.T) {
	t.Parallel()

	eventTypes := &eventTypeRepoStub{createErr: repository.ErrDuplicateSlug}
	svc := newEventTypeService(eventTypes)

	_, err := svc.Create(context.Background(), &request.CreateEventTypeRequest{
		OperatorID:      fixtureOperatorID.String(),
		Title:           "Intro Call",
		DurationMinutes: 30,
		Slug:            "intro-call",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate slug, got %v", err)
	}
}

func TestEventTypeCreate_UnknownOperator(t *testing.T) {
	t.Parallel()

	svc := newEventTypeService(&eventTypeRepoStub{})

	_, err := svc.Create(context.Background(), &request.CreateEventTypeRequest{
		OperatorID:      uuid.New().String(),
		Title:           "Orphan",
		DurationMinutes: 30,
		Slug:            "orphan",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventTypeGetBySlug(t *testing.T) {
	t.Parallel()

	svc := newEventTypeService(&eventTypeRepoStub{eventTypes: []*entity.EventType{fixtureEventType(30)}})

	resp, err := svc.GetBySlug(context.Background(), "intro-call")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if resp.Title != "Intro Call" {
		t.Errorf("title = %s, want Intro Call", resp.Title)
	}

	if _, err := svc.GetBySlug(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventTypeGetByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := newEventTypeService(&eventTypeRepoStub{})

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventTypeUpdate_AppliesFields(t *testing.T) {
	t.Parallel()

	eventTypes := &eventTypeRepoStub{eventTypes: []*entity.EventType{fixtureEventType(30)}}
	svc := newEventTypeService(eventTypes)

	resp, err := svc.Update(context.Background(), fixtureEventTypeID.String(), &request.UpdateEventTypeRequest{
		Title:           "Intro Call v2",
		Description:     "Updated",
		DurationMinutes: 45,
		Slug:            "intro-call",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.DurationMinutes != 45 {
		t.Errorf("duration = %d, want 45", resp.DurationMinutes)
	}
	if eventTypes.eventTypes[0].Title != "Intro Call v2" {
		t.Errorf("stored title = %s, want Intro Call v2", eventTypes.eventTypes[0].Title)
	}
}

func TestEventTypeDelete_CascadesOnce(t *testing.T) {
	t.Parallel()

	eventTypes := &eventTypeRepoStub{eventTypes: []*entity.EventType{fixtureEventType(30)}}
	svc := newEventTypeService(eventTypes)

	if err := svc.Delete(context.Background(), fixtureEventTypeID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(eventTypes.deleted) != 1 || eventTypes.deleted[0] != fixtureEventTypeID {
		t.Fatalf("cascade delete not recorded: %v", eventTypes.deleted)
	}

	err := svc.Delete(context.Background(), uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown ID, got %v", err)
	}
}
