package usecase

import (
	"context"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/repository"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/request"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/response"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventTypeService interface {
	List(ctx context.Context, operatorID string) ([]response.EventTypeResponse, error)
	GetByID(ctx context.Context, eventTypeID string) (*response.EventTypeResponse, error)
	GetBySlug(ctx context.Context, slug string) (*response.EventTypeResponse, error)
	Create(ctx context.Context, req *request.CreateEventTypeRequest) (*response.EventTypeResponse, error)
	Update(ctx context.Context, eventTypeID string, req *request.UpdateEventTypeRequest) (*response.EventTypeResponse, error)

	// Delete removes the event type and cascades removal of its bookings.
	Delete(ctx context.Context, eventTypeID string) error
}

type eventTypeService struct {
	repo    *repository.Repository
	timeout time.Duration
	log     *zap.Logger
}

func NewEventTypeService(repo *repository.Repository, timeout time.Duration, log *zap.Logger) EventTypeService {
	return &eventTypeService{
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "event_type")),
	}
}

func (s *eventTypeService) List(ctx context.Context, operatorID string) ([]response.EventTypeResponse, error) {
	operatorUUID, err := uuid.Parse(operatorID)
	if err != nil {
		return nil, invalidInput("invalid operator ID %s", operatorID)
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	eventTypes, err := s.repo.EventType.FindByOperatorID(ctx, operatorUUID)
	if err != nil {
		return nil, classifyStoreError("list event types", err)
	}

	responses := make([]response.EventTypeResponse, 0, len(eventTypes))
	for _, eventType := range eventTypes {
		responses = append(responses, response.EventTypeToResponse(eventType))
	}

	return responses, nil
}

func (s *eventTypeService) GetByID(ctx context.Context, eventTypeID string) (*response.EventTypeResponse, error) {
	eventTypeUUID, err := uuid.Parse(eventTypeID)
	if err != nil {
		return nil, invalidInput("invalid event type ID %s", eventTypeID)
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	eventType, err := s.repo.EventType.FindByID(ctx, eventTypeUUID)
	if err != nil {
		return nil, classifyStoreError("get event type", err)
	}
	if eventType == nil {
		return nil, notFound("event type %s not found", eventTypeID)
	}

	resp := response.EventTypeToResponse(eventType)
	return &resp, nil
}

func (s *eventTypeService) GetBySlug(ctx context.Context, slug string) (*response.EventTypeResponse, error) {
	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	eventType, err := s.repo.EventType.FindBySlug(ctx, slug)
	if err != nil {
		return nil, classifyStoreError("get event type by slug", err)
	}
	if eventType == nil {
		return nil, notFound("event type %s not found", slug)
	}

	resp := response.EventTypeToResponse(eventType)
	return &resp, nil
}

func (s *eventTypeService) Create(ctx context.Context, req *request.CreateEventTypeRequest) (*response.EventTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event type validation failed", zap.Any("errors", errs))
		return nil, invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	operatorUUID, err := uuid.Parse(req.OperatorID)
	if err != nil {
		return nil, invalidInput("invalid operator ID %s", req.OperatorID)
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	operator, err := s.repo.Operator.FindByID(ctx, operatorUUID)
	if err != nil {
		return nil, classifyStoreError("create event type", err)
	}
	if operator == nil {
		return nil, notFound("operator %s not found", req.OperatorID)
	}

	now := time.Now()
	eventType := &entity.EventType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OperatorID:      operatorUUID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Slug:            req.Slug,
	}

	if err := s.repo.EventType.Create(ctx, eventType); err != nil {
		return nil, classifyStoreError("create event type", err)
	}

	s.log.Info("Event type created",
		zap.String("event_type_id", eventType.ID.String()),
		zap.String("slug", eventType.Slug),
		zap.Int("duration_minutes", eventType.DurationMinutes),
	)

	resp := response.EventTypeToResponse(eventType)
	return &resp, nil
}

func (s *eventTypeService) Update(ctx context.Context, eventTypeID string, req *request.UpdateEventTypeRequest) (*response.EventTypeResponse, error) {
	eventTypeUUID, err := uuid.Parse(eventTypeID)
	if err != nil {
		return nil, invalidInput("invalid event type ID %s", eventTypeID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update event type validation failed", zap.Any("errors", errs))
		return nil, invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	eventType, err := s.repo.EventType.FindByID(ctx, eventTypeUUID)
	if err != nil {
		return nil, classifyStoreError("update event type", err)
	}
	if eventType == nil {
		return nil, notFound("event type %s not found", eventTypeID)
	}

	eventType.Title = req.Title
	eventType.Description = req.Description
	eventType.DurationMinutes = req.DurationMinutes
	eventType.Slug = req.Slug
	eventType.UpdatedAt = time.Now()

	if err := s.repo.EventType.Update(ctx, eventType); err != nil {
		return nil, classifyStoreError("update event type", err)
	}

	s.log.Info("Event type updated",
		zap.String("event_type_id", eventTypeID),
		zap.String("slug", eventType.Slug),
	)

	resp := response.EventTypeToResponse(eventType)
	return &resp, nil
}

func (s *eventTypeService) Delete(ctx context.Context, eventTypeID string) error {
	eventTypeUUID, err := uuid.Parse(eventTypeID)
	if err != nil {
		return invalidInput("invalid event type ID %s", eventTypeID)
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	if err := s.repo.EventType.DeleteCascade(ctx, eventTypeUUID); err != nil {
		return classifyStoreError("delete event type", err)
	}

	s.log.Info("Event type deleted", zap.String("event_type_id", eventTypeID))
	return nil
}
