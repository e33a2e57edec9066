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

type EventTypeHandler struct {
	service usecase.EventTypeService
	log     *zap.Logger
}

func NewEventTypeHandler(service usecase.EventTypeService, log *zap.Logger) *EventTypeHandler {
	return &EventTypeHandler{
		service: service,
		log:     log.With(zap.String("handler", "event_type")),
	}
}

// List handles GET /api/event-types?operator_id={id}
func (h *EventTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	operatorID := r.URL.Query().Get("operator_id")
	if operatorID == "" {
		utils.ResponseBadRequest(w, "operator_id query param is required", nil)
		return
	}

	eventTypes, err := h.service.List(r.Context(), operatorID)
	if err != nil {
		handleServiceError(w, h.log, err, "list event types")
		return
	}

	utils.ResponseSuccess(w, "success", eventTypes)
}

// Get handles GET /api/event-types/{id}
func (h *EventTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventTypeID := chi.URLParam(r, "id")
	if eventTypeID == "" {
		utils.ResponseBadRequest(w, "Event type ID is required", nil)
		return
	}

	eventType, err := h.service.GetByID(r.Context(), eventTypeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get event type")
		return
	}

	utils.ResponseSuccess(w, "success", eventType)
}

// Create handles POST /api/event-types
func (h *EventTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	eventType, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event type")
		return
	}

	utils.ResponseCreated(w, "success", eventType)
}

// Update handles PUT /api/event-types/{id}
func (h *EventTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	eventTypeID := chi.URLParam(r, "id")
	if eventTypeID == "" {
		utils.ResponseBadRequest(w, "Event type ID is required", nil)
		return
	}

	var req request.UpdateEventTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	eventType, err := h.service.Update(r.Context(), eventTypeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update event type")
		return
	}

	utils.ResponseSuccess(w, "success", eventType)
}

// Delete handles DELETE /api/event-types/{id}
func (h *EventTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventTypeID := chi.URLParam(r, "id")
	if eventTypeID == "" {
		utils.ResponseBadRequest(w, "Event type ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), eventTypeID); err != nil {
		handleServiceError(w, h.log, err, "delete event type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
