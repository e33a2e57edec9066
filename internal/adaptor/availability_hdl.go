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

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetConfig handles GET /api/operators/{operatorID}/availability
func (h *AvailabilityHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	operatorID := chi.URLParam(r, "operatorID")
	if operatorID == "" {
		utils.ResponseBadRequest(w, "Operator ID is required", nil)
		return
	}

	config, err := h.service.GetConfig(r.Context(), operatorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get availability config")
		return
	}

	utils.ResponseSuccess(w, "success", config)
}

// ReplaceRules handles PUT /api/operators/{operatorID}/availability/rules
func (h *AvailabilityHandler) ReplaceRules(w http.ResponseWriter, r *http.Request) {
	operatorID := chi.URLParam(r, "operatorID")
	if operatorID == "" {
		utils.ResponseBadRequest(w, "Operator ID is required", nil)
		return
	}

	var req request.ReplaceRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ReplaceRules(r.Context(), operatorID, &req); err != nil {
		handleServiceError(w, h.log, err, "replace weekly rules")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UpsertOverride handles PUT /api/operators/{operatorID}/availability/overrides
func (h *AvailabilityHandler) UpsertOverride(w http.ResponseWriter, r *http.Request) {
	operatorID := chi.URLParam(r, "operatorID")
	if operatorID == "" {
		utils.ResponseBadRequest(w, "Operator ID is required", nil)
		return
	}

	var req request.UpsertOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpsertOverride(r.Context(), operatorID, &req); err != nil {
		handleServiceError(w, h.log, err, "upsert availability override")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeleteOverride handles DELETE /api/operators/{operatorID}/availability/overrides/{date}
func (h *AvailabilityHandler) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	operatorID := chi.URLParam(r, "operatorID")
	date := chi.URLParam(r, "date")
	if operatorID == "" || date == "" {
		utils.ResponseBadRequest(w, "Operator ID and date are required", nil)
		return
	}

	if err := h.service.DeleteOverride(r.Context(), operatorID, date); err != nil {
		handleServiceError(w, h.log, err, "delete availability override")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
