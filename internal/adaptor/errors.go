package adaptor

import (
	"errors"
	"net/http"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/usecase"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Conflict and invalid input carry their specific message; transient and
// unexpected failures stay opaque to the caller.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn(operation+" failed - invalid input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrSlotTaken):
		log.Warn(operation+" failed - slot conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrStoreUnavailable):
		log.Error(operation+" failed - store unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseServiceUnavailable(w, "Service temporarily unavailable, please retry")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
