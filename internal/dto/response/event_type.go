package response

import (
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
)

type EventTypeResponse struct {
	ID              string    `json:"id"`
	OperatorID      string    `json:"operator_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Slug            string    `json:"slug"`
	CreatedAt       time.Time `json:"created_at"`
}

func EventTypeToResponse(eventType *entity.EventType) EventTypeResponse {
	return EventTypeResponse{
		ID:              eventType.ID.String(),
		OperatorID:      eventType.OperatorID.String(),
		Title:           eventType.Title,
		Description:     eventType.Description,
		DurationMinutes: eventType.DurationMinutes,
		Slug:            eventType.Slug,
		CreatedAt:       eventType.CreatedAt,
	}
}
