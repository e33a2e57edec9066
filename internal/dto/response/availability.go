package response

import (
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
)

type AvailabilityRuleResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityOverrideResponse struct {
	Date      string `json:"date"`
	IsBlocked bool   `json:"is_blocked"`
}

type AvailabilityConfigResponse struct {
	Timezone  string                         `json:"timezone"`
	Rules     []AvailabilityRuleResponse     `json:"rules"`
	Overrides []AvailabilityOverrideResponse `json:"overrides"`
}

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailableSlotsResponse carries the zone the slots were generated in so
// the caller can render local times.
type AvailableSlotsResponse struct {
	Slots    []SlotResponse `json:"slots"`
	Timezone string         `json:"timezone"`
}

// Helper converters
func RuleToResponse(rule *entity.AvailabilityRule) AvailabilityRuleResponse {
	return AvailabilityRuleResponse{
		DayOfWeek: rule.DayOfWeek,
		StartTime: rule.StartTime,
		EndTime:   rule.EndTime,
	}
}

func OverrideToResponse(override *entity.AvailabilityOverride) AvailabilityOverrideResponse {
	return AvailabilityOverrideResponse{
		Date:      override.Date.Format("2006-01-02"),
		IsBlocked: override.IsBlocked,
	}
}
