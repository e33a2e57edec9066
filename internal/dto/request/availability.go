package request

type WeeklyRule struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

// ReplaceRulesRequest swaps the operator's whole weekly rule set.
// An empty Rules list clears all availability.
type ReplaceRulesRequest struct {
	Timezone *string      `json:"timezone,omitempty" validate:"omitempty,tzname"`
	Rules    []WeeklyRule `json:"rules" validate:"dive"`
}

type UpsertOverrideRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	IsBlocked bool   `json:"is_blocked"`
}
