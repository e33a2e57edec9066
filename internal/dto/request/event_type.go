package request

type CreateEventTypeRequest struct {
	OperatorID      string `json:"operator_id" validate:"required,uuid4"`
	Title           string `json:"title" validate:"required,min=1,max=200"`
	Description     string `json:"description" validate:"max=2000"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
	Slug            string `json:"slug" validate:"required,min=1,max=100"`
}

type UpdateEventTypeRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	Description     string `json:"description" validate:"max=2000"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
	Slug            string `json:"slug" validate:"required,min=1,max=100"`
}
