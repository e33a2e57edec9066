package request

type CreateBookingRequest struct {
	Start string `json:"start" validate:"required"`
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
}
