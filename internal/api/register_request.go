package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name      string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email     string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password  string `json:"password" form:"password" validate:"required,min=8" example:"Secret123!"`
	Language  string `json:"language" form:"language" validate:"omitempty,oneof=en id" example:"en"`
	HasAgreed bool   `json:"hasAgreed" form:"has_agreed" example:"true"`
}
