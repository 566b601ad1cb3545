package api

// swagger:model api.UpdateMeRequest
type UpdateMeRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Alice"`
	Language string `json:"language" form:"language" validate:"required,oneof=en id" example:"id"`
}
