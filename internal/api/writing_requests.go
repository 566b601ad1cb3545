package api

// swagger:model api.CreateEssayRequest
type CreateEssayRequest struct {
	OriginalFilename string `json:"originalFilename" form:"original_filename" validate:"required" example:"cv.pdf"`
	Text             string `json:"text" form:"text" validate:"required"`
}
