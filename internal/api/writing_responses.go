package api

import "time"

// swagger:model api.EssayAnalysisResponse
type EssayAnalysisResponse struct {
	ID               int       `json:"id" example:"3"`
	OriginalFilename string    `json:"originalFilename" example:"cv.pdf"`
	Score            int       `json:"score" example:"82"`
	CreatedAt        time.Time `json:"createdAt"`
}
