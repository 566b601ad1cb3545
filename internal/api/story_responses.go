package api

import "time"

// swagger:model api.CreateStoryResponse
type CreateStoryResponse struct {
	SessionID int    `json:"sessionId" example:"7"`
	UploadURL string `json:"uploadUrl"`
	Token     int    `json:"token" example:"9"`
}

// swagger:model api.StorySessionResponse
type StorySessionResponse struct {
	ID          int       `json:"id" example:"7"`
	ImageURL    string    `json:"imageUrl"`
	UserAnswer  string    `json:"userAnswer"`
	Suggestions *string   `json:"suggestions"`
	Score       *int      `json:"score"`
	CreatedAt   time.Time `json:"createdAt"`
}

// swagger:model api.StoryHistoryResponse
type StoryHistoryResponse struct {
	Success  bool                   `json:"success"`
	Sessions []StorySessionResponse `json:"sessions"`
}
