package api

// swagger:model api.StoryAnswerRequest
type StoryAnswerRequest struct {
	Answer string `json:"answer" form:"answer" validate:"required"`
}
