package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID            int       `json:"id" example:"1"`
	Name          string    `json:"name" example:"Alice"`
	Email         string    `json:"email" example:"alice@example.com"`
	Role          string    `json:"role" example:"USER"`
	Language      string    `json:"language" example:"en"`
	ProfileImage  *string   `json:"profile_image"`
	HasAgreed     bool      `json:"has_agreed" example:"true"`
	EmailVerified bool      `json:"email_verified" example:"false"`
	CreatedAt     time.Time `json:"created_at"`
}
