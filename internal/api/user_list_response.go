package api

// swagger:model api.UserListResponse
type UserListResponse struct {
	Users   []UserResponse `json:"users"`
	Page    int            `json:"page" example:"1"`
	PerPage int            `json:"per_page" example:"20"`
	Total   int            `json:"total" example:"42"`
}
