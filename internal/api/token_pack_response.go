package api

// swagger:model api.TokenPackResponse
type TokenPackResponse struct {
	ID              int    `json:"id" example:"1"`
	Name            string `json:"name" example:"Basic"`
	Price           int    `json:"price" example:"50000"`
	DiscountedPrice int    `json:"discountedPrice" example:"39000"`
	Tokens          int    `json:"tokens" example:"10"`
	Description     string `json:"description"`
}

// swagger:model api.TokenPackListResponse
type TokenPackListResponse struct {
	TokenPacks []TokenPackResponse `json:"tokenPacks"`
}
