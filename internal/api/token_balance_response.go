package api

// TokenBalanceResponse mirrors the wire contract of the token endpoints:
// a single integer balance under "token".
// swagger:model api.TokenBalanceResponse
type TokenBalanceResponse struct {
	Token int `json:"token" example:"12"`
}
