package tokens

import (
	"net/http"

	"lingora/internal/api"
	"lingora/internal/database"
	"lingora/internal/middleware"
	"lingora/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getTokenBalance   = store.GetTokenBalance
	listTokenPacks    = store.ListTokenPacks
	purchaseTokenPack = store.PurchaseTokenPack
)

// GetMyTokensHandler returns the caller's token balance.
// @Summary     Get token balance
// @Description Returns the authenticated user's spendable token count; accounts without a ledger row read as zero
// @Tags        tokens
// @Produce     json
// @Success     200 {object} api.TokenBalanceResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/tokens [get]
func GetMyTokensHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		token, err := getTokenBalance(c.Request().Context(), db, claims.UserID)
		if err != nil {
			c.Logger().Errorf("get tokens: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load token balance"})
		}
		return c.JSON(http.StatusOK, api.TokenBalanceResponse{Token: token})
	}
}
