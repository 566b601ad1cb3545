package tokens

import (
	"errors"
	"net/http"
	"strconv"

	"lingora/internal/api"
	"lingora/internal/database"
	"lingora/internal/middleware"
	"lingora/internal/store"

	"github.com/labstack/echo/v4"
)

// PurchasePackHandler credits a token pack's tokens to the caller's balance.
// @Summary     Purchase a token pack
// @Description Credits the pack's token amount to the authenticated user's balance
// @Tags        tokens
// @Produce     json
// @Param       id path int true "Token pack ID"
// @Success     200 {object} api.TokenBalanceResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tokenpacks/{id}/purchase [post]
func PurchasePackHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		packID, err := strconv.Atoi(c.Param("id"))
		if err != nil || packID <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid token pack id"})
		}

		balance, err := purchaseTokenPack(c.Request().Context(), db, claims.UserID, packID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "token pack not found"})
			}
			c.Logger().Errorf("purchase token pack: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to purchase token pack"})
		}
		return c.JSON(http.StatusOK, api.TokenBalanceResponse{Token: balance})
	}
}
