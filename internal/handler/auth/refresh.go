package auth

import (
	"net/http"

	"lingora/internal/api"
	"lingora/internal/cache"
	"lingora/internal/model"
	"lingora/internal/service"

	"github.com/labstack/echo/v4"
)

var validateRefreshToken = service.ValidateRefreshToken

// RefreshHandler exchanges a refresh token for a fresh access token.
// @Summary     Refresh access token
// @Description Exchanges a stored refresh token for a new JWT access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RefreshRequest true "refresh token"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/refresh [post]
func RefreshHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		data, err := validateRefreshToken(c.Request().Context(), rdb, req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}

		accessToken, err := issueAccessToken(model.User{ID: data.UserID, Role: data.Role}, accessTokenTTL)
		if err != nil {
			c.Logger().Errorf("refresh: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: accessToken})
	}
}
