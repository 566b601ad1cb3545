package auth

import (
	"net/http"
	"strings"
	"time"

	"lingora/internal/api"
	"lingora/internal/cache"
	"lingora/internal/database"
	"lingora/internal/service"
	"lingora/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

var (
	getUserByEmail    = store.GetUserByEmail
	authenticateUser  = service.AuthenticateUser
	issueAccessToken  = service.IssueAccessToken
	issueRefreshToken = service.IssueRefreshToken
)

// LoginHandler verifies credentials and returns access plus refresh tokens.
// @Summary     Log in
// @Description Exchanges email and password for a JWT access token and a refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := getUserByEmail(ctx, db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		authUser, err := authenticateUser(ctx, *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		accessToken, err := issueAccessToken(*authUser, accessTokenTTL)
		if err != nil {
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		refreshToken, err := issueRefreshToken(ctx, rdb, authUser.ID, authUser.Role, refreshTokenTTL)
		if err != nil {
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		})
	}
}
