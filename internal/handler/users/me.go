package users

import (
	"errors"
	"net/http"

	"lingora/internal/api"
	"lingora/internal/database"
	"lingora/internal/middleware"
	"lingora/internal/model"
	"lingora/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByID       = store.GetUserByID
	updateUserProfile = store.UpdateUserProfile
	listUsers         = store.ListUsers
)

func toUserResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Language:      u.Language,
		ProfileImage:  u.ProfileImage,
		HasAgreed:     u.HasAgreed,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// GetMeHandler returns the authenticated user's profile.
// @Summary     Get current user
// @Description Returns the profile of the authenticated user
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			c.Logger().Errorf("get me: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}
		return c.JSON(http.StatusOK, toUserResponse(user))
	}
}

// UpdateMeHandler updates the caller's name and language preference.
// @Summary     Update current user
// @Description Updates the display name and interface language of the authenticated user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateMeRequest true "profile fields"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [put]
func UpdateMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.UpdateMeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := updateUserProfile(c.Request().Context(), db, claims.UserID, req.Name, req.Language); err != nil {
			c.Logger().Errorf("update me: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update user"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
