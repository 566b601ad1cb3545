package auth

import (
	"net/http"
	"strings"

	"lingora/internal/api"
	"lingora/internal/database"
	"lingora/internal/model"
	"lingora/internal/service"
	"lingora/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

// RegisterHandler creates a new account together with its token ledger row.
// @Summary     Register a new user
// @Description Creates a user account; the email must be unused and the password is stored as a bcrypt hash
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "registration data"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		language := req.Language
		if language == "" {
			language = "en"
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Role:         model.RoleUser,
			Language:     language,
			HasAgreed:    req.HasAgreed,
		})
		if err != nil {
			if err == store.ErrEmailTaken {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
			}
			c.Logger().Errorf("register: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create user"})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			Role:          user.Role,
			Language:      user.Language,
			ProfileImage:  user.ProfileImage,
			HasAgreed:     user.HasAgreed,
			EmailVerified: user.EmailVerified,
			CreatedAt:     user.CreatedAt,
		})
	}
}
