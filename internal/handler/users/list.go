package users

import (
	"net/http"
	"strconv"

	"lingora/internal/api"
	"lingora/internal/database"

	"github.com/labstack/echo/v4"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ListUsersHandler returns one page of accounts. Admin only; mounted behind
// RequireAdmin.
// @Summary     List users
// @Description Returns a paginated, password-free listing of all accounts
// @Tags        users
// @Produce     json
// @Param       page     query int false "page number, 1-based"
// @Param       per_page query int false "page size, capped at 100"
// @Success     200 {object} api.UserListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page < 1 {
			page = 1
		}
		perPage, err := strconv.Atoi(c.QueryParam("per_page"))
		if err != nil || perPage < 1 {
			perPage = defaultPerPage
		}
		if perPage > maxPerPage {
			perPage = maxPerPage
		}

		users, total, err := listUsers(c.Request().Context(), db, perPage, (page-1)*perPage)
		if err != nil {
			c.Logger().Errorf("list users: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list users"})
		}

		resp := api.UserListResponse{
			Users:   make([]api.UserResponse, 0, len(users)),
			Page:    page,
			PerPage: perPage,
			Total:   total,
		}
		for i := range users {
			resp.Users = append(resp.Users, toUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
