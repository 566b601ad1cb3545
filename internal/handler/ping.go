package handler

import (
	"net/http"

	"lingora/internal/api"
	"lingora/internal/cache"
	"lingora/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse is the health check payload.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler checks database and cache connectivity.
// @Summary     Health Check
// @Description Returns pong when the database and cache respond
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Set(ctx, "ping", "pong", 0).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
