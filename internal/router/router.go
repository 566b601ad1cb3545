package router

import (
	"github.com/labstack/echo/v4"

	"lingora/internal/cache"
	"lingora/internal/database"
	"lingora/internal/handler"
	"lingora/internal/handler/auth"
	"lingora/internal/handler/story"
	"lingora/internal/handler/tokens"
	"lingora/internal/handler/users"
	"lingora/internal/handler/writing"
	"lingora/internal/middleware"
	"lingora/internal/storage"
	"lingora/internal/worker"
)

// Setup registers all routes and middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, st storage.Storage, wp worker.Pool) {
	api := e.Group("/api")

	// health check, requires login
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth)

	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, rdb))
	api.POST("/auth/refresh", auth.RefreshHandler(rdb))

	// token pack catalog is public
	api.GET("/tokenpacks", tokens.ListTokenPacksHandler(db, rdb))
	api.POST("/tokenpacks/:id/purchase", tokens.PurchasePackHandler(db), middleware.RequireAuth)

	api.GET("/user/tokens", tokens.GetMyTokensHandler(db), middleware.RequireAuth)

	api.GET("/users", users.ListUsersHandler(db), middleware.RequireAdmin)

	apiUsersMe := api.Group("/users/me", middleware.RequireAuth)
	apiUsersMe.GET("", users.GetMeHandler(db))
	apiUsersMe.PUT("", users.UpdateMeHandler(db))

	apiStory := api.Group("/conversations/story-telling", middleware.RequireAuth)
	apiStory.POST("", story.CreateSessionHandler(db, st))
	apiStory.PUT("/:id/answer", story.SubmitAnswerHandler(db, wp))
	apiStory.GET("/history", story.HistoryHandler(db, st))

	apiWriting := api.Group("/writing", middleware.RequireAuth)
	apiWriting.POST("", writing.AnalyzeHandler(db))
	apiWriting.GET("", writing.HistoryHandler(db))
}
