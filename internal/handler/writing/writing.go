package writing

import (
	"errors"
	"net/http"

	"lingora/internal/api"
	"lingora/internal/database"
	"lingora/internal/middleware"
	"lingora/internal/service"
	"lingora/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createEssayAnalysis = store.CreateEssayAnalysis
	listEssayHistory    = store.ListEssayHistory
	scoreEssay          = service.ScoreEssay
)

// AnalyzeHandler scores a writing submission and appends it to the caller's
// history. Scoring is cheap enough to run in the request.
// @Summary     Analyze an essay
// @Description Scores the submitted text, debits one token and records the analysis
// @Tags        writing
// @Accept      json
// @Produce     json
// @Param       request body api.CreateEssayRequest true "Essay"
// @Success     201 {object} api.EssayAnalysisResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     402 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /writing [post]
func AnalyzeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateEssayRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "originalFilename and text are required"})
		}

		score := scoreEssay(req.Text)
		analysis, err := createEssayAnalysis(c.Request().Context(), db, claims.UserID, req.OriginalFilename, score)
		if err != nil {
			if errors.Is(err, store.ErrInsufficientTokens) {
				return c.JSON(http.StatusPaymentRequired, api.ErrorResponse{Message: "insufficient tokens"})
			}
			c.Logger().Errorf("create essay analysis: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to analyze essay"})
		}

		return c.JSON(http.StatusCreated, api.EssayAnalysisResponse{
			ID:               analysis.ID,
			OriginalFilename: analysis.OriginalFilename,
			Score:            analysis.Score,
			CreatedAt:        analysis.CreatedAt,
		})
	}
}

// HistoryHandler lists the caller's analyses, newest first.
// @Summary     Writing history
// @Description Returns the caller's essay analyses in reverse chronological order
// @Tags        writing
// @Produce     json
// @Success     200 {array} api.EssayAnalysisResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /writing [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		analyses, err := listEssayHistory(c.Request().Context(), db, claims.UserID)
		if err != nil {
			c.Logger().Errorf("list essay history: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load history"})
		}

		resp := make([]api.EssayAnalysisResponse, 0, len(analyses))
		for _, a := range analyses {
			resp = append(resp, api.EssayAnalysisResponse{
				ID:               a.ID,
				OriginalFilename: a.OriginalFilename,
				Score:            a.Score,
				CreatedAt:        a.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
