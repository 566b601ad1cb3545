package story

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"lingora/internal/api"
	"lingora/internal/database"
	"lingora/internal/middleware"
	"lingora/internal/service"
	"lingora/internal/storage"
	"lingora/internal/store"
	"lingora/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	createStorySession = store.CreateStorySession
	submitStoryAnswer  = store.SubmitStoryAnswer
	updateStoryScore   = store.UpdateStoryScore
	listStoryHistory   = store.ListStoryHistory
	scoreStoryAnswer   = service.ScoreStoryAnswer
)

// CreateSessionHandler starts a story-telling exercise: it debits the session
// cost, records the session and hands back a presigned URL the client uploads
// its prompt image to.
// @Summary     Start a story-telling session
// @Description Debits one token, creates a session and returns a presigned image upload URL
// @Tags        story-telling
// @Produce     json
// @Success     201 {object} api.CreateStoryResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     402 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /conversations/story-telling [post]
func CreateSessionHandler(db database.DB, st storage.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		uploadURL, key, err := st.PresignPut(c.Request().Context())
		if err != nil {
			c.Logger().Errorf("presign upload: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create session"})
		}

		session, remaining, err := createStorySession(c.Request().Context(), db, claims.UserID, key)
		if err != nil {
			if errors.Is(err, store.ErrInsufficientTokens) {
				return c.JSON(http.StatusPaymentRequired, api.ErrorResponse{Message: "insufficient tokens"})
			}
			c.Logger().Errorf("create story session: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create session"})
		}

		return c.JSON(http.StatusCreated, api.CreateStoryResponse{
			SessionID: session.ID,
			UploadURL: uploadURL,
			Token:     remaining,
		})
	}
}

// SubmitAnswerHandler stores the user's answer and queues scoring. Scoring
// runs on the pool with a fresh context so it survives the request.
// @Summary     Submit a story answer
// @Description Records the answer on the caller's session and scores it asynchronously
// @Tags        story-telling
// @Accept      json
// @Produce     json
// @Param       id      path int                    true "Session ID"
// @Param       request body api.StoryAnswerRequest true "Answer"
// @Success     202
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /conversations/story-telling/{id}/answer [put]
func SubmitAnswerHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		sessionID, err := strconv.Atoi(c.Param("id"))
		if err != nil || sessionID <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid session id"})
		}

		var req api.StoryAnswerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "answer is required"})
		}

		if err := submitStoryAnswer(c.Request().Context(), db, claims.UserID, sessionID, req.Answer); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "session not found"})
			}
			c.Logger().Errorf("submit story answer: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to submit answer"})
		}

		logger := c.Logger()
		answer := req.Answer
		wp.Submit(func() {
			score, suggestions := scoreStoryAnswer(answer)
			if err := updateStoryScore(context.Background(), db, sessionID, score, suggestions); err != nil {
				logger.Errorf("score story session %d: %v", sessionID, err)
			}
		})

		return c.NoContent(http.StatusAccepted)
	}
}

// HistoryHandler lists the caller's answered sessions, newest first, with a
// presigned download URL per prompt image.
// @Summary     Story-telling history
// @Description Returns the caller's answered sessions in reverse chronological order
// @Tags        story-telling
// @Produce     json
// @Success     200 {object} api.StoryHistoryResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /conversations/story-telling/history [get]
func HistoryHandler(db database.DB, st storage.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		sessions, err := listStoryHistory(c.Request().Context(), db, claims.UserID)
		if err != nil {
			c.Logger().Errorf("list story history: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load history"})
		}

		resp := api.StoryHistoryResponse{Success: true, Sessions: make([]api.StorySessionResponse, 0, len(sessions))}
		for _, s := range sessions {
			imageURL, err := st.PresignGet(c.Request().Context(), s.ImageKey)
			if err != nil {
				c.Logger().Errorf("presign image %s: %v", s.ImageKey, err)
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load history"})
			}
			item := api.StorySessionResponse{
				ID:          s.ID,
				ImageURL:    imageURL,
				Suggestions: s.Suggestions,
				Score:       s.Score,
				CreatedAt:   s.CreatedAt,
			}
			if s.UserAnswer != nil {
				item.UserAnswer = *s.UserAnswer
			}
			resp.Sessions = append(resp.Sessions, item)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
