package store

import (
	"context"
	"errors"
	"fmt"

	"lingora/internal/database"
	"lingora/internal/model"

	"github.com/jackc/pgx/v5"
)

// StorySessionCost is how many tokens starting a session debits.
const StorySessionCost = 1

// CreateStorySession debits the session cost and inserts the session in one
// statement. The debit's WHERE clause keeps the balance non-negative; when it
// matches no row the insert is skipped and ErrInsufficientTokens is returned.
func CreateStorySession(ctx context.Context, db database.DB, userID int, imageKey string) (*model.StoryTellingSession, int, error) {
	s := &model.StoryTellingSession{UserID: userID, ImageKey: imageKey}
	var remaining int
	err := db.QueryRow(ctx,
		`WITH debit AS (
		     UPDATE token_balances
		     SET token = token - $2, updated_at = now()
		     WHERE user_id = $1 AND token >= $2
		     RETURNING token
		 )
		 INSERT INTO story_telling_sessions (user_id, image_key)
		 SELECT $1, $3 FROM debit
		 RETURNING id, created_at, (SELECT token FROM debit)`,
		userID,
		StorySessionCost,
		imageKey,
	).Scan(&s.ID, &s.CreatedAt, &remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrInsufficientTokens
		}
		return nil, 0, fmt.Errorf("CreateStorySession: %w", err)
	}
	return s, remaining, nil
}

// SubmitStoryAnswer records the answer on the caller's own session.
func SubmitStoryAnswer(ctx context.Context, db database.DB, userID, sessionID int, answer string) error {
	var id int
	err := db.QueryRow(ctx,
		`UPDATE story_telling_sessions
		 SET user_answer = $3, updated_at = now()
		 WHERE id = $2 AND user_id = $1
		 RETURNING id`,
		userID,
		sessionID,
		answer,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("SubmitStoryAnswer: %w", err)
	}
	return nil
}

// UpdateStoryScore stores the async scoring result.
func UpdateStoryScore(ctx context.Context, db database.DB, sessionID, score int, suggestions string) error {
	_, err := db.Exec(ctx,
		`UPDATE story_telling_sessions
		 SET score = $2, suggestions = $3, updated_at = now()
		 WHERE id = $1`,
		sessionID,
		score,
		suggestions,
	)
	if err != nil {
		return fmt.Errorf("UpdateStoryScore: %w", err)
	}
	return nil
}

// ListStoryHistory returns the caller's answered sessions, newest first.
// Sessions without an answer are incomplete attempts, not history.
func ListStoryHistory(ctx context.Context, db database.DB, userID int) ([]model.StoryTellingSession, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, image_key, user_answer, suggestions, score, created_at, updated_at
		 FROM story_telling_sessions
		 WHERE user_id = $1 AND user_answer IS NOT NULL
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListStoryHistory: %w", err)
	}
	defer rows.Close()

	var sessions []model.StoryTellingSession
	for rows.Next() {
		var s model.StoryTellingSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.ImageKey, &s.UserAnswer, &s.Suggestions, &s.Score, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListStoryHistory scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStoryHistory rows: %w", err)
	}
	return sessions, nil
}
