package store

import (
	"context"
	"errors"
	"fmt"

	"lingora/internal/database"
	"lingora/internal/model"

	"github.com/jackc/pgx/v5"
)

// EssayAnalysisCost is how many tokens a writing analysis debits.
const EssayAnalysisCost = 1

// CreateEssayAnalysis debits the analysis cost and appends the record in one
// statement, mirroring CreateStorySession.
func CreateEssayAnalysis(ctx context.Context, db database.DB, userID int, originalFilename string, score int) (*model.EssayAnalysis, error) {
	a := &model.EssayAnalysis{UserID: userID, OriginalFilename: originalFilename, Score: score}
	err := db.QueryRow(ctx,
		`WITH debit AS (
		     UPDATE token_balances
		     SET token = token - $2, updated_at = now()
		     WHERE user_id = $1 AND token >= $2
		     RETURNING token
		 )
		 INSERT INTO essay_analyses (user_id, original_filename, score)
		 SELECT $1, $3, $4 FROM debit
		 RETURNING id, created_at`,
		userID,
		EssayAnalysisCost,
		originalFilename,
		score,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInsufficientTokens
		}
		return nil, fmt.Errorf("CreateEssayAnalysis: %w", err)
	}
	return a, nil
}

// ListEssayHistory returns the caller's analyses, newest first.
func ListEssayHistory(ctx context.Context, db database.DB, userID int) ([]model.EssayAnalysis, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, original_filename, score, created_at
		 FROM essay_analyses
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEssayHistory: %w", err)
	}
	defer rows.Close()

	var analyses []model.EssayAnalysis
	for rows.Next() {
		var a model.EssayAnalysis
		if err := rows.Scan(&a.ID, &a.UserID, &a.OriginalFilename, &a.Score, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListEssayHistory scan: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEssayHistory rows: %w", err)
	}
	return analyses, nil
}
