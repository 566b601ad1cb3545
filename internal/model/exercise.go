package model

import "time"

// StoryTellingSession pairs a prompt image with the user's submitted answer.
// UserAnswer stays nil until the user responds; sessions without an answer
// are not part of the history listing.
type StoryTellingSession struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	ImageKey    string    `db:"image_key"`
	UserAnswer  *string   `db:"user_answer"`
	Suggestions *string   `db:"suggestions"`
	Score       *int      `db:"score"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// EssayAnalysis is a scored writing submission. Append-only.
type EssayAnalysis struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	OriginalFilename string    `db:"original_filename"`
	Score            int       `db:"score"`
	CreatedAt        time.Time `db:"created_at"`
}
