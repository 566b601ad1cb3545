package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"lingora/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCreateStorySession(t *testing.T) {
	now := time.Now().UTC()

	t.Run("debits and inserts in one statement", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotSQL = sql
				gotArgs = args
				return &fakeRow{vals: []any{5, now, 9}}
			},
		}
		s, remaining, err := CreateStorySession(context.Background(), db, 7, "stories/abc")
		require.NoError(t, err)
		require.Equal(t, 5, s.ID)
		require.Equal(t, 7, s.UserID)
		require.Equal(t, "stories/abc", s.ImageKey)
		require.Equal(t, 9, remaining)
		require.Equal(t, []any{7, StorySessionCost, "stories/abc"}, gotArgs)
		require.Contains(t, gotSQL, "token >= $2")
	})

	t.Run("insufficient tokens", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, _, err := CreateStorySession(context.Background(), db, 7, "k")
		require.ErrorIs(t, err, ErrInsufficientTokens)
	})

	t.Run("store failure", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("down")}
			},
		}
		_, _, err := CreateStorySession(context.Background(), db, 7, "k")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInsufficientTokens)
	})
}

func TestSubmitStoryAnswer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "user_id = $1")
				gotArgs = args
				return &fakeRow{vals: []any{5}}
			},
		}
		require.NoError(t, SubmitStoryAnswer(context.Background(), db, 7, 5, "my story"))
		require.Equal(t, []any{7, 5, "my story"}, gotArgs)
	})

	t.Run("not owned or missing", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		err := SubmitStoryAnswer(context.Background(), db, 7, 5, "x")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("down")}
			},
		}
		require.Error(t, SubmitStoryAnswer(context.Background(), db, 7, 5, "x"))
	})
}

func TestUpdateStoryScore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{5, 80, "good"}, args)
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, UpdateStoryScore(context.Background(), db, 5, 80, "good"))
	})

	t.Run("error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("update")
			},
		}
		require.Error(t, UpdateStoryScore(context.Background(), db, 5, 80, "good"))
	})
}

func TestListStoryHistory(t *testing.T) {
	now := time.Now().UTC()

	t.Run("only answered sessions, newest first", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotSQL = sql
				require.Equal(t, []any{7}, args)
				return &fakeRows{grid: [][]any{
					{3, 7, "k3", strPtr("newest"), strPtr("tips"), intPtr(90), now, now},
					{1, 7, "k1", strPtr("oldest"), nil, nil, now.Add(-time.Hour), now.Add(-time.Hour)},
				}}, nil
			},
		}
		sessions, err := ListStoryHistory(context.Background(), db, 7)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		require.Equal(t, "newest", *sessions[0].UserAnswer)
		require.Nil(t, sessions[1].Score)
		require.Contains(t, gotSQL, "user_answer IS NOT NULL")
		require.Contains(t, gotSQL, "ORDER BY created_at DESC, id DESC")
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListStoryHistory(context.Background(), db, 7)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{rowsErr: errors.New("rows")}, nil
			},
		}
		_, err := ListStoryHistory(context.Background(), db, 7)
		require.Error(t, err)
	})
}
