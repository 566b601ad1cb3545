package store

import (
	"context"
	"errors"
	"fmt"

	"lingora/internal/database"
	"lingora/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const userColumns = `id, name, email, password_hash, role, language, profile_image, has_agreed, email_verified, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Language,
		&u.ProfileImage,
		&u.HasAgreed,
		&u.EmailVerified,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser inserts the user and provisions its token ledger row in a single
// statement, so an account never exists without a balance.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`WITH new_user AS (
		     INSERT INTO users (name, email, password_hash, role, language, has_agreed)
		     VALUES ($1, $2, $3, $4, $5, $6)
		     RETURNING id, created_at
		 ), ledger AS (
		     INSERT INTO token_balances (user_id, token)
		     SELECT id, 0 FROM new_user
		 )
		 SELECT id, created_at FROM new_user`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Language,
		u.HasAgreed,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func UpdateUserProfile(ctx context.Context, db database.DB, userID int, name, language string) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET name = $1, language = $2 WHERE id = $3`,
		name,
		language,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserProfile: %w", err)
	}
	return nil
}

// ListUsers returns one page of users plus the total count. Admin use only;
// callers enforce that.
func ListUsers(ctx context.Context, db database.DB, limit, offset int) ([]model.User, int, error) {
	var total int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListUsers count: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListUsers scan: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListUsers rows: %w", err)
	}
	return users, total, nil
}
