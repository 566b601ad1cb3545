package model

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	Role          string    `db:"role" json:"role"`
	Language      string    `db:"language" json:"language"`
	ProfileImage  *string   `db:"profile_image" json:"profile_image"`
	HasAgreed     bool      `db:"has_agreed" json:"has_agreed"`
	EmailVerified bool      `db:"email_verified" json:"email_verified"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
