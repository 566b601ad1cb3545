package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"lingora/internal/cache"
	"lingora/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// CustomClaims is the JWT payload carried by every authenticated request.
type CustomClaims struct {
	UserID int    `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RefreshTokenData is what a refresh token resolves to in Redis.
type RefreshTokenData struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

// indirections for tests
var (
	parseWithClaims = jwt.ParseWithClaims
	randRead        = rand.Read
	jsonMarshal     = json.Marshal
	jsonUnmarshal   = json.Unmarshal
)

const refreshTokenKeyPrefix = "refresh_token:"

// AuthenticateUser verifies a plaintext password against the stored hash.
func AuthenticateUser(ctx context.Context, user model.User, password string) (*model.User, error) {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errors.New("invalid password")
	}
	return &user, nil
}

// IssueAccessToken signs a JWT for the user valid for ttl.
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()
	claims := CustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates a JWT, returning its claims.
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// IssueRefreshToken stores an opaque random token in the cache for ttl and
// returns it.
func IssueRefreshToken(ctx context.Context, c cache.Cache, userID int, role string, ttl time.Duration) (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	data, err := jsonMarshal(RefreshTokenData{UserID: userID, Role: role})
	if err != nil {
		return "", err
	}

	if err := c.Set(ctx, refreshTokenKeyPrefix+token, data, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ValidateRefreshToken resolves a refresh token; unknown or expired tokens
// come back as an error.
func ValidateRefreshToken(ctx context.Context, c cache.Cache, token string) (*RefreshTokenData, error) {
	val, err := c.Get(ctx, refreshTokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("invalid refresh token")
		}
		return nil, err
	}

	var data RefreshTokenData
	if err := jsonUnmarshal([]byte(val), &data); err != nil {
		return nil, err
	}
	return &data, nil
}
