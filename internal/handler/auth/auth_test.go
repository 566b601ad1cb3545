package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lingora/internal/cache"
	"lingora/internal/database"
	"lingora/internal/model"
	"lingora/internal/service"
	"lingora/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	issueRefreshToken = service.IssueRefreshToken
	validateRefreshToken = service.ValidateRefreshToken
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("email is required")}
		ctx, rec := newJSONCtx(e, `{"name":"A"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "email is required")
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newJSONCtx(e, `{"name":"A","email":"a@x.com","password":"password1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, store.ErrEmailTaken
		}
		ctx, rec := newJSONCtx(e, `{"name":"A","email":"a@x.com","password":"password1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("store failure is generic", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("connection refused to 10.0.0.5")
		}
		ctx, rec := newJSONCtx(e, `{"name":"A","email":"a@x.com","password":"password1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "10.0.0.5")
	})

	t.Run("success never echoes the password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		hashPassword = func(p string) (string, error) { require.Equal(t, "password1", p); return "h", nil }
		var created *model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			created = u
			u.ID = 1
			u.CreatedAt = now
			return u, nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"A","email":"Alice@EXAMPLE.com","password":"password1","hasAgreed":true}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "alice@example.com", created.Email)
		require.Equal(t, model.RoleUser, created.Role)
		require.Equal(t, "en", created.Language)
		require.NotContains(t, rec.Body.String(), "password1")
		require.NotContains(t, rec.Body.String(), "password_hash")
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, LoginHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, `{"email":"a@x.com","password":"pw"}`)
		require.NoError(t, LoginHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1}, nil
		}
		authenticateUser = func(context.Context, model.User, string) (*model.User, error) {
			return nil, errors.New("invalid password")
		}
		ctx, rec := newJSONCtx(e, `{"email":"a@x.com","password":"pw"}`)
		require.NoError(t, LoginHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token issue failure", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1}, nil
		}
		authenticateUser = func(_ context.Context, u model.User, _ string) (*model.User, error) { return &u, nil }
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "", errors.New("no secret") }
		ctx, rec := newJSONCtx(e, `{"email":"a@x.com","password":"pw"}`)
		require.NoError(t, LoginHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			require.Equal(t, "a@x.com", email)
			return &model.User{ID: 1, Role: model.RoleUser}, nil
		}
		authenticateUser = func(_ context.Context, u model.User, _ string) (*model.User, error) { return &u, nil }
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "at", nil }
		issueRefreshToken = func(context.Context, cache.Cache, int, string, time.Duration) (string, error) {
			return "rt", nil
		}
		ctx, rec := newJSONCtx(e, `{"email":"A@x.com","password":"pw"}`)
		require.NoError(t, LoginHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"access_token":"at"`)
		require.Contains(t, rec.Body.String(), `"refresh_token":"rt"`)
	})
}

func TestRefreshHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid token", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		validateRefreshToken = func(context.Context, cache.Cache, string) (*service.RefreshTokenData, error) {
			return nil, errors.New("invalid refresh token")
		}
		ctx, rec := newJSONCtx(e, `{"refresh_token":"rt"}`)
		require.NoError(t, RefreshHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		validateRefreshToken = func(context.Context, cache.Cache, string) (*service.RefreshTokenData, error) {
			return &service.RefreshTokenData{UserID: 2, Role: model.RoleAdmin}, nil
		}
		issueAccessToken = func(u model.User, _ time.Duration) (string, error) {
			require.Equal(t, 2, u.ID)
			require.Equal(t, model.RoleAdmin, u.Role)
			return "at2", nil
		}
		ctx, rec := newJSONCtx(e, `{"refresh_token":"rt"}`)
		require.NoError(t, RefreshHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "at2")
	})
}
