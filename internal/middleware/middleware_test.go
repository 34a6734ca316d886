package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buku-tamu-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func claims(role string, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{"user_id": 7, "username": "gro1", "role": role, "pos": "Lobby", "exp": exp.Unix()}
}

func call(t *testing.T, app *fiber.App, method, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/x", Auth(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals("user_id"),
			"username": c.Locals("username"),
			"pos":      c.Locals("pos"),
		})
	})

	valid := sign(t, jwt.SigningMethodHS256, []byte(secret), claims(model.RoleGRO, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, valid).StatusCode)

	tests := []struct {
		name  string
		token string
	}{
		{"tanpa token", ""},
		{"secret salah", sign(t, jwt.SigningMethodHS256, []byte("lain"), claims(model.RoleGRO, time.Now().Add(time.Hour)))},
		{"kadaluwarsa", sign(t, jwt.SigningMethodHS256, []byte(secret), claims(model.RoleGRO, time.Now().Add(-time.Hour)))},
		{"alg none", sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims(model.RoleGRO, time.Now().Add(time.Hour)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, fiber.StatusUnauthorized, call(t, app, http.MethodGet, tt.token).StatusCode)
		})
	}
}

func TestRole(t *testing.T) {
	app := fiber.New()
	app.Get("/x", Auth(secret), Role(model.RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	admin := sign(t, jwt.SigningMethodHS256, []byte(secret), claims(model.RoleAdmin, time.Now().Add(time.Hour)))
	gro := sign(t, jwt.SigningMethodHS256, []byte(secret), claims(model.RoleGRO, time.Now().Add(time.Hour)))

	assert.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, admin).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, call(t, app, http.MethodGet, gro).StatusCode)
}

type fakeAktivitasRepo struct {
	rows []model.AktivitasPengguna
	err  error
}

func (f *fakeAktivitasRepo) Create(ctx context.Context, a *model.AktivitasPengguna) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeAktivitasRepo) Paginate(ctx context.Context, page, pageSize int, search string) ([]model.AktivitasPengguna, int64, error) {
	return f.rows, int64(len(f.rows)), nil
}

func TestAktivitas(t *testing.T) {
	repo := &fakeAktivitasRepo{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := fiber.New()
	app.Use(Auth(secret), Aktivitas(repo, log))
	app.All("/x", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	token := sign(t, jwt.SigningMethodHS256, []byte(secret), claims(model.RoleGRO, time.Now().Add(time.Hour)))
	call(t, app, http.MethodGet, token)
	call(t, app, http.MethodPost, token)
	call(t, app, http.MethodDelete, token)

	require.Len(t, repo.rows, 2)
	assert.Equal(t, "POST /x", repo.rows[0].Aksi)
	assert.Equal(t, "gro1", repo.rows[0].Username)
	assert.Equal(t, model.RoleGRO, repo.rows[0].Role)
	assert.Equal(t, fiber.StatusCreated, repo.rows[0].StatusCode)
	assert.Equal(t, "DELETE /x", repo.rows[1].Aksi)

	repo.err = errors.New("db down")
	assert.Equal(t, fiber.StatusCreated, call(t, app, http.MethodPost, token).StatusCode)
}
