package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapt-app/rapt/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "rapt-test"
)

func issueToken(t *testing.T, user auth.User) string {
	t.Helper()
	token, err := NewGenerator(testSecret, testIssuer, time.Hour).Generate(context.Background(), user)
	require.NoError(t, err)
	return token
}

func TestGenerateClaims(t *testing.T) {
	user := auth.User{ID: uuid.New(), Email: "a@b.c", IsAdmin: true}
	tokenStr := issueToken(t, user)

	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(*jwtlib.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.True(t, claims.IsAdmin)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func newProtectedApp(expectedIssuer string) *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware(testSecret, expectedIssuer))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":  c.Locals("userId"),
			"isAdmin": c.Locals("isAdmin") != nil,
		})
	})
	return app
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	app := newProtectedApp(testIssuer)
	token := issueToken(t, auth.User{ID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsBareToken(t *testing.T) {
	app := newProtectedApp(testIssuer)
	token := issueToken(t, auth.User{ID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := newProtectedApp(testIssuer)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	app := newProtectedApp(testIssuer)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareWrongIssuer(t *testing.T) {
	app := newProtectedApp("some-other-issuer")
	token := issueToken(t, auth.User{ID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := newProtectedApp(testIssuer)
	token, err := NewGenerator(testSecret, testIssuer, -time.Minute).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
