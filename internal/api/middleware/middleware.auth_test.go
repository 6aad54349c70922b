package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotask_backend/config"
	"gotask_backend/internal/global"
	"gotask_backend/internal/utility"
)

const testSecret = "middleware-test-secret"

func setAuthConfig(t *testing.T, enabled bool) {
	t.Helper()
	prev := global.ServerConfig
	global.ServerConfig = &config.Configuration{
		JwtSecret:   testSecret,
		AuthEnabled: enabled,
	}
	t.Cleanup(func() { global.ServerConfig = prev })
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", func(c fiber.Ctx) error {
		return c.SendString("ok")
	}, AuthMiddleware())
	return app
}

func TestAuthMiddlewareAcceptsValidBearerToken(t *testing.T) {
	setAuthConfig(t, true)
	app := newProtectedApp()

	signed, err := utility.CreateToken(testSecret, "64f1c2d3e4a5b6c7d8e9f0a1", "admin@example.com", "admin", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "a freshly signed token should pass the auth check")
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	setAuthConfig(t, true)
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	setAuthConfig(t, true)
	app := newProtectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Token abcdef")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	setAuthConfig(t, true)
	app := newProtectedApp()

	signed, err := utility.CreateToken("some-other-secret", "u1", "u@example.com", "admin", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareDisabledPassesThrough(t *testing.T) {
	setAuthConfig(t, false)
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
