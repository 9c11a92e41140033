package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/config"
	"swimtrack/models"
)

func setupTestConfig() {
	config.AppConfig = &config.Config{
		JWTKey:   "test-secret",
		TokenTTL: 1,
	}
}

func newProtectedApp(roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{JWTMiddleware}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("userRole"),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestJWTRoundTrip(t *testing.T) {
	setupTestConfig()
	app := newProtectedApp()

	token, err := GenerateJWT("coach-1", "Sam", models.RoleCoach)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMissingHeader(t *testing.T) {
	setupTestConfig()
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMalformedToken(t *testing.T) {
	setupTestConfig()
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	setupTestConfig()
	app := newProtectedApp(models.RoleAdmin)

	token, err := GenerateJWT("coach-1", "Sam", models.RoleCoach)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	adminToken, err := GenerateJWT("admin-1", "admin", models.RoleAdmin)
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
