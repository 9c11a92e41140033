package authController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"swimtrack/config"
	"swimtrack/database"
	"swimtrack/models"
	"swimtrack/store"
	authValidator "swimtrack/validators/auth"
)

func newTestApp(t *testing.T) (*fiber.App, store.Store) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey:        "test-secret",
		SaltRound:     bcrypt.MinCost,
		TokenTTL:      1,
		AdminAccount:  "admin",
		AdminPassword: "admin123",
	}
	cfg := *config.AppConfig
	cfg.DBDriver = "sqlite"
	cfg.DBDSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := database.Connect(&cfg)
	require.NoError(t, err)
	st := store.New(db)

	app := fiber.New()
	app.Post("/auth/login", authValidator.Login(), New(st).Login)
	return app, st
}

func TestLoginAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	body, _ := json.Marshal(fiber.Map{"account": "admin", "password": "admin123"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
			User  struct {
				Role string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Status)
	assert.NotEmpty(t, envelope.Data.Token)
	assert.Equal(t, models.RoleAdmin, envelope.Data.User.Role)
}

func TestLoginCoachAndStudent(t *testing.T) {
	app, st := newTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, st.CreateCoach(&models.Coach{ID: uuid.NewString(), Name: "Sam", Account: "sam", PasswordHash: string(hash)}))
	require.NoError(t, st.CreateStudent(&models.Student{ID: uuid.NewString(), Name: "Kim", Account: "kim", PasswordHash: string(hash)}))

	for account, wantRole := range map[string]string{"sam": models.RoleCoach, "kim": models.RoleStudent} {
		body, _ := json.Marshal(fiber.Map{"account": account, "password": "pass1234"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var envelope struct {
			Data struct {
				User struct {
					Role string `json:"role"`
				} `json:"user"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, wantRole, envelope.Data.User.Role, "account %s", account)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	body, _ := json.Marshal(fiber.Map{"account": "admin", "password": "wrong"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ = json.Marshal(fiber.Map{"account": "nobody", "password": "whatever"})
	req = httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginValidatesPayload(t *testing.T) {
	app, _ := newTestApp(t)

	body, _ := json.Marshal(fiber.Map{"account": "", "password": ""})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
