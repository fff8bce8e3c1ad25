package recommendController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"edumate/config"
	"edumate/middleware"
	"edumate/models"

	recommendController "edumate/controllers/recommend"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{
		Env:    "test",
		JWTKey: "test-secret",
	}
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Post("/recommendations", middleware.AuthMiddleware, recommendController.Recommend)
	return app
}

func studentToken(t *testing.T) string {
	t.Helper()
	user := models.User{Name: "Alice", Role: models.RoleStudent, Status: models.UserActive}
	user.ID = 1
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func recommend(t *testing.T, app *fiber.App, token string, body interface{}) (*http.Response, string, []string) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/recommendations", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Message string `json:"message"`
		Data    struct {
			Recommendations []string `json:"recommendations"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env.Message, env.Data.Recommendations
}

func TestRecommendRequiresAuth(t *testing.T) {
	app := newApp()

	resp, _, _ := recommend(t, app, "", fiber.Map{"userHistory": "browsed: Go basics"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRecommendRequiresHistory(t *testing.T) {
	app := newApp()
	token := studentToken(t)

	resp, _, _ := recommend(t, app, token, fiber.Map{"userHistory": "  "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRecommendDegradesGracefully(t *testing.T) {
	// No service configured: still a success, with an unavailable message
	app := newApp()
	token := studentToken(t)

	resp, message, recommendations := recommend(t, app, token, fiber.Map{"userHistory": "browsed: Go basics"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Recommendations are currently unavailable.", message)
	assert.Empty(t, recommendations)
}
