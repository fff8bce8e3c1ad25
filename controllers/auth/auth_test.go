package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"edumate/config"
	"edumate/database"
	"edumate/models"
	authRoutes "edumate/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	config.AppConfig = &config.Config{
		Env:       "test",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db)
	return app, db
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			return cookie
		}
	}
	return nil
}

func signupBody(role string) fiber.Map {
	return fiber.Map{
		"name":            "Alice Rahman",
		"email":           "alice@example.com",
		"password":        "Secret123",
		"confirmPassword": "Secret123",
		"role":            role,
	}
}

func TestSignupStudent(t *testing.T) {
	app, db := newTestApp(t)

	resp, env := postJSON(t, app, "/auth/signup", signupBody("student"))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Status)

	// Student accounts get a session immediately
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var user models.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, models.UserActive, user.Status)
	assert.NotEqual(t, "Secret123", user.Password)
}

func TestSignupInstructorPending(t *testing.T) {
	app, db := newTestApp(t)

	body := signupBody("instructor")
	body["email"] = "jane@example.com"
	resp, env := postJSON(t, app, "/auth/signup", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, env.Message, "under review")

	// No session until an admin approves the application
	assert.Nil(t, sessionCookie(resp))

	var user models.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&user).Error)
	assert.Equal(t, models.RoleInstructor, user.Role)
	assert.Equal(t, models.UserPending, user.Status)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/auth/signup", signupBody("student"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := postJSON(t, app, "/auth/signup", signupBody("student"))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Equal(t, "User with this email already exists!", env.Message)
}

func TestSignupValidation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name  string
		field string
		patch fiber.Map
	}{
		{"weak password", "password", fiber.Map{"password": "secret123", "confirmPassword": "secret123"}},
		{"short password", "password", fiber.Map{"password": "Ab1", "confirmPassword": "Ab1"}},
		{"mismatched confirmation", "confirmPassword", fiber.Map{"confirmPassword": "Other123"}},
		{"bad email", "email", fiber.Map{"email": "not-an-email"}},
		{"unknown role", "role", fiber.Map{"role": "superadmin"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := signupBody("student")
			for k, v := range tc.patch {
				body[k] = v
			}
			resp, env := postJSON(t, app, "/auth/signup", body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var fields map[string]string
			require.NoError(t, json.Unmarshal(env.Data, &fields))
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/auth/signup", signupBody("student"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "Secret123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)
	require.NotNil(t, sessionCookie(resp))
}

func TestLoginBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/auth/signup", signupBody("student"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Unknown account and wrong password produce the same response
	resp, env := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "nobody@example.com",
		"password": "Secret123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password!", env.Message)

	resp, env = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "Wrong1234",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password!", env.Message)
	assert.Nil(t, sessionCookie(resp))
}

func TestLoginPendingInstructor(t *testing.T) {
	app, _ := newTestApp(t)

	body := signupBody("instructor")
	body["email"] = "jane@example.com"
	resp, _ := postJSON(t, app, "/auth/signup", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "jane@example.com",
		"password": "Secret123",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, env.Message, "pending approval")
	assert.Nil(t, sessionCookie(resp))
}

func TestLogout(t *testing.T) {
	app, _ := newTestApp(t)

	req, err := http.NewRequest(http.MethodPost, "/auth/logout", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}
