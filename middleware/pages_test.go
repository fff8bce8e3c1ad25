package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"edumate/middleware"
	"edumate/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPagesApp() *fiber.App {
	app := fiber.New()
	render := func(c *fiber.Ctx) error { return c.SendString("page") }
	app.Get("/", middleware.PageGuard, render)
	app.Get("/login", middleware.PageGuard, render)
	app.Get("/register", middleware.PageGuard, render)
	app.Get("/dashboard", middleware.PageGuard, render)
	app.Get("/admin/dashboard", middleware.PageGuard, render)
	app.Get("/instructor/dashboard", middleware.PageGuard, render)
	return app
}

func tokenFor(t *testing.T, name string, role models.Role, status models.UserStatus) string {
	t.Helper()
	user := models.User{Name: name, Role: role, Status: status}
	user.ID = 1
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func navigate(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	resp, err := app.Test(requestWithCookie(path, token), 5000)
	require.NoError(t, err)
	return resp
}

func TestPageGuardAnonymous(t *testing.T) {
	app := newPagesApp()

	for _, path := range []string{"/dashboard", "/admin/dashboard", "/instructor/dashboard"} {
		resp := navigate(t, app, path, "")
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}

	for _, path := range []string{"/", "/login", "/register"} {
		resp := navigate(t, app, path, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestPageGuardAuthPagesRedirectWhenLoggedIn(t *testing.T) {
	app := newPagesApp()
	token := tokenFor(t, "Alice", models.RoleStudent, models.UserActive)

	for _, path := range []string{"/login", "/register"} {
		resp := navigate(t, app, path, token)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"), path)
	}
}

func TestPageGuardDashboardFanOut(t *testing.T) {
	app := newPagesApp()

	resp := navigate(t, app, "/dashboard", tokenFor(t, "Root", models.RoleAdmin, models.UserActive))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))

	resp = navigate(t, app, "/dashboard", tokenFor(t, "Jane", models.RoleInstructor, models.UserActive))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/instructor/dashboard", resp.Header.Get("Location"))

	resp = navigate(t, app, "/dashboard", tokenFor(t, "Alice", models.RoleStudent, models.UserActive))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPageGuardRoleMismatch(t *testing.T) {
	app := newPagesApp()
	student := tokenFor(t, "Alice", models.RoleStudent, models.UserActive)

	// A student reaching the admin dashboard is bounced to their own
	// dashboard, not to login
	resp := navigate(t, app, "/admin/dashboard", student)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	resp = navigate(t, app, "/instructor/dashboard", student)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestPageGuardPendingInstructorBlocked(t *testing.T) {
	app := newPagesApp()
	pending := tokenFor(t, "Jane", models.RoleInstructor, models.UserPending)

	resp := navigate(t, app, "/instructor/dashboard", pending)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestPageGuardBrokenToken(t *testing.T) {
	app := newPagesApp()
	expired := signedToken(t, "test-secret", time.Now().Add(-time.Hour))

	// Protected page: cleared cookie plus redirect to login
	resp := navigate(t, app, "/admin/dashboard", expired)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.True(t, clearedSessionCookie(resp))

	// Auth pages stay reachable so the user can log in again
	resp = navigate(t, app, "/login", expired)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, clearedSessionCookie(resp))
}
