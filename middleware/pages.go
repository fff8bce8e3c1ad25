package middleware

import (
	"strings"

	"edumate/models"

	"github.com/gofiber/fiber/v2"
)

// PageGuard applies the navigation redirect policy to HTML page routes.
// API routes use AuthMiddleware instead; this guard never returns JSON.
//
//   - no token: protected pages redirect to /login, everything else passes
//   - broken token: cookie is cleared; protected pages redirect to /login,
//     auth pages stay reachable so the user can re-authenticate
//   - valid token: auth pages redirect to /dashboard, /dashboard fans out by
//     role, and role mismatches on /admin/* or /instructor/* fall back to
//     /dashboard
func PageGuard(c *fiber.Ctx) error {
	path := c.Path()

	isAuthPage := strings.HasPrefix(path, "/login") || strings.HasPrefix(path, "/register")
	isDashboardPage := path == "/dashboard"
	isAdminPage := strings.HasPrefix(path, "/admin")
	isInstructorPage := strings.HasPrefix(path, "/instructor")
	isProtected := isDashboardPage || isAdminPage || isInstructorPage

	raw := c.Cookies(SessionCookie)
	if raw == "" {
		if isProtected {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}

	claims, err := ParseToken(raw)
	if err != nil {
		ClearSessionCookie(c)
		if isProtected {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}

	if isAuthPage {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	// Send users from the generic dashboard to their role's own one
	if isDashboardPage {
		switch claims.Role {
		case models.RoleAdmin:
			return c.Redirect("/admin/dashboard", fiber.StatusFound)
		case models.RoleInstructor:
			return c.Redirect("/instructor/dashboard", fiber.StatusFound)
		}
	}

	if isAdminPage && claims.Role != models.RoleAdmin {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	if isInstructorPage && (claims.Role != models.RoleInstructor || claims.Status != models.UserActive) {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	return c.Next()
}
