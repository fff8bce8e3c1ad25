package pageRoutes

import (
	pagesController "edumate/controllers/pages"
	recommendController "edumate/controllers/recommend"
	"edumate/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupPageRoutes sets up the navigable HTML pages behind the redirect guard,
// plus the recommendations endpoint used by the dashboard
func SetupPageRoutes(app *fiber.App) {
	app.Get("/", middleware.PageGuard, pagesController.Home)
	app.Get("/login", middleware.PageGuard, pagesController.Login)
	app.Get("/register", middleware.PageGuard, pagesController.Register)
	app.Get("/dashboard", middleware.PageGuard, pagesController.Dashboard)
	app.Get("/admin/dashboard", middleware.PageGuard, pagesController.AdminDashboard)
	app.Get("/instructor/dashboard", middleware.PageGuard, pagesController.InstructorDashboard)

	app.Post("/recommendations", middleware.AuthMiddleware, recommendController.Recommend)
}
