package adminRoutes

import (
	adminController "edumate/controllers/admin"
	enrollmentController "edumate/controllers/enrollment"
	instructorController "edumate/controllers/instructor"
	"edumate/middleware"
	adminValidator "edumate/validators/admin"
	enrollmentValidator "edumate/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminRoutes sets up user administration, categories, enrollment
// decisions and the dashboard stats endpoint
func SetupAdminRoutes(app *fiber.App, db *gorm.DB) {
	handler := adminController.NewHandler(db)
	enrollments := enrollmentController.NewHandler(db)
	instructors := instructorController.NewHandler(db)

	// User administration
	userGroup := app.Group("/admin/users")
	userGroup.Get("/", middleware.AuthMiddleware, handler.ListUsers)
	userGroup.Put("/:id", middleware.AuthMiddleware, adminValidator.UpdateUserRole(), handler.UpdateUserRole)

	app.Post("/admin/reject-instructor", middleware.AuthMiddleware, adminValidator.RejectInstructor(), handler.RejectInstructor)

	// Categories; the list is public for the catalog filter
	categoryGroup := app.Group("/admin/categories")
	categoryGroup.Get("/", handler.ListCategories)
	categoryGroup.Post("/", middleware.AuthMiddleware, adminValidator.CreateCategory(), handler.CreateCategory)
	categoryGroup.Delete("/:id", middleware.AuthMiddleware, adminValidator.CategoryID(), handler.DeleteCategory)

	// Enrollment billing and decisions
	enrollmentGroup := app.Group("/admin/enrollments")
	enrollmentGroup.Get("/", middleware.AuthMiddleware, enrollments.ListAll)
	enrollmentGroup.Post("/approve", middleware.AuthMiddleware, enrollmentValidator.Decision(), enrollments.Approve)
	enrollmentGroup.Post("/reject", middleware.AuthMiddleware, enrollmentValidator.Decision(), enrollments.Reject)

	// Dashboard
	app.Get("/admin/dashboard/stats", middleware.AuthMiddleware, handler.DashboardStats)

	// Instructor listings
	app.Get("/instructors", middleware.AuthMiddleware, instructors.ListInstructors)
	app.Get("/instructor/courses", middleware.AuthMiddleware, instructors.MyCourses)
}
