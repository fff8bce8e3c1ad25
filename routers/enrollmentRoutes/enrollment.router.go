package enrollmentRoutes

import (
	enrollmentController "edumate/controllers/enrollment"
	"edumate/middleware"
	enrollmentValidator "edumate/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupEnrollmentRoutes sets up the student-facing enrollment routes
func SetupEnrollmentRoutes(app *fiber.App, db *gorm.DB) {
	handler := enrollmentController.NewHandler(db)

	app.Post("/enrollments", middleware.AuthMiddleware, enrollmentValidator.Enroll(), handler.Enroll)
	app.Get("/my-enrollments", middleware.AuthMiddleware, handler.MyEnrollments)
}
