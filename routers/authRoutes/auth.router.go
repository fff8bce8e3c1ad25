package authRoutes

import (
	authController "edumate/controllers/auth"
	authValidator "edumate/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAuthRoutes sets up signup, login and logout
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	handler := authController.NewHandler(db)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authValidator.Signup(), handler.Signup)
	authGroup.Post("/login", authValidator.Login(), handler.Login)
	authGroup.Post("/logout", handler.Logout)
}
