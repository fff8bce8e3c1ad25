package authController

import (
	"errors"
	"log"

	"edumate/config"
	"edumate/middleware"
	"edumate/models"
	authValidator "edumate/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Handler carries the injected database handle
type Handler struct {
	Db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Db: db}
}

// Signup registers a new student or instructor account
func (h *Handler) Signup(c *fiber.Ctx) error {
	// Retrieve validated request data
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Instructor accounts wait for admin approval
	status := models.UserActive
	if reqData.SignupRole() == models.RoleInstructor {
		status = models.UserPending
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     reqData.SignupRole(),
		Status:   status,
	}

	// The unique index on email is the duplicate check
	if err := h.Db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User with this email already exists!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	// Instructors are not logged in automatically; their application is
	// reviewed by an admin first.
	if newUser.Role == models.RoleInstructor {
		return middleware.JsonResponse(c, fiber.StatusCreated, true,
			"Registration successful! Your instructor application is under review. You will be notified upon approval.", nil)
	}

	token, err := middleware.GenerateToken(&newUser)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}
	middleware.SetSessionCookie(c, token)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", fiber.Map{
		"id":    newUser.ID,
		"name":  newUser.Name,
		"email": newUser.Email,
		"role":  newUser.Role,
	})
}

// Login verifies credentials and issues a session cookie
func (h *Handler) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := h.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		// Same response as a wrong password; no account enumeration
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if user.Role == models.RoleInstructor && user.Status == models.UserPending {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your instructor account is pending approval.", nil)
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}
	middleware.SetSessionCookie(c, token)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// Logout clears the session cookie
func (h *Handler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}
