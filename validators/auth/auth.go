package authValidator

import (
	"regexp"

	"edumate/middleware"
	"edumate/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var (
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// SignupRequest is the validated signup body
type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Role            string `json:"role" validate:"required,oneof=student instructor"`
}

// LoginRequest is the validated login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name must be at least 2 characters long!"
				case "Email":
					errors["email"] = "Invalid email address!"
				case "Password":
					errors["password"] = "Password must be at least 8 characters long!"
				case "ConfirmPassword":
					errors["confirmPassword"] = "Password confirmation is required!"
				case "Role":
					errors["role"] = "Role must be student or instructor!"
				}
			}
		}

		if _, found := errors["password"]; !found {
			if !hasUppercase.MatchString(reqData.Password) {
				errors["password"] = "Password must contain at least one uppercase letter!"
			} else if !hasDigit.MatchString(reqData.Password) {
				errors["password"] = "Password must contain at least one number!"
			}
		}

		if _, found := errors["confirmPassword"]; !found && reqData.Password != reqData.ConfirmPassword {
			errors["confirmPassword"] = "Passwords don't match!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Email":
					errors["email"] = "Invalid email address!"
				case "Password":
					errors["password"] = "Password is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// SignupRole converts the validated role string into the model enum
func (r *SignupRequest) SignupRole() models.Role {
	return models.Role(r.Role)
}
