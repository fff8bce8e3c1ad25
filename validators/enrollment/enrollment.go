package enrollmentValidator

import (
	"edumate/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EnrollRequest is the validated enrollment submission body
type EnrollRequest struct {
	CourseID      uint   `json:"courseId" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	BkashNumber   string `json:"bkashNumber" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
}

// DecisionRequest is the validated approve/reject body
type DecisionRequest struct {
	EnrollmentID uint `json:"enrollmentId" validate:"required"`
}

// Enroll validator middleware
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "CourseID":
					errors["courseId"] = "Course ID is required!"
				case "ContactNumber":
					errors["contactNumber"] = "Contact number is required!"
				case "BkashNumber":
					errors["bkashNumber"] = "bKash number is required!"
				case "TransactionID":
					errors["transactionId"] = "Transaction ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// Decision validator middleware for admin approve/reject requests
func Decision() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DecisionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.EnrollmentID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}
