package adminValidator

import (
	"strconv"
	"strings"

	"edumate/middleware"
	"edumate/models"

	"github.com/gofiber/fiber/v2"
)

// RoleChangeRequest is the validated role-change body
type RoleChangeRequest struct {
	Role models.Role `json:"role"`
}

// RejectInstructorRequest is the validated instructor-rejection body
type RejectInstructorRequest struct {
	InstructorID uint `json:"instructorId"`
}

// CategoryRequest is the validated category create body
type CategoryRequest struct {
	Name string `json:"name"`
}

// UpdateUserRole validator middleware
func UpdateUserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("id"))
		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		reqData := new(RoleChangeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Role is validated at the boundary; handlers never re-check it
		if !reqData.Role.Valid() {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role specified!", nil)
		}

		c.Locals("targetUserID", uint(userID))
		c.Locals("validatedRoleChange", reqData)
		return c.Next()
	}
}

// RejectInstructor validator middleware
func RejectInstructor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RejectInstructorRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.InstructorID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor ID is required!", nil)
		}

		c.Locals("validatedReject", reqData)
		return c.Next()
	}
}

// CreateCategory validator middleware
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category name is required!", nil)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// CategoryID validator middleware
func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category ID!", nil)
		}
		c.Locals("categoryID", uint(id))
		return c.Next()
	}
}
