package instructorController

import (
	"log"

	"edumate/middleware"
	"edumate/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handler carries the injected database handle
type Handler struct {
	Db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Db: db}
}

// ListInstructors returns all active instructors. Any authenticated principal
// may read the list; the course form uses it to pick an instructor of record.
func (h *Handler) ListInstructors(c *fiber.Ctx) error {
	if middleware.Claims(c) == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}

	var instructors []models.User
	if err := h.Db.
		Where("role = ? AND status = ?", models.RoleInstructor, models.UserActive).
		Order("name asc").
		Find(&instructors).Error; err != nil {
		log.Printf("Error fetching instructors: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully.", instructors)
}

// MyCourses lists the courses where the requesting instructor is the
// instructor of record, for the instructor dashboard
func (h *Handler) MyCourses(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if err := middleware.Authorize(claims, models.RoleInstructor, nil); err != nil {
		if err == middleware.ErrUnauthenticated {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Instructor access required!", nil)
	}

	// Matched by display name; see the Course model note
	var courses []models.Course
	if err := h.Db.Where("instructor = ?", claims.Name).Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses for instructor %q: %v", claims.Name, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}
