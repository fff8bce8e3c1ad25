package enrollmentController

import (
	"errors"
	"log"

	"edumate/middleware"
	"edumate/models"
	enrollmentValidator "edumate/validators/enrollment"

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

// Enroll records a student's payment details against a course, starting the
// workflow in the pending state
func (h *Handler) Enroll(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}
	if claims.Role != models.RoleStudent {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only students can enroll!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := h.Db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollment := models.Enrollment{
		UserID:        claims.UserID,
		CourseID:      course.ID,
		ContactNumber: reqData.ContactNumber,
		PaymentMethod: models.PaymentMethodBkash,
		BkashNumber:   reqData.BkashNumber,
		TransactionID: reqData.TransactionID,
		Status:        models.EnrollmentPending,
	}

	// No existence pre-check: the unique index on (user_id, course_id) is
	// what stops two concurrent submissions from both inserting.
	if err := h.Db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted an enrollment request for this course!", nil)
		}
		log.Printf("Error creating enrollment (user %d, course %d): %v", claims.UserID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit enrollment request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true,
		"Enrollment request submitted successfully. You will be notified upon approval.", enrollment)
}

// MyEnrollments lists the requesting student's enrollments, newest first,
// with the course's title and instructor projected
func (h *Handler) MyEnrollments(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}
	if claims.Role != models.RoleStudent {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only students have enrollments!", nil)
	}

	var enrollments []models.Enrollment
	if err := h.Db.Where("user_id = ?", claims.UserID).
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "instructor")
		}).
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", claims.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
}
