package enrollmentController

import (
	"log"

	"edumate/middleware"
	"edumate/models"
	"edumate/utils"
	enrollmentValidator "edumate/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAll lists every enrollment for the admin billing view, with the user's
// name/email and the course title projected
func (h *Handler) ListAll(c *fiber.Ctx) error {
	if err := middleware.Authorize(middleware.Claims(c), models.RoleAdmin, nil); err != nil {
		return decisionAuthResponse(c, err)
	}

	var enrollments []models.Enrollment
	if err := h.Db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title")
		}).
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
}

// Approve moves a pending enrollment to approved, stamps a receipt number,
// and notifies the student
func (h *Handler) Approve(c *fiber.Ctx) error {
	return h.decide(c, models.EnrollmentApproved)
}

// Reject moves a pending enrollment to rejected and notifies the student
func (h *Handler) Reject(c *fiber.Ctx) error {
	return h.decide(c, models.EnrollmentRejected)
}

// decide performs an admin transition out of the pending state. Approved and
// rejected are terminal: deciding twice answers a conflict.
func (h *Handler) decide(c *fiber.Ctx, target models.EnrollmentStatus) error {
	if err := middleware.Authorize(middleware.Claims(c), models.RoleAdmin, nil); err != nil {
		return decisionAuthResponse(c, err)
	}

	reqData, ok := c.Locals("validatedDecision").(*enrollmentValidator.DecisionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment models.Enrollment
	if err := h.Db.Preload("User").Preload("Course").First(&enrollment, reqData.EnrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.Status.Terminal() {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Enrollment has already been processed!", nil)
	}

	enrollment.Status = target
	updates := map[string]interface{}{"status": target}
	if target == models.EnrollmentApproved {
		enrollment.ReceiptNo = uuid.NewString()
		updates["receipt_no"] = enrollment.ReceiptNo
	}

	// Column-level update; Save would also write the preloaded associations
	if err := h.Db.Model(&enrollment).Updates(updates).Error; err != nil {
		log.Printf("Error updating enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	// Notify the student out of band; delivery failures only get logged
	go func(e models.Enrollment) {
		if e.Status == models.EnrollmentApproved {
			utils.SendEnrollmentApproved(e.User, e.Course, e.ReceiptNo)
		} else {
			utils.SendEnrollmentRejected(e.User, e.Course)
		}
	}(enrollment)

	if target == models.EnrollmentApproved {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment approved successfully!", enrollment)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment rejected successfully!", enrollment)
}

// decisionAuthResponse maps policy errors onto the response envelope
func decisionAuthResponse(c *fiber.Ctx, err error) error {
	if err == middleware.ErrUnauthenticated {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
}
