package adminController

import (
	"log"

	"edumate/middleware"
	"edumate/models"
	"edumate/utils"
	adminValidator "edumate/validators/admin"

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

// requireAdmin answers nil when the principal is an admin
func requireAdmin(c *fiber.Ctx) error {
	if err := middleware.Authorize(middleware.Claims(c), models.RoleAdmin, nil); err != nil {
		if err == middleware.ErrUnauthenticated {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
	}
	return nil
}

// ListUsers returns all accounts for the admin user screen
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	if errResp := requireAdmin(c); errResp != nil {
		return errResp
	}

	var users []models.User
	if err := h.Db.Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// UpdateUserRole changes a user's role. Promoting a pending account to
// instructor activates it, which is how instructor applications get approved.
func (h *Handler) UpdateUserRole(c *fiber.Ctx) error {
	if errResp := requireAdmin(c); errResp != nil {
		return errResp
	}

	targetID := c.Locals("targetUserID").(uint)
	reqData := c.Locals("validatedRoleChange").(*adminValidator.RoleChangeRequest)

	var user models.User
	if err := h.Db.First(&user, targetID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	activated := false
	user.Role = reqData.Role
	if reqData.Role == models.RoleInstructor && user.Status == models.UserPending {
		user.Status = models.UserActive
		activated = true
	}

	if err := h.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating role for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	if activated {
		go utils.SendInstructorApproved(user)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", user)
}

// RejectInstructor removes a pending instructor application entirely
func (h *Handler) RejectInstructor(c *fiber.Ctx) error {
	if errResp := requireAdmin(c); errResp != nil {
		return errResp
	}

	reqData := c.Locals("validatedReject").(*adminValidator.RejectInstructorRequest)

	var user models.User
	if err := h.Db.First(&user, reqData.InstructorID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	if err := h.Db.Unscoped().Delete(&user).Error; err != nil {
		log.Printf("Error deleting instructor %d: %v", reqData.InstructorID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove instructor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor rejected and removed successfully!", nil)
}
