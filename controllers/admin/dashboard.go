package adminController

import (
	"log"

	"edumate/middleware"
	"edumate/models"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats aggregates the counters shown on the admin dashboard
func (h *Handler) DashboardStats(c *fiber.Ctx) error {
	if errResp := requireAdmin(c); errResp != nil {
		return errResp
	}

	var totalUsers, totalCourses, totalEnrollments int64
	var pendingEnrollments, pendingInstructors int64

	counts := []struct {
		dest  *int64
		query func() error
	}{
		{&totalUsers, func() error {
			return h.Db.Model(&models.User{}).Count(&totalUsers).Error
		}},
		{&totalCourses, func() error {
			return h.Db.Model(&models.Course{}).Count(&totalCourses).Error
		}},
		{&totalEnrollments, func() error {
			return h.Db.Model(&models.Enrollment{}).Count(&totalEnrollments).Error
		}},
		{&pendingEnrollments, func() error {
			return h.Db.Model(&models.Enrollment{}).
				Where("status = ?", models.EnrollmentPending).Count(&pendingEnrollments).Error
		}},
		{&pendingInstructors, func() error {
			return h.Db.Model(&models.User{}).
				Where("role = ? AND status = ?", models.RoleInstructor, models.UserPending).
				Count(&pendingInstructors).Error
		}},
	}
	for _, count := range counts {
		if err := count.query(); err != nil {
			log.Printf("Error computing dashboard stats: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute stats!", nil)
		}
	}

	// Revenue is the price sum of approved enrollments
	var revenue float64
	if err := h.Db.Model(&models.Enrollment{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.status = ?", models.EnrollmentApproved).
		Select("COALESCE(SUM(courses.price), 0)").
		Scan(&revenue).Error; err != nil {
		log.Printf("Error computing revenue: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully.", fiber.Map{
		"totalUsers":         totalUsers,
		"totalCourses":       totalCourses,
		"totalEnrollments":   totalEnrollments,
		"pendingEnrollments": pendingEnrollments,
		"pendingInstructors": pendingInstructors,
		"revenue":            revenue,
	})
}
