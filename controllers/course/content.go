package controllers

import (
	"log"

	"edumate/middleware"
	"edumate/models"

	"github.com/gofiber/fiber/v2"
)

// ownsCourse builds the ownership check for content management: the acting
// principal's claimed name must equal the course's instructor of record.
func ownsCourse(course *models.Course) middleware.OwnershipCheck {
	return func(claims *middleware.SessionClaims) (bool, error) {
		return course.Instructor == claims.Name, nil
	}
}

// findCourse loads the target course or answers 404
func (h *Handler) findCourse(c *fiber.Ctx) (*models.Course, error) {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := h.Db.First(&course, courseID).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	return &course, nil
}

// requireContentManager answers nil when the principal may mutate the
// course's content (admin, or the instructor of record)
func (h *Handler) requireContentManager(c *fiber.Ctx, course *models.Course) error {
	if err := middleware.Authorize(middleware.Claims(c), models.RoleInstructor, ownsCourse(course)); err != nil {
		return authErrorResponse(c, err)
	}
	return nil
}

// requireMaterialAccess gates reads of learning materials: admins and the
// owning instructor always pass; students need an approved enrollment. A
// pending or rejected enrollment grants nothing.
func (h *Handler) requireMaterialAccess(c *fiber.Ctx, course *models.Course) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}

	if claims.Role == models.RoleAdmin {
		return nil
	}
	if claims.Role == models.RoleInstructor && course.Instructor == claims.Name {
		return nil
	}
	if claims.Role == models.RoleStudent {
		var enrollment models.Enrollment
		err := h.Db.Where("user_id = ? AND course_id = ? AND status = ?",
			claims.UserID, course.ID, models.EnrollmentApproved).First(&enrollment).Error
		if err == nil {
			return nil
		}
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in this course to access its materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Insufficient permissions!", nil)
}

// findQuizCourse resolves a quiz-scoped route to its quiz and parent course,
// answering 404 when either is missing
func (h *Handler) findQuizCourse(c *fiber.Ctx) (*models.Quiz, *models.Course, error) {
	quizID := c.Locals("quizID").(uint)

	var quiz models.Quiz
	if err := h.Db.First(&quiz, quizID).Error; err != nil {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var course models.Course
	if err := h.Db.First(&course, quiz.CourseID).Error; err != nil {
		log.Printf("Quiz %d references missing course %d", quiz.ID, quiz.CourseID)
		return nil, nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return &quiz, &course, nil
}
