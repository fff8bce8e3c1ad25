package controllers

import (
	"errors"
	"log"

	"edumate/middleware"
	"edumate/models"
	courseValidator "edumate/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListAssignments returns a course's assignments ordered by number
func (h *Handler) ListAssignments(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireMaterialAccess(c, course); errResp != nil {
		return errResp
	}

	var assignments []models.Assignment
	if err := h.Db.Where("course_id = ?", course.ID).Order("assignment_number asc").Find(&assignments).Error; err != nil {
		log.Printf("Error fetching assignments for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully.", assignments)
}

// CreateAssignment adds an assignment to a course. The assignment number is
// unique within the course; the database constraint reports duplicates.
func (h *Handler) CreateAssignment(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedAssignment").(*courseValidator.AssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assignment := models.Assignment{
		CourseID:         course.ID,
		AssignmentNumber: reqData.AssignmentNumber,
		Name:             reqData.Name,
		Description:      reqData.Description,
		Instructions:     reqData.Instructions,
		AdditionalFiles:  reqData.AdditionalFiles,
	}

	if err := h.Db.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "An assignment with this number already exists for this course!", nil)
		}
		log.Printf("Error creating assignment for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}

// UpdateAssignment edits an assignment
func (h *Handler) UpdateAssignment(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	assignmentID := c.Locals("assignmentID").(uint)

	var assignment models.Assignment
	if err := h.Db.Where("id = ? AND course_id = ?", assignmentID, course.ID).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*courseValidator.AssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assignment.AssignmentNumber = reqData.AssignmentNumber
	assignment.Name = reqData.Name
	assignment.Description = reqData.Description
	assignment.Instructions = reqData.Instructions
	assignment.AdditionalFiles = reqData.AdditionalFiles

	if err := h.Db.Save(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "An assignment with this number already exists for this course!", nil)
		}
		log.Printf("Error updating assignment %d: %v", assignmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment updated successfully!", assignment)
}

// DeleteAssignment removes an assignment from a course
func (h *Handler) DeleteAssignment(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	assignmentID := c.Locals("assignmentID").(uint)

	var assignment models.Assignment
	if err := h.Db.Where("id = ? AND course_id = ?", assignmentID, course.ID).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	if err := h.Db.Delete(&assignment).Error; err != nil {
		log.Printf("Error deleting assignment %d: %v", assignmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment deleted successfully!", nil)
}
