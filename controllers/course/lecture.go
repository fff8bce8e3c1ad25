package controllers

import (
	"log"

	"edumate/middleware"
	"edumate/models"
	courseValidator "edumate/validators/course"

	"github.com/gofiber/fiber/v2"
)

// ListLectures returns a course's lectures in playback order
func (h *Handler) ListLectures(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireMaterialAccess(c, course); errResp != nil {
		return errResp
	}

	var lectures []models.Lecture
	if err := h.Db.Where("course_id = ?", course.ID).Order("sort_order asc").Find(&lectures).Error; err != nil {
		log.Printf("Error fetching lectures for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lectures!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lectures fetched successfully.", lectures)
}

// CreateLecture appends a lecture to a course with order max+1
func (h *Handler) CreateLecture(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedLecture").(*courseValidator.LectureRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Append after the current highest order
	var lastLecture models.Lecture
	newOrder := 1
	if err := h.Db.Where("course_id = ?", course.ID).Order("sort_order desc").First(&lastLecture).Error; err == nil {
		newOrder = lastLecture.Order + 1
	}

	lecture := models.Lecture{
		CourseID: course.ID,
		Title:    reqData.Title,
		Type:     reqData.LectureType(),
		Content:  reqData.Content,
		Order:    newOrder,
	}

	if err := h.Db.Create(&lecture).Error; err != nil {
		log.Printf("Error creating lecture for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lecture created successfully!", lecture)
}

// UpdateLecture edits a lecture's title, type or content
func (h *Handler) UpdateLecture(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	lectureID := c.Locals("lectureID").(uint)

	var lecture models.Lecture
	if err := h.Db.Where("id = ? AND course_id = ?", lectureID, course.ID).First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	reqData, ok := c.Locals("validatedLecture").(*courseValidator.LectureRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lecture.Title = reqData.Title
	lecture.Type = reqData.LectureType()
	lecture.Content = reqData.Content

	if err := h.Db.Save(&lecture).Error; err != nil {
		log.Printf("Error updating lecture %d: %v", lectureID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture updated successfully!", lecture)
}

// DeleteLecture removes a lecture from a course
func (h *Handler) DeleteLecture(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	lectureID := c.Locals("lectureID").(uint)

	var lecture models.Lecture
	if err := h.Db.Where("id = ? AND course_id = ?", lectureID, course.ID).First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	if err := h.Db.Delete(&lecture).Error; err != nil {
		log.Printf("Error deleting lecture %d: %v", lectureID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture deleted successfully!", nil)
}
