package controllers

import (
	"log"

	"edumate/middleware"
	"edumate/models"
	courseValidator "edumate/validators/course"

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

// ListCourses returns the public course catalog, optionally filtered by category
func (h *Handler) ListCourses(c *fiber.Ctx) error {
	query := h.Db.Model(&models.Course{}).Order("created_at desc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetCourse returns a single course by id
func (h *Handler) GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := h.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// CreateCourse creates a new course (admin only)
func (h *Handler) CreateCourse(c *fiber.Ctx) error {
	if err := middleware.Authorize(middleware.Claims(c), models.RoleAdmin, nil); err != nil {
		return authErrorResponse(c, err)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Instructor:  reqData.Instructor,
		Description: reqData.Description,
		Category:    reqData.Category,
		ImageID:     reqData.ImageID,
		Duration:    reqData.Duration,
		Rating:      reqData.Rating,
		Price:       reqData.Price,
		URL:         reqData.URL,
		YoutubeURL:  reqData.YoutubeURL,
	}

	if err := h.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates an existing course (admin only)
func (h *Handler) UpdateCourse(c *fiber.Ctx) error {
	if err := middleware.Authorize(middleware.Claims(c), models.RoleAdmin, nil); err != nil {
		return authErrorResponse(c, err)
	}

	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := h.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CourseUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Instructor != "" {
		course.Instructor = reqData.Instructor
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.ImageID != "" {
		course.ImageID = reqData.ImageID
	}
	if reqData.Duration != "" {
		course.Duration = reqData.Duration
	}
	if reqData.Rating > 0 {
		course.Rating = reqData.Rating
	}
	if reqData.Price > 0 {
		course.Price = reqData.Price
	}
	if reqData.URL != "" {
		course.URL = reqData.URL
	}
	if reqData.YoutubeURL != "" {
		course.YoutubeURL = reqData.YoutubeURL
	}

	if err := h.Db.Save(&course).Error; err != nil {
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse deletes a course (admin only)
func (h *Handler) DeleteCourse(c *fiber.Ctx) error {
	if err := middleware.Authorize(middleware.Claims(c), models.RoleAdmin, nil); err != nil {
		return authErrorResponse(c, err)
	}

	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := h.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := h.Db.Delete(&course).Error; err != nil {
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// authErrorResponse maps policy errors onto the response envelope
func authErrorResponse(c *fiber.Ctx, err error) error {
	switch err {
	case middleware.ErrUnauthenticated:
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	case middleware.ErrUnauthorized:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Insufficient permissions!", nil)
	default:
		log.Printf("Authorization check failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
