package adminController

import (
	"errors"
	"log"

	"edumate/middleware"
	"edumate/models"
	adminValidator "edumate/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListCategories returns all categories sorted by name. The read is public;
// the catalog filter uses it.
func (h *Handler) ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.Db.Order("name asc").Find(&categories).Error; err != nil {
		log.Printf("Error fetching categories: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", categories)
}

// CreateCategory creates a category; the unique index on name reports duplicates
func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	if errResp := requireAdmin(c); errResp != nil {
		return errResp
	}

	reqData := c.Locals("validatedCategory").(*adminValidator.CategoryRequest)

	category := models.Category{Name: reqData.Name}
	if err := h.Db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category with this name already exists!", nil)
		}
		log.Printf("Error creating category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// DeleteCategory removes a category
func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	if errResp := requireAdmin(c); errResp != nil {
		return errResp
	}

	categoryID := c.Locals("categoryID").(uint)

	var category models.Category
	if err := h.Db.First(&category, categoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if err := h.Db.Delete(&category).Error; err != nil {
		log.Printf("Error deleting category %d: %v", categoryID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
