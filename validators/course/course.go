package courseValidator

import (
	"strconv"
	"strings"

	"edumate/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseIDParam validates a positive integer route parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// CourseRequest is the validated course create body
type CourseRequest struct {
	Title       string  `json:"title" validate:"required"`
	Instructor  string  `json:"instructor" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category"`
	ImageID     string  `json:"imageId"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Price       float64 `json:"price" validate:"gte=0"`
	URL         string  `json:"url"`
	YoutubeURL  string  `json:"youtubeUrl"`
}

// CourseUpdateRequest is the validated course update body; zero values mean
// "leave unchanged"
type CourseUpdateRequest struct {
	Title       string  `json:"title"`
	Instructor  string  `json:"instructor"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageID     string  `json:"imageId"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Price       float64 `json:"price" validate:"gte=0"`
	URL         string  `json:"url"`
	YoutubeURL  string  `json:"youtubeUrl"`
}

// CourseID validator middleware for routes with an :id course parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title is required!"
				case "Instructor":
					errors["instructor"] = "Instructor is required!"
				case "Description":
					errors["description"] = "Description is required!"
				case "Rating":
					errors["rating"] = "Rating must be between 0 and 5!"
				case "Price":
					errors["price"] = "Price must not be negative!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(CourseUpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Rating":
					errors["rating"] = "Rating must be between 0 and 5!"
				case "Price":
					errors["price"] = "Price must not be negative!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
