package recommendController

import (
	"strings"

	"edumate/middleware"
	"edumate/utils"

	"github.com/gofiber/fiber/v2"
)

// Recommend answers personalized course recommendations for the requesting
// user. The feature is decorative: when the generative service misbehaves the
// response is still a success carrying an "unavailable" message, never a 5xx.
func Recommend(c *fiber.Ctx) error {
	if middleware.Claims(c) == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}

	reqData := new(struct {
		UserHistory string `json:"userHistory"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if strings.TrimSpace(reqData.UserHistory) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User history is required!", nil)
	}

	recommendations, err := utils.GetRecommendations(reqData.UserHistory)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations are currently unavailable.", fiber.Map{
			"recommendations": []string{},
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations generated successfully.", fiber.Map{
		"recommendations": recommendations,
	})
}
