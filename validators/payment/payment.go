package paymentValidator

import (
	"edutrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseIDParam validates the :courseId path parameter
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("courseId")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// Webhook rejects deliveries without a body before signature verification
func Webhook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(c.Body()) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Empty webhook payload!", nil)
		}
		return c.Next()
	}
}
