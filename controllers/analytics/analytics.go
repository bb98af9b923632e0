package analyticsController

import (
	"edutrack/middleware"
	"edutrack/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsController serves the admin dashboard counters
type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

func (ctrl *AnalyticsController) Summary(c *fiber.Ctx) error {
	summary, err := ctrl.analytics.Summarize()
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to compute summary!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary computed successfully.", summary)
}
