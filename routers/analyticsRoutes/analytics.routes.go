package analyticsRoutes

import (
	analyticsController "edutrack/controllers/analytics"
	"edutrack/middleware"
	"edutrack/models"

	"github.com/gofiber/fiber/v2"
)

// SetupAnalyticsRoutes sets up the dashboard summary
func SetupAnalyticsRoutes(app *fiber.App, analytics *analyticsController.AnalyticsController) {
	group := app.Group("/api/analytics", middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleAdmin, models.RoleInstructor))

	group.Get("/summary", analytics.Summary)
}
