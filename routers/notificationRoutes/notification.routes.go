package notificationRoutes

import (
	notificationController "edutrack/controllers/notification"
	"edutrack/middleware"
	"edutrack/models"
	courseValidator "edutrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up the notification feed
func SetupNotificationRoutes(app *fiber.App, notifications *notificationController.NotificationController) {
	group := app.Group("/api/notifications", middleware.JWTMiddleware)

	group.Get("/", notifications.List)
	group.Post("/", middleware.RequireRoles(models.RoleAdmin), notifications.Send)
	group.Post("/:id/read", courseValidator.IDParam("id", "notificationID"), notifications.MarkRead)
}
