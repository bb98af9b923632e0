package notificationController

import (
	"strings"

	"edutrack/middleware"
	"edutrack/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationController handles the caller's notification feed and lets
// admins send notifications to users
type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notifications, err := ctrl.notifications.ListForUser(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch notifications!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully.", notifications)
}

// Send records a notification for another user. Admin only.
func (ctrl *NotificationController) Send(c *fiber.Ctx) error {
	reqData := new(struct {
		UserID  uint   `json:"user_id"`
		Message string `json:"message"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.UserID == 0 || strings.TrimSpace(reqData.Message) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"user_id": "User id and message are required!",
		})
	}

	notification, err := ctrl.notifications.Record(reqData.UserID, reqData.Message)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to send notification!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notification sent successfully.", notification)
}

func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	notificationID, ok := c.Locals("notificationID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}

	notification, err := ctrl.notifications.MarkRead(notificationID, userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to mark notification as read!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read.", notification)
}
