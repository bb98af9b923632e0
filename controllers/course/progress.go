package courseController

import (
	"edutrack/middleware"
	"edutrack/services"
	courseValidator "edutrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

// ProgressController handles lesson completion tracking
type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

func (ctrl *ProgressController) Record(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	event, err := ctrl.progress.RecordCompletion(userID, courseID, reqData.LessonID, reqData.Completed)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to record progress!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Progress recorded successfully.", event)
}

func (ctrl *ProgressController) ListForCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	events, err := ctrl.progress.ListForCourse(userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch progress!")
	}

	percent, err := ctrl.progress.CompletionPercent(userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch progress!")
	}

	data := fiber.Map{
		"events":             events,
		"completion_percent": percent,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", data)
}
