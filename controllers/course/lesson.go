package courseController

import (
	"edutrack/middleware"
	"edutrack/services"
	courseValidator "edutrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

// LessonController handles lesson authoring and listing
type LessonController struct {
	catalog *services.CatalogService
}

func NewLessonController(catalog *services.CatalogService) *LessonController {
	return &LessonController{catalog: catalog}
}

func (ctrl *LessonController) ListByCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	lessons, err := ctrl.catalog.ListLessons(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch lessons!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully.", lessons)
}

func (ctrl *LessonController) Get(c *fiber.Ctx) error {
	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}

	lesson, err := ctrl.catalog.GetLesson(lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully.", lesson)
}

func (ctrl *LessonController) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData, ok := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	lesson, err := ctrl.catalog.CreateLesson(courseID, userID, role, reqData.Title, reqData.Content, reqData.VideoURL, reqData.Position)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to create lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully.", lesson)
}

func (ctrl *LessonController) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}
	reqData, ok := c.Locals("validatedLessonUpdate").(*courseValidator.UpdateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	lesson, err := ctrl.catalog.UpdateLesson(lessonID, userID, role, services.LessonUpdate{
		Title:    reqData.Title,
		Content:  reqData.Content,
		VideoURL: reqData.VideoURL,
		Position: reqData.Position,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to update lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully.", lesson)
}

func (ctrl *LessonController) Delete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}

	if err := ctrl.catalog.DeleteLesson(lessonID, userID, role); err != nil {
		return middleware.ErrorResponse(c, err, "Failed to delete lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully.", nil)
}
