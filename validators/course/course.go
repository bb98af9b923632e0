package courseValidator

import (
	"edutrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the course creation payload
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	Published   bool   `json:"published"`
}

// UpdateCourseRequest carries partial course edits; nil means unchanged
type UpdateCourseRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents" validate:"omitempty,gte=0"`
	Published   *bool   `json:"published"`
}

// CreateLessonRequest is the lesson creation payload
type CreateLessonRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
	Position int    `json:"position" validate:"gte=0"`
}

// UpdateLessonRequest carries partial lesson edits; nil means unchanged
type UpdateLessonRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content  *string `json:"content"`
	VideoURL *string `json:"video_url" validate:"omitempty,url"`
	Position *int    `json:"position" validate:"omitempty,gte=0"`
}

// ProgressRequest is the lesson completion payload
type ProgressRequest struct {
	LessonID  *uint `json:"lesson_id"`
	Completed bool  `json:"completed"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationMessages(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationMessages(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateLesson validator middleware
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationMessages(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validator middleware
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationMessages(err))
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// RecordProgress validator middleware
func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.LessonID != nil && *reqData.LessonID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"lesson_id": "Invalid lesson id!"})
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// IDParam validates a numeric path parameter and stores it under localsKey
func IDParam(param, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt(param)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}

		c.Locals(localsKey, uint(id))
		return c.Next()
	}
}
