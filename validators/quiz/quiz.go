package quizValidator

import (
	"edutrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateQuizRequest is the quiz creation payload
type CreateQuizRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=255"`
	PassingScore *int   `json:"passing_score" validate:"omitempty,gte=0,lte=100"`
}

// AddQuestionRequest is the question creation payload. The correct answer is
// given by index into the options slice.
type AddQuestionRequest struct {
	Text         string   `json:"text" validate:"required,min=1"`
	Options      []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectIndex int      `json:"correct_index"`
}

// SubmitRequest maps question ids to the selected option ids
type SubmitRequest struct {
	Answers map[uint]uint `json:"answers" validate:"required"`
}

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationMessages(err))
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// AddQuestion validator middleware
func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddQuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationMessages(err))
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationMessages(err))
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
