package quizController

import (
	"edutrack/middleware"
	"edutrack/services"
	quizValidator "edutrack/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

const defaultPassingScore = 70

// QuizController handles quiz authoring, submission and grading
type QuizController struct {
	quizzes *services.QuizService
}

func NewQuizController(quizzes *services.QuizService) *QuizController {
	return &QuizController{quizzes: quizzes}
}

func (ctrl *QuizController) ListByCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	quizzes, err := ctrl.quizzes.ListByCourse(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch quizzes!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully.", quizzes)
}

func (ctrl *QuizController) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData, ok := c.Locals("validatedQuiz").(*quizValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	passingScore := defaultPassingScore
	if reqData.PassingScore != nil {
		passingScore = *reqData.PassingScore
	}

	quiz, err := ctrl.quizzes.CreateQuiz(courseID, userID, role, reqData.Title, passingScore)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to create quiz!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully.", quiz)
}

func (ctrl *QuizController) AddQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}
	reqData, ok := c.Locals("validatedQuestion").(*quizValidator.AddQuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	question, err := ctrl.quizzes.AddQuestion(quizID, userID, role, reqData.Text, reqData.Options, reqData.CorrectIndex)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to add question!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully.", question)
}

func (ctrl *QuizController) Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}
	reqData, ok := c.Locals("validatedSubmission").(*quizValidator.SubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	submission, passed, err := ctrl.quizzes.Submit(userID, quizID, reqData.Answers)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to submit quiz!")
	}

	data := fiber.Map{
		"submission": submission,
		"score":      submission.Score,
		"passed":     passed,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully.", data)
}

func (ctrl *QuizController) ListSubmissions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	submissions, err := ctrl.quizzes.ListSubmissions(userID, quizID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch submissions!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully.", submissions)
}
