package quizRoutes

import (
	quizController "edutrack/controllers/quiz"
	"edutrack/middleware"
	"edutrack/models"
	courseValidator "edutrack/validators/course"
	quizValidator "edutrack/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz authoring and submission routes
func SetupQuizRoutes(app *fiber.App, quizzes *quizController.QuizController) {
	authorOnly := middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin)

	group := app.Group("/api/quizzes", middleware.JWTMiddleware)

	group.Get("/course/:courseId", courseValidator.IDParam("courseId", "courseID"), quizzes.ListByCourse)
	group.Post("/course/:courseId", authorOnly,
		courseValidator.IDParam("courseId", "courseID"),
		quizValidator.CreateQuiz(), quizzes.Create)

	group.Post("/:id/questions", authorOnly,
		courseValidator.IDParam("id", "quizID"),
		quizValidator.AddQuestion(), quizzes.AddQuestion)

	group.Post("/:id/submit",
		courseValidator.IDParam("id", "quizID"),
		quizValidator.Submit(), quizzes.Submit)
	group.Get("/:id/submissions", courseValidator.IDParam("id", "quizID"), quizzes.ListSubmissions)
}
