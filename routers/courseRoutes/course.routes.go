package courseRoutes

import (
	courseController "edutrack/controllers/course"
	"edutrack/middleware"
	"edutrack/models"
	courseValidator "edutrack/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up the catalog, lesson, enrollment and progress
// routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB,
	courses *courseController.CourseController,
	lessons *courseController.LessonController,
	enrollments *courseController.EnrollmentController,
	progress *courseController.ProgressController) {

	authorOnly := middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin)

	courseGroup := app.Group("/api/courses", middleware.JWTMiddleware)
	courseGroup.Get("/", courses.List)
	courseGroup.Post("/", authorOnly, courseValidator.CreateCourse(), courses.Create)
	courseGroup.Get("/:id", courseValidator.IDParam("id", "courseID"), courses.Get)
	courseGroup.Put("/:id", authorOnly,
		courseValidator.IDParam("id", "courseID"),
		courseValidator.UpdateCourse(), courses.Update)

	// Cascade delete re-verifies the role against the database
	courseGroup.Delete("/:id",
		middleware.RequireFreshRole(db, models.RoleInstructor, models.RoleAdmin),
		courseValidator.IDParam("id", "courseID"),
		courses.Delete)

	courseGroup.Post("/:id/enroll", courseValidator.IDParam("id", "courseID"), enrollments.Enroll)

	enrollmentGroup := app.Group("/api/enrollments", middleware.JWTMiddleware)
	enrollmentGroup.Get("/", enrollments.List)
	enrollmentGroup.Post("/:id/cancel", courseValidator.IDParam("id", "enrollmentID"), enrollments.Cancel)

	lessonGroup := app.Group("/api/lessons", middleware.JWTMiddleware)
	lessonGroup.Get("/course/:courseId", courseValidator.IDParam("courseId", "courseID"), lessons.ListByCourse)
	lessonGroup.Post("/course/:courseId", authorOnly,
		courseValidator.IDParam("courseId", "courseID"),
		courseValidator.CreateLesson(), lessons.Create)
	lessonGroup.Get("/:id", courseValidator.IDParam("id", "lessonID"), lessons.Get)
	lessonGroup.Put("/:id", authorOnly,
		courseValidator.IDParam("id", "lessonID"),
		courseValidator.UpdateLesson(), lessons.Update)
	lessonGroup.Delete("/:id", authorOnly,
		courseValidator.IDParam("id", "lessonID"),
		lessons.Delete)

	progressGroup := app.Group("/api/progress", middleware.JWTMiddleware)
	progressGroup.Get("/course/:courseId", courseValidator.IDParam("courseId", "courseID"), progress.ListForCourse)
	progressGroup.Post("/course/:courseId",
		courseValidator.IDParam("courseId", "courseID"),
		courseValidator.RecordProgress(), progress.Record)
}
