package userRoutes

import (
	userController "edutrack/controllers/user"
	"edutrack/middleware"
	"edutrack/models"
	authValidator "edutrack/validators/auth"
	courseValidator "edutrack/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupUserRoutes sets up admin user management
func SetupUserRoutes(app *fiber.App, db *gorm.DB, users *userController.UserController) {
	group := app.Group("/api/users", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))

	group.Get("/", users.List)
	group.Post("/", authValidator.Signup(), users.Create)
	group.Get("/:id", courseValidator.IDParam("id", "targetUserID"), users.Get)

	// Deletion re-verifies the admin role against the database
	group.Delete("/:id",
		middleware.RequireFreshRole(db, models.RoleAdmin),
		courseValidator.IDParam("id", "targetUserID"),
		users.Delete)
}
