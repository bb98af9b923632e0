package authRoutes

import (
	authController "edutrack/controllers/auth"
	"edutrack/middleware"
	authValidator "edutrack/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login and token management
func SetupAuthRoutes(app *fiber.App, auth *authController.AuthController) {
	group := app.Group("/api/auth")

	group.Post("/register", authValidator.Signup(), auth.Register)
	group.Post("/login", authValidator.Login(), auth.Login)
	group.Post("/refresh", authValidator.Refresh(), auth.Refresh)
	group.Get("/me", middleware.JWTMiddleware, auth.Me)
}
