package paymentRoutes

import (
	paymentController "edutrack/controllers/payment"
	"edutrack/middleware"
	paymentValidator "edutrack/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up purchase intents and the gateway webhook. The
// webhook is unauthenticated; it is protected by signature verification.
func SetupPaymentRoutes(app *fiber.App, payments *paymentController.PaymentController) {
	group := app.Group("/api/payments")

	group.Post("/intent/:courseId", middleware.JWTMiddleware,
		paymentValidator.CourseIDParam(), payments.CreateIntent)
	group.Get("/", middleware.JWTMiddleware, payments.List)

	group.Post("/webhook", paymentValidator.Webhook(), payments.Webhook)
}
