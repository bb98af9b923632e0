package certificateRoutes

import (
	certificateController "edutrack/controllers/certificate"
	"edutrack/middleware"
	courseValidator "edutrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up certificate downloads
func SetupCertificateRoutes(app *fiber.App, certificates *certificateController.CertificateController) {
	group := app.Group("/api/certificates", middleware.JWTMiddleware)

	group.Get("/", certificates.List)
	group.Get("/course/:courseId", courseValidator.IDParam("courseId", "courseID"), certificates.Download)
}
