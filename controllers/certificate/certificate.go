package certificateController

import (
	"fmt"

	"edutrack/middleware"
	"edutrack/services"

	"github.com/gofiber/fiber/v2"
)

// CertificateController serves completion certificates as PDF downloads
type CertificateController struct {
	certificates *services.CertificateService
}

func NewCertificateController(certificates *services.CertificateService) *CertificateController {
	return &CertificateController{certificates: certificates}
}

func (ctrl *CertificateController) Download(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	pdfBytes, certificate, err := ctrl.certificates.Issue(userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to issue certificate!")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="certificate-%s.pdf"`, certificate.SerialNumber))
	return c.Send(pdfBytes)
}

func (ctrl *CertificateController) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificates, err := ctrl.certificates.ListForUser(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch certificates!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", certificates)
}
