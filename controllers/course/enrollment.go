package courseController

import (
	"edutrack/middleware"
	"edutrack/services"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentController handles enrolling into courses and the caller's
// enrollment list
type EnrollmentController struct {
	enrollments *services.EnrollmentService
}

func NewEnrollmentController(enrollments *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollments: enrollments}
}

func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	enrollment, err := ctrl.enrollments.Enroll(userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to enroll in course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully.", enrollment)
}

func (ctrl *EnrollmentController) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := ctrl.enrollments.ListForUser(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch enrollments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
}

func (ctrl *EnrollmentController) Cancel(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enrollmentID, ok := c.Locals("enrollmentID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}

	enrollment, err := ctrl.enrollments.Cancel(enrollmentID, userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to cancel enrollment!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully.", enrollment)
}
