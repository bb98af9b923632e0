package courseController

import (
	"edutrack/middleware"
	"edutrack/models"
	"edutrack/services"
	courseValidator "edutrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CourseController handles catalog browsing and course authoring
type CourseController struct {
	catalog *services.CatalogService
}

func NewCourseController(catalog *services.CatalogService) *CourseController {
	return &CourseController{catalog: catalog}
}

// List returns the catalog. Students only see published courses; instructors
// and admins also see drafts.
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	publishedOnly := role != models.RoleAdmin && role != models.RoleInstructor

	courses, err := ctrl.catalog.ListCourses(publishedOnly)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

func (ctrl *CourseController) Get(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}

	course, err := ctrl.catalog.GetCourse(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, err := ctrl.catalog.CreateCourse(userID, reqData.Title, reqData.Description, reqData.PriceCents, reqData.Published)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to create course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}
	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, err := ctrl.catalog.UpdateCourse(courseID, userID, role, services.CourseUpdate{
		Title:       reqData.Title,
		Description: reqData.Description,
		PriceCents:  reqData.PriceCents,
		Published:   reqData.Published,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to update course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}

	if err := ctrl.catalog.DeleteCourse(courseID, userID, role); err != nil {
		return middleware.ErrorResponse(c, err, "Failed to delete course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
}
