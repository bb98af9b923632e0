package userController

import (
	"edutrack/middleware"
	"edutrack/services"
	authValidator "edutrack/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// UserController exposes admin user management
type UserController struct {
	identity *services.IdentityService
}

func NewUserController(identity *services.IdentityService) *UserController {
	return &UserController{identity: identity}
}

func (ctrl *UserController) List(c *fiber.Ctx) error {
	users, err := ctrl.identity.List()
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch users!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

func (ctrl *UserController) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("targetUserID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}

	user, err := ctrl.identity.Get(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch user!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}

// Create lets an admin provision an account under any role
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ctrl.identity.Register(reqData.Email, reqData.Password, reqData.FullName, reqData.Role)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to create user!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", user)
}

func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	userID, ok := c.Locals("targetUserID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
	}

	if err := ctrl.identity.Delete(userID, actorID); err != nil {
		return middleware.ErrorResponse(c, err, "Failed to delete user!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
