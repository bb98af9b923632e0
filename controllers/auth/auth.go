package authController

import (
	"edutrack/middleware"
	"edutrack/services"
	authValidator "edutrack/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthController handles registration, login and token refresh
type AuthController struct {
	identity *services.IdentityService
}

func NewAuthController(identity *services.IdentityService) *AuthController {
	return &AuthController{identity: identity}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ctrl.identity.Register(reqData.Email, reqData.Password, reqData.FullName, reqData.Role)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to register user!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ctrl.identity.Authenticate(reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to login!")
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Email, user.Role.Name)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}
	refreshToken, err := middleware.GenerateRefreshJWT(user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	data := fiber.Map{
		"token":         token,
		"refresh_token": refreshToken,
		"user":          user,
		"role":          user.Role.Name,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", data)
}

// Refresh exchanges a refresh token for a fresh token pair. Role and profile
// claims are re-read from the database, so a role change takes effect here.
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRefresh").(*authValidator.RefreshRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	claims, err := middleware.ParseToken(reqData.RefreshToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired refresh token", nil)
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired refresh token", nil)
	}
	userID, ok := claims["userId"].(float64)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	user, err := ctrl.identity.Get(uint(userID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Account no longer exists", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Email, user.Role.Name)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}
	refreshToken, err := middleware.GenerateRefreshJWT(user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	data := fiber.Map{
		"token":         token,
		"refresh_token": refreshToken,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed successfully.", data)
}

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.identity.Get(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch profile!")
	}

	data := fiber.Map{
		"user": user,
		"role": user.Role.Name,
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", data)
}
