package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Domain errors returned by the service layer. Controllers map them to HTTP
// statuses with HTTPStatusFromError and never branch on error strings.
var (
	ErrValidation           = errors.New("invalid input")
	ErrUnauthorized         = errors.New("invalid credentials")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrNotEligible          = errors.New("precondition not met")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGateway              = errors.New("gateway request failed")
)

// HTTPStatusFromError maps domain errors to HTTP status codes
func HTTPStatusFromError(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrNotEligible):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrGatewayNotConfigured):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrGateway):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
