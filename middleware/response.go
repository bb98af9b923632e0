package middleware

import (
	"log"

	"edutrack/services"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse maps a service error onto the standard JSON envelope. Known
// domain errors surface their own message; anything unexpected is logged and
// hidden behind the fallback.
func ErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	status := services.HTTPStatusFromError(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
		return JsonResponse(c, status, false, fallback, nil)
	}
	return JsonResponse(c, status, false, err.Error(), nil)
}
