package paymentController

import (
	"edutrack/gateway"
	"edutrack/middleware"
	"edutrack/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentController handles purchase intents and gateway webhooks
type PaymentController struct {
	payments *services.PaymentService
	gateway  *gateway.StripeClient
}

func NewPaymentController(payments *services.PaymentService, gw *gateway.StripeClient) *PaymentController {
	return &PaymentController{payments: payments, gateway: gw}
}

func (ctrl *PaymentController) CreateIntent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	payment, clientSecret, err := ctrl.payments.CreateIntent(userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to create payment intent!")
	}

	data := fiber.Map{
		"payment":       payment,
		"client_secret": clientSecret,
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment intent created successfully.", data)
}

func (ctrl *PaymentController) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	payments, err := ctrl.payments.ListForUser(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch payments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully.", payments)
}

// Webhook receives gateway event deliveries. The sender retries on non-2xx,
// so only verification failures and unknown references are rejected.
func (ctrl *PaymentController) Webhook(c *fiber.Ctx) error {
	payload := c.Body()

	if err := ctrl.gateway.VerifyWebhookSignature(payload, c.Get("Stripe-Signature")); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook signature!", nil)
	}

	event, err := gateway.ParseWebhookEvent(payload)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Malformed webhook payload!", nil)
	}

	switch event.Type {
	case gateway.EventPaymentSucceeded:
		err = ctrl.payments.Reconcile(event.IntentID())
	case gateway.EventPaymentFailed:
		err = ctrl.payments.MarkFailed(event.IntentID())
	case gateway.EventChargeRefunded:
		err = ctrl.payments.MarkRefunded(event.IntentID())
	default:
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event ignored.", nil)
	}
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to process webhook event!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook processed successfully.", nil)
}
