package route

import (
	"github.com/gofiber/fiber/v2"

	paymentController "eventku_backend/internals/features/payments/controller"
	registrationService "eventku_backend/internals/features/registrations/service"
)

// PaymentRoutes memasang webhook + verify di bawah /api/payments.
// Webhook sengaja tanpa auth (dipanggil server gateway).
func PaymentRoutes(api fiber.Router, svc *registrationService.RegistrationService) {
	ctrl := paymentController.NewPaymentController(svc)

	api.Post("/notification", ctrl.HandleNotification)
	api.Get("/:order_id/verify", ctrl.Verify)
}
