// 📁 controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	registrationService "eventku_backend/internals/features/registrations/service"
	helper "eventku_backend/internals/helpers"
)

type PaymentController struct {
	Registrations *registrationService.RegistrationService
}

func NewPaymentController(svc *registrationService.RegistrationService) *PaymentController {
	return &PaymentController{Registrations: svc}
}

// 🟢 POST /api/payments/notification
// Webhook Midtrans: update status registrasi berdasarkan status transaksi.
func (ctrl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(transactionStatus) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	log.Printf("[PAYMENT] webhook order_id=%s status=%s", orderID, transactionStatus)

	status, err := ctrl.Registrations.ApplyPaymentStatus(c.UserContext(), orderID, transactionStatus)
	if err != nil {
		if errors.Is(err, registrationService.ErrPaymentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration for order not found")
		}
		log.Printf("[ERROR] webhook apply status: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process notification")
	}

	// Midtrans hanya butuh 200 supaya tidak retry
	return helper.JsonOK(c, "ok", fiber.Map{
		"order_id": orderID,
		"status":   status,
	})
}

// 🟢 GET /api/payments/:order_id/verify
// Tanya gateway paid/unpaid; kalau paid, registrasi PENDING → CONFIRMED.
func (ctrl *PaymentController) Verify(c *fiber.Ctx) error {
	orderID := strings.TrimSpace(c.Params("order_id"))
	if orderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing order id")
	}

	paid, err := ctrl.Registrations.VerifyAndConfirm(c.UserContext(), orderID)
	if err != nil {
		if errors.Is(err, registrationService.ErrPaymentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration for order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify payment")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"order_id": orderID,
		"paid":     paid,
	})
}
