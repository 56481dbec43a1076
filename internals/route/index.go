// 📁 route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assistantRoute "eventku_backend/internals/features/assistant/routes"
	eventRoute "eventku_backend/internals/features/events/event/routes"
	paymentRoute "eventku_backend/internals/features/payments/routes"
	paymentService "eventku_backend/internals/features/payments/service"
	registrationRoute "eventku_backend/internals/features/registrations/routes"
	authRoute "eventku_backend/internals/features/users/auth/routes"
	userRoute "eventku_backend/internals/features/users/user/routes"
)

// SetupRoutes merakit seluruh fitur di bawah /api.
// Satu RegistrationService dibagi ke registrasi, payments, dan assistant
// supaya alur checkout & webhook memakai state yang sama.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
	eventRoute.EventRoutes(api, db)

	regSvc := registrationRoute.RegistrationRoutes(api, db, paymentService.NewMidtransGateway())
	paymentRoute.PaymentRoutes(api.Group("/payments"), regSvc)
	assistantRoute.AssistantRoutes(api, db, regSvc)
}
