package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/configs"
	registrationController "eventku_backend/internals/features/registrations/controller"
	registrationService "eventku_backend/internals/features/registrations/service"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

// RegistrationRoutes memasang alur registrasi di bawah /api/events/:id/register
func RegistrationRoutes(api fiber.Router, db *gorm.DB, gateway registrationService.CheckoutGateway) *registrationService.RegistrationService {
	svc := registrationService.NewRegistrationService(
		registrationService.NewGormStore(db),
		gateway,
		configs.AppBaseURL,
	)
	ctrl := registrationController.NewRegistrationController(db, svc)

	api.Post("/events/:id/register", authMiddleware.AuthJWT(), ctrl.Register)
	api.Get("/events/:id/register", authMiddleware.OptionalAuthJWT(), ctrl.ListByEvent)

	return svc
}
