package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assistantController "eventku_backend/internals/features/assistant/controller"
	assistantService "eventku_backend/internals/features/assistant/service"
	registrationService "eventku_backend/internals/features/registrations/service"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

// AssistantRoutes membangun registry tool & memasang endpoint asisten.
func AssistantRoutes(api fiber.Router, db *gorm.DB, regSvc *registrationService.RegistrationService) {
	reg, err := assistantService.BuildRegistry(db, regSvc)
	if err != nil {
		log.Fatalf("❌ Gagal membangun assistant registry: %v", err)
	}

	ctrl := assistantController.NewAssistantController(db, reg)

	assistant := api.Group("/assistant")
	assistant.Get("/manifest", ctrl.Manifest)
	// OptionalAuthJWT: tool publik bisa anonim, tool RequiresAuth dicek registry
	assistant.Post("/tools/:name", authMiddleware.OptionalAuthJWT(), ctrl.InvokeTool)
}
