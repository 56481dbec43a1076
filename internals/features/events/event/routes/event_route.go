package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "eventku_backend/internals/features/events/event/controller"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

// EventRoutes memasang CRUD event + sub-resource (prizes, schedule, teams)
// di bawah /api/events.
func EventRoutes(api fiber.Router, db *gorm.DB) {
	events := eventController.NewEventController(db)
	prizes := eventController.NewPrizeController(db)
	schedule := eventController.NewScheduleController(db)
	teams := eventController.NewTeamController(db)

	// publik (OptionalAuthJWT supaya organizer=me bisa dipakai kalau login)
	api.Get("/events", authMiddleware.OptionalAuthJWT(), events.List)
	api.Get("/events/:id", events.GetByID)
	api.Get("/events/:id/prizes", prizes.ListByEvent)
	api.Get("/events/:id/schedule", schedule.ListByEvent)
	api.Get("/events/:id/teams", teams.ListByEvent)

	// butuh login
	api.Post("/events", authMiddleware.AuthJWT(), events.Create)
	api.Put("/events/:id", authMiddleware.AuthJWT(), events.Update)
	api.Delete("/events/:id", authMiddleware.AuthJWT(), events.Delete)
	api.Post("/events/:id/prizes", authMiddleware.AuthJWT(), prizes.Create)
	api.Post("/events/:id/schedule", authMiddleware.AuthJWT(), schedule.Create)
}
