package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "eventku_backend/internals/features/users/user/controller"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

// UserRoutes: /api/user/* untuk profil sendiri, /api/users/:id publik.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	me := api.Group("/user", authMiddleware.AuthJWT())
	me.Get("/profile", ctrl.GetMyProfile)
	me.Put("/profile", ctrl.UpdateProfile)
	me.Get("/registrations", ctrl.GetMyRegistrations)

	api.Get("/users/:id", ctrl.GetProfile)
}
