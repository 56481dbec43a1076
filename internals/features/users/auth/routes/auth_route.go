package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "eventku_backend/internals/features/users/auth/controller"
	"eventku_backend/internals/middlewares"
	authMiddleware "eventku_backend/internals/middlewares/auth"
)

// AuthRoutes memasang endpoint autentikasi di bawah /api/auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/logout", ctrl.Logout)

	auth.Get("/me", authMiddleware.AuthJWT(), ctrl.Me)
	auth.Post("/change-password", authMiddleware.AuthJWT(), ctrl.ChangePassword)
}
