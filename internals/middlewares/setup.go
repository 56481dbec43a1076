package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loggerMiddleware "eventku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar (urutan penting)
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(DBMiddleware(db))
	app.Use(GlobalRateLimiter())
}
