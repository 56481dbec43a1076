// 📁 route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// BaseRoutes: health check untuk load balancer / uptime monitor.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "down"
		} else if err := sqlDB.PingContext(c.UserContext()); err != nil {
			dbStatus = "down"
		}

		status := fiber.StatusOK
		if dbStatus != "up" {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"status":   dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
			"database": dbStatus,
		})
	})
}
