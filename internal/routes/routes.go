package routes

import (
	"punchclock-backend/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup registers every API route on app.
func Setup(app *fiber.App, db *gorm.DB, cfg config.AppConfig) {
	SetupEmployeeRoutes(app, db, cfg)
	SetupPunchRoutes(app, db, cfg)
	SetupReportRoutes(app, db, cfg)
	SetupDashboardRoutes(app, db, cfg)
}
