package routes

import (
	"punchclock-backend/config"
	"punchclock-backend/internal/handler"
	"punchclock-backend/internal/middleware"
	"punchclock-backend/internal/repository"
	"punchclock-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPunchRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig) {
	employeeRepo := repository.NewEmployeeRepository(db)
	punchRepo := repository.NewPunchRepository(db)
	auth := usecase.NewAuthUsecase(employeeRepo, cfg.JWTSecret, cfg.JWTTTL)

	// One ledger per process: its per-employee locks must be shared by all requests.
	ledger := usecase.NewPunchUsecase(punchRepo, employeeRepo, cfg.Location)
	hdl := handler.NewPunchHandler(ledger, nil)

	api := app.Group("/api/punch-records", middleware.Auth(auth))
	api.Post("/punch", hdl.Punch)
	api.Get("/open", hdl.GetOpen)
	api.Get("/stats", hdl.GetStats)
	api.Get("/", hdl.GetHistory)
}
