package routes

import (
	"punchclock-backend/config"
	"punchclock-backend/internal/handler"
	"punchclock-backend/internal/middleware"
	"punchclock-backend/internal/model"
	"punchclock-backend/internal/repository"
	"punchclock-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig) {
	auth := usecase.NewAuthUsecase(repository.NewEmployeeRepository(db), cfg.JWTSecret, cfg.JWTTTL)
	hdl := handler.NewDashboardHandler(repository.NewDashboardRepository(db))

	api := app.Group("/api/dashboard", middleware.Auth(auth), middleware.Role(model.RoleAdmin, model.RoleManager))
	api.Get("/stats", hdl.GetStats)
}
