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

func SetupReportRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig) {
	employeeRepo := repository.NewEmployeeRepository(db)
	punchRepo := repository.NewPunchRepository(db)
	reportRepo := repository.NewReportRepository(db)
	auth := usecase.NewAuthUsecase(employeeRepo, cfg.JWTSecret, cfg.JWTTTL)

	hdl := handler.NewReportHandler(usecase.NewReportUsecase(employeeRepo, punchRepo, reportRepo))

	api := app.Group("/api/reports", middleware.Auth(auth))
	api.Get("/", hdl.GetAll)
	api.Post("/", middleware.Role(model.RoleAdmin, model.RoleManager), hdl.Create)
	api.Get("/:id", hdl.GetByID)
}
