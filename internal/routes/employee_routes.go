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

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig) {
	repo := repository.NewEmployeeRepository(db)
	auth := usecase.NewAuthUsecase(repo, cfg.JWTSecret, cfg.JWTTTL)
	hdl := handler.NewEmployeeHandler(usecase.NewEmployeeUsecase(repo, cfg.DefaultHourlyRate), auth)

	// Auth Routes
	app.Post("/api/login", middleware.LoginRateLimiter(cfg.LoginRatePerMinute), hdl.Login)

	app.Get("/api/me", middleware.Auth(auth), hdl.GetMe)

	api := app.Group("/api/employees", middleware.Auth(auth))
	api.Get("/", hdl.GetAll)
	api.Get("/:employee_id", hdl.GetByID)
	api.Put("/:employee_id", hdl.Update)

	// Admin only
	api.Post("/", middleware.Role(model.RoleAdmin), hdl.Create)
	api.Delete("/:employee_id", middleware.Role(model.RoleAdmin), hdl.Delete)
}
