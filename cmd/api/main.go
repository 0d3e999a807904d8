package main

import (
	"fmt"
	"log"

	"punchclock-backend/config"
	"punchclock-backend/internal/middleware"
	"punchclock-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Starting application... loading .env")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables.")
	}
	cfg := config.Load()

	fmt.Println("2. Connecting to database...")
	config.ConnectDB(cfg.DSN)
	fmt.Println("3. Database connected! Registering routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(middleware.Recovery())
	app.Use(cors.New())
	app.Use(middleware.Logger())

	routes.Setup(app, config.DB, cfg)

	fmt.Printf("4. Server ready on port :%s\n", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
