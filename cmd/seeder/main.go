package main

import (
	"fmt"
	"log"

	"punchclock-backend/config"
	"punchclock-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🌱 Starting database seeding...")

	// Separate binary, so it loads .env itself
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables.")
	}
	cfg := config.Load()

	config.ConnectDB(cfg.DSN)

	fmt.Println("🚀 Running SeedAll...")
	if err := database.SeedAll(config.DB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("✅ Seeding done!")
}
