package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	valueStr := GetEnv(key, "")
	if value, err := decimal.NewFromString(valueStr); err == nil {
		return value
	}
	return fallback
}

type AppConfig struct {
	Port               string
	DSN                string
	JWTSecret          string
	JWTTTL             time.Duration
	Location           *time.Location
	DefaultHourlyRate  decimal.Decimal
	LoginRatePerMinute int
}

const defaultDSN = "root:@tcp(127.0.0.1:3306)/punchclock?charset=utf8mb4&parseTime=True&loc=Local"

// Load reads the application settings from the environment.
func Load() AppConfig {
	cfg := AppConfig{
		Port:               GetEnv("APP_PORT", "3000"),
		DSN:                GetEnv("DB_DSN", defaultDSN),
		JWTSecret:          GetEnv("JWT_SECRET", ""),
		JWTTTL:             time.Duration(GetEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		Location:           time.Local,
		DefaultHourlyRate:  GetEnvAsDecimal("DEFAULT_HOURLY_RATE", decimal.RequireFromString("6.00")),
		LoginRatePerMinute: GetEnvAsInt("LOGIN_RATE_PER_MINUTE", 5),
	}

	if tz := GetEnv("APP_TIMEZONE", ""); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("[WARN] unknown APP_TIMEZONE %q, using local time: %v", tz, err)
		} else {
			cfg.Location = loc
		}
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET not set, using the development secret")
		cfg.JWTSecret = "punchclock-dev-secret"
	}
	return cfg
}
