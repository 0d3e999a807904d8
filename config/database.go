package config

import (
	"fmt"

	"punchclock-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(dsn string) {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}

	fmt.Println("Database connection established")

	if err := Migrate(db); err != nil {
		panic(fmt.Sprintf("failed to migrate database: %v", err))
	}

	DB = db
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Employee{}, &model.PunchRecord{}, &model.Report{})
}
