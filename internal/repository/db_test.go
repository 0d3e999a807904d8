package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"punchclock-backend/config"
	"punchclock-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, id, role string) {
	t.Helper()
	e := model.Employee{
		EmployeeID: id,
		FirstName:  id,
		Email:      strings.ToLower(id) + "@company.com",
		Role:       role,
		HourlyRate: decimal.RequireFromString("10.00"),
		IsActive:   true,
	}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func seedClosed(t *testing.T, db *gorm.DB, employeeID, date string, hours, salary string) model.PunchRecord {
	t.Helper()
	in, _ := time.Parse(model.DateLayout, date)
	in = in.Add(9 * time.Hour)
	out := in.Add(time.Hour)
	r := model.PunchRecord{
		EmployeeID:  employeeID,
		Date:        date,
		PunchIn:     in,
		PunchOut:    &out,
		TotalHours:  decimal.NewNullDecimal(decimal.RequireFromString(hours)),
		DailySalary: decimal.NewNullDecimal(decimal.RequireFromString(salary)),
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}
	return r
}
