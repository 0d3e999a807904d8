package repository

import (
	"context"
	"testing"
	"time"

	"punchclock-backend/internal/model"

	"github.com/shopspring/decimal"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedEmployee(t, db, "ADMIN001", model.RoleAdmin)
	seedEmployee(t, db, "EMP001", model.RoleEmployee)
	seedEmployee(t, db, "EMP002", model.RoleEmployee)
	seedClosed(t, db, "EMP001", "2024-01-01", "8", "80")
	seedClosed(t, db, "EMP002", "2024-01-02", "6.5", "65")
	seedClosed(t, db, "EMP002", "2024-02-01", "4", "40")
	if err := NewPunchRepository(db).Create(ctx, openRecord("EMP001", "2024-02-02", time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC))); err != nil {
		t.Fatal(err)
	}

	repo := NewDashboardRepository(db)

	stats, err := repo.GetDashboardStats(ctx, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Employees[model.RoleEmployee] != 2 || stats.Employees[model.RoleAdmin] != 1 || stats.Employees[model.RoleManager] != 0 {
		t.Errorf("employees = %v", stats.Employees)
	}
	if stats.PunchRecords != 4 || stats.OpenPunches != 1 {
		t.Errorf("records = %d open = %d", stats.PunchRecords, stats.OpenPunches)
	}
	if !stats.TotalHours.Equal(decimal.RequireFromString("18.5")) || !stats.TotalPayroll.Equal(decimal.NewFromInt(185)) {
		t.Errorf("totals = %s h / %s", stats.TotalHours, stats.TotalPayroll)
	}

	january, err := repo.GetDashboardStats(ctx, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatal(err)
	}
	if !january.TotalPayroll.Equal(decimal.NewFromInt(145)) {
		t.Errorf("january payroll = %s", january.TotalPayroll)
	}
}

func TestEmployeeRepositorySoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	seedEmployee(t, db, "EMP001", model.RoleEmployee)
	seedEmployee(t, db, "EMP002", model.RoleEmployee)

	if err := repo.Delete(ctx, "EMP001"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "EMP001"); err == nil {
		t.Error("deleting twice succeeded")
	}

	population, _ := repo.GetByRole(ctx, model.RoleEmployee)
	if len(population) != 1 || population[0].EmployeeID != "EMP002" {
		t.Errorf("population = %+v", population)
	}

	found, _ := repo.GetAll(ctx, "EMP00")
	if len(found) != 1 {
		t.Errorf("search found %d", len(found))
	}
}
