package repository

import (
	"context"

	"punchclock-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardStats struct {
	Employees    map[string]int64 `json:"employees"`
	PunchRecords int64            `json:"punch_records"`
	OpenPunches  int64            `json:"open_punches"`
	TotalHours   model.Amount     `json:"total_hours"`
	TotalPayroll model.Amount     `json:"total_payroll"`
}

type DashboardRepository interface {
	GetDashboardStats(ctx context.Context, startDate, endDate string) (*DashboardStats, error)
}

type dashboardRepository struct {
	db        *gorm.DB
	employees EmployeeRepository
	punches   PunchRepository
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db:        db,
		employees: NewEmployeeRepository(db),
		punches:   NewPunchRepository(db),
	}
}

// GetDashboardStats sums the stamped daily_salary of closed records. The
// window is optional; empty bounds cover all history.
func (r *dashboardRepository) GetDashboardStats(ctx context.Context, startDate, endDate string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	employees, err := r.employees.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	stats.Employees = employees

	if stats.PunchRecords, err = r.punches.Count(ctx); err != nil {
		return nil, err
	}
	if stats.OpenPunches, err = r.punches.CountOpen(ctx); err != nil {
		return nil, err
	}

	var totals struct {
		Hours  decimal.NullDecimal
		Salary decimal.NullDecimal
	}
	query := r.db.WithContext(ctx).Model(&model.PunchRecord{}).
		Select("SUM(total_hours) as hours, SUM(daily_salary) as salary").
		Where("punch_out IS NOT NULL")
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}
	if err := query.Scan(&totals).Error; err != nil {
		return nil, err
	}

	stats.TotalHours = model.NewAmount(totals.Hours.Decimal)
	stats.TotalPayroll = model.NewAmount(totals.Salary.Decimal)
	return stats, nil
}
