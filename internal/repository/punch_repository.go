package repository

import (
	"context"
	"errors"

	"punchclock-backend/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrOpenPunchExists is returned by Create when the employee already has
	// an open record.
	ErrOpenPunchExists = errors.New("employee already has an open punch record")
	// ErrPunchNotOpen is returned by Close when the record was closed meanwhile.
	ErrPunchNotOpen = errors.New("punch record is not open")
)

// PunchFilter scopes a history query. Empty fields are ignored.
type PunchFilter struct {
	EmployeeID   string
	EmployeeRole string
	StartDate    string
	EndDate      string
}

type PunchRepository interface {
	Create(ctx context.Context, record *model.PunchRecord) error
	FindOpen(ctx context.Context, employeeID string) (*model.PunchRecord, error)
	Close(ctx context.Context, record *model.PunchRecord) error
	List(ctx context.Context, filter PunchFilter) ([]model.PunchRecord, error)
	ListClosedInWindow(ctx context.Context, startDate, endDate string) ([]model.PunchRecord, error)
	Count(ctx context.Context) (int64, error)
	CountOpen(ctx context.Context) (int64, error)
}

type punchRepository struct {
	db *gorm.DB
}

func NewPunchRepository(db *gorm.DB) PunchRepository {
	return &punchRepository{db}
}

func (r *punchRepository) Create(ctx context.Context, record *model.PunchRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrOpenPunchExists
	}
	return err
}

func (r *punchRepository) FindOpen(ctx context.Context, employeeID string) (*model.PunchRecord, error) {
	var record model.PunchRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND punch_out IS NULL", employeeID).
		Order("punch_in desc").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Close writes punch_out, total_hours and daily_salary in one statement,
// guarded on the record still being open.
func (r *punchRepository) Close(ctx context.Context, record *model.PunchRecord) error {
	res := r.db.WithContext(ctx).Model(&model.PunchRecord{}).
		Where("id = ? AND punch_out IS NULL", record.ID).
		Updates(map[string]interface{}{
			"punch_out":    record.PunchOut,
			"total_hours":  record.TotalHours,
			"daily_salary": record.DailySalary,
			"open_key":     nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPunchNotOpen
	}
	record.OpenKey = nil
	return nil
}

func (r *punchRepository) List(ctx context.Context, filter PunchFilter) ([]model.PunchRecord, error) {
	var list []model.PunchRecord
	query := r.db.WithContext(ctx).Model(&model.PunchRecord{})

	if filter.EmployeeRole != "" {
		query = query.Joins("JOIN employees ON employees.employee_id = punch_records.employee_id").
			Where("employees.role = ?", filter.EmployeeRole)
	}
	if filter.EmployeeID != "" {
		query = query.Where("punch_records.employee_id = ?", filter.EmployeeID)
	}
	if filter.StartDate != "" {
		query = query.Where("punch_records.date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("punch_records.date <= ?", filter.EndDate)
	}

	err := query.Order("punch_records.date desc, punch_records.punch_in desc").Find(&list).Error
	return list, err
}

func (r *punchRepository) ListClosedInWindow(ctx context.Context, startDate, endDate string) ([]model.PunchRecord, error) {
	var list []model.PunchRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ? AND punch_out IS NOT NULL", startDate, endDate).
		Order("employee_id, date").
		Find(&list).Error
	return list, err
}

func (r *punchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PunchRecord{}).Count(&count).Error
	return count, err
}

func (r *punchRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PunchRecord{}).Where("punch_out IS NULL").Count(&count).Error
	return count, err
}
