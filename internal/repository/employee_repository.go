package repository

import (
	"context"

	"punchclock-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	GetAll(ctx context.Context, search string) ([]model.Employee, error)
	GetByRole(ctx context.Context, role string) ([]model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, employeeID string) error
	CountByRole(ctx context.Context) (map[string]int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetAll(ctx context.Context, search string) ([]model.Employee, error) {
	var employees []model.Employee
	query := r.db.WithContext(ctx).Order("employee_id")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR employee_id LIKE ?", pattern, pattern, pattern)
	}

	err := query.Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByRole(ctx context.Context, role string) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("employee_id").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete is a soft delete; punch history and reports keep referring to the id.
func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	res := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&model.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *employeeRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Select("role, count(*) as count").Group("role").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{model.RoleAdmin: 0, model.RoleManager: 0, model.RoleEmployee: 0}
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}
