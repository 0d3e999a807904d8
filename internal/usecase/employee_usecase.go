package usecase

import (
	"context"
	"errors"

	"punchclock-backend/internal/model"
	"punchclock-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type NewEmployee struct {
	EmployeeID  string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	Campaign    string
	Role        string
	HourlyRate  *decimal.Decimal
	Password    string
}

// EmployeeChanges carries a partial update; nil fields are left untouched.
// The employee id is never changed.
type EmployeeChanges struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
	Campaign    *string
	Role        *string
	HourlyRate  *decimal.Decimal
	Password    *string
	IsActive    *bool
}

type EmployeeUsecase struct {
	repo        repository.EmployeeRepository
	defaultRate decimal.Decimal
}

func NewEmployeeUsecase(repo repository.EmployeeRepository, defaultRate decimal.Decimal) *EmployeeUsecase {
	return &EmployeeUsecase{repo: repo, defaultRate: defaultRate}
}

// List scopes the directory to what the caller may see.
func (u *EmployeeUsecase) List(ctx context.Context, caller Caller, search string) ([]model.Employee, error) {
	switch {
	case caller.IsAdmin():
		return u.repo.GetAll(ctx, search)
	case caller.IsManager():
		return u.repo.GetByRole(ctx, model.RoleEmployee)
	}
	self, err := u.Get(ctx, caller, caller.EmployeeID)
	if err != nil {
		return nil, err
	}
	return []model.Employee{*self}, nil
}

func (u *EmployeeUsecase) Get(ctx context.Context, caller Caller, employeeID string) (*model.Employee, error) {
	employee, err := u.find(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !caller.CanManage(employee.EmployeeID, employee.Role) {
		return nil, newError(KindForbidden, employeeID, "")
	}
	return employee, nil
}

func (u *EmployeeUsecase) Create(ctx context.Context, caller Caller, in NewEmployee) (*model.Employee, error) {
	if !caller.IsAdmin() {
		return nil, newError(KindForbidden, caller.EmployeeID, "only admins create employees")
	}
	if in.EmployeeID == "" || in.Password == "" {
		return nil, newError(KindInvalidInput, in.EmployeeID, "employee_id and password are required")
	}

	role := in.Role
	if role == "" {
		role = model.RoleEmployee
	}
	if !model.ValidRole(role) {
		return nil, newError(KindInvalidInput, in.EmployeeID, "unknown role "+role)
	}

	rate := u.defaultRate
	if in.HourlyRate != nil {
		rate = *in.HourlyRate
	}
	if !rate.IsPositive() {
		return nil, newError(KindInvalidInput, in.EmployeeID, "hourly_rate must be positive")
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		EmployeeID:  in.EmployeeID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Campaign:    in.Campaign,
		Role:        role,
		HourlyRate:  rate.Round(2),
		Password:    hashed,
		IsActive:    true,
	}
	if err := u.repo.Create(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(KindInvalidInput, in.EmployeeID, "employee_id already exists")
		}
		return nil, err
	}
	return employee, nil
}

// Update applies changes. Rate changes never touch already closed punch
// records, whose pay was stamped at punch-out.
func (u *EmployeeUsecase) Update(ctx context.Context, caller Caller, employeeID string, ch EmployeeChanges) (*model.Employee, error) {
	employee, err := u.Get(ctx, caller, employeeID)
	if err != nil {
		return nil, err
	}

	if ch.Role != nil && *ch.Role != employee.Role {
		if !caller.IsAdmin() {
			return nil, newError(KindForbidden, employeeID, "only admins change roles")
		}
		if !model.ValidRole(*ch.Role) {
			return nil, newError(KindInvalidInput, employeeID, "unknown role "+*ch.Role)
		}
		employee.Role = *ch.Role
	}
	if ch.HourlyRate != nil {
		if !ch.HourlyRate.IsPositive() {
			return nil, newError(KindInvalidInput, employeeID, "hourly_rate must be positive")
		}
		employee.HourlyRate = ch.HourlyRate.Round(2)
	}
	if ch.IsActive != nil {
		if !caller.IsAdmin() {
			return nil, newError(KindForbidden, employeeID, "only admins change account status")
		}
		employee.IsActive = *ch.IsActive
	}
	if ch.Password != nil && *ch.Password != "" {
		hashed, err := HashPassword(*ch.Password)
		if err != nil {
			return nil, err
		}
		employee.Password = hashed
	}

	setIf(&employee.FirstName, ch.FirstName)
	setIf(&employee.LastName, ch.LastName)
	setIf(&employee.Email, ch.Email)
	setIf(&employee.PhoneNumber, ch.PhoneNumber)
	setIf(&employee.Address, ch.Address)
	setIf(&employee.Campaign, ch.Campaign)

	if err := u.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (u *EmployeeUsecase) Delete(ctx context.Context, caller Caller, employeeID string) error {
	if !caller.IsAdmin() {
		return newError(KindForbidden, caller.EmployeeID, "only admins delete employees")
	}
	if caller.EmployeeID == employeeID {
		return newError(KindInvalidInput, employeeID, "cannot delete your own account")
	}
	err := u.repo.Delete(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(KindUnknownEmployee, employeeID, "")
	}
	return err
}

func (u *EmployeeUsecase) find(ctx context.Context, employeeID string) (*model.Employee, error) {
	employee, err := u.repo.FindByEmployeeID(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindUnknownEmployee, employeeID, "")
	}
	return employee, err
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
