package usecase

import (
	"context"
	"errors"
	"time"

	"punchclock-backend/internal/model"
	"punchclock-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stored precision of derived columns. Display rounding happens later.
const (
	hoursScale  = 6
	salaryScale = 4
)

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// PunchUsecase is the punch ledger: it owns the open/closed lifecycle of
// punch records and stamps hours and pay when a record closes.
type PunchUsecase struct {
	punches   repository.PunchRepository
	employees repository.EmployeeRepository
	loc       *time.Location
	locks     *keyedMutex
}

func NewPunchUsecase(punches repository.PunchRepository, employees repository.EmployeeRepository, loc *time.Location) *PunchUsecase {
	if loc == nil {
		loc = time.Local
	}
	return &PunchUsecase{
		punches:   punches,
		employees: employees,
		loc:       loc,
		locks:     newKeyedMutex(),
	}
}

// Location is the business timezone punch dates are taken in.
func (u *PunchUsecase) Location() *time.Location {
	return u.loc
}

// ComputeHours is the worked time between two instants in hours.
func ComputeHours(in, out time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(out.Sub(in))).Div(nanosPerHour).Round(hoursScale)
}

// ComputePay multiplies hours by the hourly rate.
func ComputePay(hours, rate decimal.Decimal) decimal.Decimal {
	return hours.Mul(rate).Round(salaryScale)
}

// PunchIn opens a record dated by the business-timezone day of at. The date
// stays fixed even if the shift crosses midnight.
func (u *PunchUsecase) PunchIn(ctx context.Context, employeeID string, at time.Time) (*model.PunchRecord, error) {
	unlock := u.locks.Lock(employeeID)
	defer unlock()

	if _, err := u.resolveEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	open, err := u.punches.FindOpen(ctx, employeeID)
	if err == nil {
		return nil, &Error{Kind: KindAlreadyOpen, EmployeeID: employeeID, RecordID: open.ID}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	at = at.In(u.loc)
	key := employeeID
	record := &model.PunchRecord{
		EmployeeID: employeeID,
		Date:       at.Format(model.DateLayout),
		PunchIn:    at,
		OpenKey:    &key,
	}

	if err := u.punches.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrOpenPunchExists) {
			return nil, &Error{Kind: KindAlreadyOpen, EmployeeID: employeeID, Err: err}
		}
		return nil, err
	}
	return record, nil
}

// PunchOut closes the open record, stamping total_hours and daily_salary with
// the employee's hourly rate as of this call.
func (u *PunchUsecase) PunchOut(ctx context.Context, employeeID string, at time.Time) (*model.PunchRecord, error) {
	unlock := u.locks.Lock(employeeID)
	defer unlock()

	employee, err := u.resolveEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	record, err := u.punches.FindOpen(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNoOpenPunch, employeeID, "")
	}
	if err != nil {
		return nil, err
	}

	if !at.After(record.PunchIn) {
		return nil, &Error{
			Kind:       KindNonMonotonicTime,
			EmployeeID: employeeID,
			RecordID:   record.ID,
			Detail:     "punch_out must be after punch_in",
		}
	}
	if !employee.HourlyRate.IsPositive() {
		return nil, &Error{Kind: KindRateUnknown, EmployeeID: employeeID, RecordID: record.ID}
	}

	out := at.In(u.loc)
	hours := ComputeHours(record.PunchIn, out)
	record.PunchOut = &out
	record.TotalHours = decimal.NewNullDecimal(hours)
	record.DailySalary = decimal.NewNullDecimal(ComputePay(hours, employee.HourlyRate))

	if err := u.punches.Close(ctx, record); err != nil {
		if errors.Is(err, repository.ErrPunchNotOpen) {
			return nil, &Error{Kind: KindNoOpenPunch, EmployeeID: employeeID, RecordID: record.ID, Err: err}
		}
		return nil, err
	}
	return record, nil
}

// GetOpenRecord returns the employee's open record, or nil when there is none.
func (u *PunchUsecase) GetOpenRecord(ctx context.Context, employeeID string) (*model.PunchRecord, error) {
	record, err := u.punches.FindOpen(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return record, err
}

// History lists punch records visible to the caller.
func (u *PunchUsecase) History(ctx context.Context, caller Caller, filter repository.PunchFilter) ([]model.PunchRecord, error) {
	switch {
	case caller.IsAdmin():
	case caller.IsManager():
		if filter.EmployeeID != caller.EmployeeID {
			filter.EmployeeRole = model.RoleEmployee
		}
	default:
		if filter.EmployeeID != "" && filter.EmployeeID != caller.EmployeeID {
			return nil, newError(KindForbidden, filter.EmployeeID, "cannot view another employee's records")
		}
		filter.EmployeeID = caller.EmployeeID
	}
	return u.punches.List(ctx, filter)
}

// Stats aggregates one employee's records over a window.
func (u *PunchUsecase) Stats(ctx context.Context, caller Caller, employeeID string, window Window) (Stats, error) {
	employee, err := u.resolveEmployee(ctx, employeeID)
	if err != nil {
		return Stats{}, err
	}
	if !caller.CanManage(employee.EmployeeID, employee.Role) {
		return Stats{}, newError(KindForbidden, employeeID, "")
	}

	records, err := u.punches.List(ctx, repository.PunchFilter{
		EmployeeID: employeeID,
		StartDate:  window.Start,
		EndDate:    window.End,
	})
	if err != nil {
		return Stats{}, err
	}
	return Aggregate(records, window), nil
}

func (u *PunchUsecase) resolveEmployee(ctx context.Context, employeeID string) (*model.Employee, error) {
	employee, err := u.employees.FindByEmployeeID(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindUnknownEmployee, employeeID, "")
	}
	if err != nil {
		return nil, err
	}
	return employee, nil
}
