package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"punchclock-backend/internal/model"
	"punchclock-backend/internal/repository"

	"gorm.io/gorm"
)

// ReportUsecase builds and stores report snapshots across the employee
// population.
type ReportUsecase struct {
	employees repository.EmployeeRepository
	punches   repository.PunchRepository
	reports   repository.ReportRepository
	now       func() time.Time
	logger    *log.Logger
}

type ReportOption func(*ReportUsecase)

func WithClock(now func() time.Time) ReportOption {
	return func(u *ReportUsecase) { u.now = now }
}

func WithLogger(l *log.Logger) ReportOption {
	return func(u *ReportUsecase) { u.logger = l }
}

func NewReportUsecase(employees repository.EmployeeRepository, punches repository.PunchRepository, reports repository.ReportRepository, opts ...ReportOption) *ReportUsecase {
	u := &ReportUsecase{
		employees: employees,
		punches:   punches,
		reports:   reports,
		now:       time.Now,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GenerateReport aggregates every employee with role "employee" over the
// inclusive window and persists the projected result as a new snapshot.
// Defective records are logged and skipped; the report is either stored
// whole or not at all.
func (u *ReportUsecase) GenerateReport(ctx context.Context, caller Caller, title, reportType, startDate, endDate string) (*model.Report, error) {
	if !caller.canReport() {
		return nil, newError(KindForbidden, caller.EmployeeID, "only admins and managers generate reports")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, newError(KindInvalidTitle, "", "title is required")
	}
	if !model.ValidReportType(reportType) {
		return nil, newError(KindInvalidReportType, "", "report_type must be attendance, salary or employee")
	}
	window, err := NewWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	population, err := u.employees.GetByRole(ctx, model.RoleEmployee)
	if err != nil {
		return nil, err
	}
	records, err := u.punches.ListClosedInWindow(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]model.PunchRecord)
	for _, r := range records {
		if err := checkRecord(r); err != nil {
			u.logger.Printf("[WARN] report %q: skipping record: %v", title, err)
			continue
		}
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	data := make(map[string]model.Summary, len(population))
	for _, e := range population {
		if e.EmployeeID == "" {
			u.logger.Printf("[WARN] report %q: %v", title, &Error{Kind: KindAggregationDefect, Detail: "employee row without employee_id"})
			continue
		}
		stats := Aggregate(byEmployee[e.EmployeeID], window).Rounded()
		if summary := project(reportType, e, stats); summary != nil {
			data[e.EmployeeID] = summary
		}
	}

	raw, err := model.EncodeReportData(reportType, data)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Title:       title,
		ReportType:  reportType,
		StartDate:   window.Start,
		EndDate:     window.End,
		GeneratedBy: caller.EmployeeID,
		GeneratedAt: u.now().UTC(),
		Data:        raw,
	}
	if err := u.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// project shapes stats for one report type. Salary reports leave out
// employees with no worked days; the other types keep the full headcount.
func project(reportType string, e model.Employee, s RoundedStats) model.Summary {
	switch reportType {
	case model.ReportAttendance:
		return model.AttendanceSummary{
			Name:           e.FullName(),
			DaysWorked:     s.DaysWorked,
			TotalHours:     s.TotalHours,
			AvgHoursPerDay: s.AvgHoursPerDay,
		}
	case model.ReportSalary:
		if s.DaysWorked == 0 {
			return nil
		}
		return model.SalarySummary{
			Name:        e.FullName(),
			HourlyRate:  model.NewAmount(e.HourlyRate),
			TotalHours:  s.TotalHours,
			TotalSalary: s.TotalSalary,
		}
	case model.ReportEmployee:
		return model.EmployeeSummary{
			Name:        e.FullName(),
			Email:       e.Email,
			Campaign:    e.Campaign,
			HourlyRate:  model.NewAmount(e.HourlyRate),
			DaysWorked:  s.DaysWorked,
			TotalHours:  s.TotalHours,
			TotalSalary: s.TotalSalary,
		}
	}
	return nil
}

// ListReports returns stored snapshots. Plain employees see none.
func (u *ReportUsecase) ListReports(ctx context.Context, caller Caller, reportType string) ([]model.Report, error) {
	if !caller.canReport() {
		return []model.Report{}, nil
	}
	if reportType != "" && !model.ValidReportType(reportType) {
		return nil, newError(KindInvalidReportType, "", "")
	}
	return u.reports.GetAll(ctx, reportType)
}

func (u *ReportUsecase) GetReport(ctx context.Context, caller Caller, id uint) (*model.Report, error) {
	if !caller.canReport() {
		return nil, newError(KindForbidden, caller.EmployeeID, "")
	}
	report, err := u.reports.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &Error{Kind: KindNotFound, RecordID: id, Detail: "report not found"}
	}
	return report, err
}
