package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"punchclock-backend/internal/model"
	"punchclock-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeEmployees struct {
	mu   sync.Mutex
	byID map[string]*model.Employee
}

func newFakeEmployees(emps ...model.Employee) *fakeEmployees {
	f := &fakeEmployees{byID: make(map[string]*model.Employee)}
	for i := range emps {
		e := emps[i]
		f.byID[e.EmployeeID] = &e
	}
	return f
}

func (f *fakeEmployees) FindByEmployeeID(_ context.Context, id string) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployees) GetAll(_ context.Context, _ string) ([]model.Employee, error) {
	return f.filter(func(model.Employee) bool { return true }), nil
}

func (f *fakeEmployees) GetByRole(_ context.Context, role string) ([]model.Employee, error) {
	return f.filter(func(e model.Employee) bool { return e.Role == role }), nil
}

func (f *fakeEmployees) filter(keep func(model.Employee) bool) []model.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Employee
	for _, e := range f.byID {
		if keep(*e) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}

func (f *fakeEmployees) Create(_ context.Context, e *model.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[e.EmployeeID]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *e
	f.byID[e.EmployeeID] = &cp
	return nil
}

func (f *fakeEmployees) Update(_ context.Context, e *model.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.byID[e.EmployeeID] = &cp
	return nil
}

func (f *fakeEmployees) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEmployees) CountByRole(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, e := range f.filter(func(model.Employee) bool { return true }) {
		counts[e.Role]++
	}
	return counts, nil
}

func (f *fakeEmployees) setRate(id string, rate string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[id].HourlyRate = decimal.RequireFromString(rate)
}

type fakePunches struct {
	mu      sync.Mutex
	nextID  uint
	records []model.PunchRecord
}

func (f *fakePunches) Create(_ context.Context, r *model.PunchRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.OpenKey != nil {
		for _, x := range f.records {
			if x.OpenKey != nil && *x.OpenKey == *r.OpenKey {
				return repository.ErrOpenPunchExists
			}
		}
	}
	f.nextID++
	r.ID = f.nextID
	f.records = append(f.records, *r)
	return nil
}

func (f *fakePunches) FindOpen(_ context.Context, employeeID string) (*model.PunchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, x := range f.records {
		if x.EmployeeID == employeeID && x.PunchOut == nil {
			cp := x
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePunches) Close(_ context.Context, r *model.PunchRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, x := range f.records {
		if x.ID == r.ID {
			if x.PunchOut != nil {
				return repository.ErrPunchNotOpen
			}
			x.PunchOut = r.PunchOut
			x.TotalHours = r.TotalHours
			x.DailySalary = r.DailySalary
			x.OpenKey = nil
			f.records[i] = x
			r.OpenKey = nil
			return nil
		}
	}
	return repository.ErrPunchNotOpen
}

func (f *fakePunches) List(_ context.Context, filter repository.PunchFilter) ([]model.PunchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PunchRecord
	for _, x := range f.records {
		if filter.EmployeeID != "" && x.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.StartDate != "" && x.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && x.Date > filter.EndDate {
			continue
		}
		out = append(out, x)
	}
	return out, nil
}

func (f *fakePunches) ListClosedInWindow(ctx context.Context, start, end string) ([]model.PunchRecord, error) {
	all, _ := f.List(ctx, repository.PunchFilter{StartDate: start, EndDate: end})
	var out []model.PunchRecord
	for _, x := range all {
		if x.PunchOut != nil {
			out = append(out, x)
		}
	}
	return out, nil
}

func (f *fakePunches) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.records)), nil
}

func (f *fakePunches) CountOpen(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, x := range f.records {
		if x.PunchOut == nil {
			n++
		}
	}
	return n, nil
}

func (f *fakePunches) add(r model.PunchRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	r.ID = f.nextID
	f.records = append(f.records, r)
}

type fakeReports struct {
	mu      sync.Mutex
	reports []model.Report
}

func (f *fakeReports) Create(_ context.Context, r *model.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = uint(len(f.reports) + 1)
	f.reports = append(f.reports, *r)
	return nil
}

func (f *fakeReports) FindByID(_ context.Context, id uint) (*model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reports {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReports) GetAll(_ context.Context, reportType string) ([]model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Report
	for i := len(f.reports) - 1; i >= 0; i-- {
		if reportType == "" || f.reports[i].ReportType == reportType {
			out = append(out, f.reports[i])
		}
	}
	return out, nil
}

func emp(id, role, rate string) model.Employee {
	return model.Employee{
		EmployeeID: id,
		FirstName:  id,
		LastName:   "Test",
		Email:      id + "@company.com",
		Role:       role,
		HourlyRate: decimal.RequireFromString(rate),
		IsActive:   true,
	}
}

// closed builds a closed record with stored hours and pay.
func closed(employeeID, date, hours, salary string) model.PunchRecord {
	in, _ := time.Parse(model.DateLayout, date)
	in = in.Add(9 * time.Hour)
	h := decimal.RequireFromString(hours)
	out := in.Add(time.Duration(h.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart()))
	return model.PunchRecord{
		EmployeeID:  employeeID,
		Date:        date,
		PunchIn:     in,
		PunchOut:    &out,
		TotalHours:  decimal.NewNullDecimal(h),
		DailySalary: decimal.NewNullDecimal(decimal.RequireFromString(salary)),
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func punchFilterFor(employeeID string) repository.PunchFilter {
	return repository.PunchFilter{EmployeeID: employeeID}
}
