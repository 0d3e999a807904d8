package usecase

import (
	"punchclock-backend/internal/model"

	"github.com/shopspring/decimal"
)

// Stats is the folded view of one employee's closed records over a window.
type Stats struct {
	DaysWorked     int             `json:"days_worked"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	AvgHoursPerDay decimal.Decimal `json:"avg_hours_per_day"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
}

// Aggregate folds records into Stats. Only closed records dated inside the
// window count; days are distinct dates, not records. Salary is the sum of the
// stamped daily_salary values, never recomputed from a current rate. The
// result does not depend on the order of records.
func Aggregate(records []model.PunchRecord, window Window) Stats {
	days := make(map[string]struct{})
	hours := decimal.Zero
	salary := decimal.Zero

	for _, r := range records {
		if r.PunchOut == nil || !window.Contains(r.Date) {
			continue
		}
		days[r.Date] = struct{}{}
		if r.TotalHours.Valid {
			hours = hours.Add(r.TotalHours.Decimal)
		}
		if r.DailySalary.Valid {
			salary = salary.Add(r.DailySalary.Decimal)
		}
	}

	stats := Stats{
		DaysWorked:     len(days),
		TotalHours:     hours,
		AvgHoursPerDay: decimal.Zero,
		TotalSalary:    salary,
	}
	if stats.DaysWorked > 0 {
		stats.AvgHoursPerDay = hours.Div(decimal.NewFromInt(int64(stats.DaysWorked)))
	}
	return stats
}

// RoundedStats is Stats at presentation scale.
type RoundedStats struct {
	DaysWorked     int          `json:"days_worked"`
	TotalHours     model.Amount `json:"total_hours"`
	AvgHoursPerDay model.Amount `json:"avg_hours_per_day"`
	TotalSalary    model.Amount `json:"total_salary"`
}

// Rounded is s with every amount rounded to two places, half away from zero.
func (s Stats) Rounded() RoundedStats {
	return RoundedStats{
		DaysWorked:     s.DaysWorked,
		TotalHours:     model.NewAmount(s.TotalHours),
		AvgHoursPerDay: model.NewAmount(s.AvgHoursPerDay),
		TotalSalary:    model.NewAmount(s.TotalSalary),
	}
}

// checkRecord rejects closed records whose stored fields break the ledger
// invariants; the report builder skips those instead of failing.
func checkRecord(r model.PunchRecord) error {
	switch {
	case r.PunchOut == nil:
		return nil
	case !r.PunchOut.After(r.PunchIn):
		return &Error{Kind: KindAggregationDefect, EmployeeID: r.EmployeeID, RecordID: r.ID, Detail: "punch_out not after punch_in"}
	case !r.TotalHours.Valid || r.TotalHours.Decimal.IsNegative():
		return &Error{Kind: KindAggregationDefect, EmployeeID: r.EmployeeID, RecordID: r.ID, Detail: "missing total_hours"}
	case !r.DailySalary.Valid || r.DailySalary.Decimal.IsNegative():
		return &Error{Kind: KindAggregationDefect, EmployeeID: r.EmployeeID, RecordID: r.ID, Detail: "missing daily_salary"}
	}
	return nil
}
