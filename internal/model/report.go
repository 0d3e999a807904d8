package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ReportAttendance = "attendance"
	ReportSalary     = "salary"
	ReportEmployee   = "employee"
)

var ErrReportImmutable = errors.New("report snapshots cannot be modified")

func ValidReportType(t string) bool {
	return t == ReportAttendance || t == ReportSalary || t == ReportEmployee
}

// Report is a point-in-time snapshot. Every column is write-once.
type Report struct {
	gorm.Model
	Title       string         `json:"title" gorm:"size:200;not null;<-:create"`
	ReportType  string         `json:"report_type" gorm:"size:20;not null;<-:create"`
	StartDate   string         `json:"start_date" gorm:"size:10;not null;<-:create"`
	EndDate     string         `json:"end_date" gorm:"size:10;not null;<-:create"`
	GeneratedBy string         `json:"generated_by" gorm:"size:20;not null;<-:create"`
	GeneratedAt time.Time      `json:"generated_at" gorm:"not null;index;<-:create"`
	Data        datatypes.JSON `json:"data" gorm:"<-:create"`
}

func (r *Report) BeforeUpdate(tx *gorm.DB) error {
	return ErrReportImmutable
}

// Summary is one employee's row in a report. The concrete type is fixed by
// the report type: AttendanceSummary, SalarySummary or EmployeeSummary.
type Summary interface {
	ReportType() string
}

type AttendanceSummary struct {
	Name           string `json:"name"`
	DaysWorked     int    `json:"days_worked"`
	TotalHours     Amount `json:"total_hours"`
	AvgHoursPerDay Amount `json:"avg_hours_per_day"`
}

func (AttendanceSummary) ReportType() string { return ReportAttendance }

type SalarySummary struct {
	Name        string `json:"name"`
	HourlyRate  Amount `json:"hourly_rate"`
	TotalHours  Amount `json:"total_hours"`
	TotalSalary Amount `json:"total_salary"`
}

func (SalarySummary) ReportType() string { return ReportSalary }

type EmployeeSummary struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Campaign    string `json:"campaign"`
	HourlyRate  Amount `json:"hourly_rate"`
	DaysWorked  int    `json:"days_worked"`
	TotalHours  Amount `json:"total_hours"`
	TotalSalary Amount `json:"total_salary"`
}

func (EmployeeSummary) ReportType() string { return ReportEmployee }

// EncodeReportData serializes summaries keyed by employee id. Every summary
// must match reportType.
func EncodeReportData(reportType string, data map[string]Summary) (datatypes.JSON, error) {
	for id, s := range data {
		if s.ReportType() != reportType {
			return nil, fmt.Errorf("summary for %s is %s, want %s", id, s.ReportType(), reportType)
		}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeReportData is the inverse of EncodeReportData.
func DecodeReportData(reportType string, raw []byte) (map[string]Summary, error) {
	out := make(map[string]Summary)
	if len(raw) == 0 {
		return out, nil
	}

	switch reportType {
	case ReportAttendance:
		var m map[string]AttendanceSummary
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		for k, v := range m {
			out[k] = v
		}
	case ReportSalary:
		var m map[string]SalarySummary
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		for k, v := range m {
			out[k] = v
		}
	case ReportEmployee:
		var m map[string]EmployeeSummary
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		for k, v := range m {
			out[k] = v
		}
	default:
		return nil, fmt.Errorf("unknown report type %q", reportType)
	}
	return out, nil
}
