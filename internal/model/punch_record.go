package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DateLayout = "2006-01-02"

// PunchRecord is one clock-in/clock-out pair. It is created open on punch-in
// and closed exactly once on punch-out; it is never mutated afterwards.
type PunchRecord struct {
	gorm.Model
	EmployeeID string     `json:"employee_id" gorm:"column:employee_id;size:20;index:idx_punch_emp_date,priority:1;not null"`
	Date       string     `json:"date" gorm:"size:10;index:idx_punch_emp_date,priority:2;not null"` // YYYY-MM-DD, business timezone
	PunchIn    time.Time  `json:"punch_in" gorm:"not null"`
	PunchOut   *time.Time `json:"punch_out"`

	// Hours at full stored precision, pay stamped with the rate at punch-out.
	TotalHours  decimal.NullDecimal `json:"total_hours" gorm:"type:decimal(14,6)"`
	DailySalary decimal.NullDecimal `json:"daily_salary" gorm:"type:decimal(16,4)"`

	// OpenKey holds the employee id while the record is open and NULL once
	// closed, so the unique index allows a single open record per employee.
	OpenKey *string `json:"-" gorm:"size:20;uniqueIndex"`
}

func (p PunchRecord) IsOpen() bool {
	return p.PunchOut == nil
}
