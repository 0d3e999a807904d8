package model

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

type Employee struct {
	gorm.Model
	EmployeeID  string          `json:"employee_id" gorm:"column:employee_id;size:20;uniqueIndex;not null"` // business key, immutable
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number" gorm:"size:15"`
	Address     string          `json:"address"`
	Campaign    string          `json:"campaign" gorm:"size:100"` // label only
	Role        string          `json:"role" gorm:"size:20;default:employee;index"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(10,2);not null"`
	Password    string          `json:"-"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
