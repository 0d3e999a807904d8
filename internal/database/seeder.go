package database

import (
	"errors"
	"log"

	"punchclock-backend/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedAccount struct {
	employee model.Employee
	password string
}

var demoAccounts = []seedAccount{
	{
		employee: model.Employee{
			EmployeeID: "ADMIN001",
			FirstName:  "System",
			LastName:   "Administrator",
			Email:      "admin@company.com",
			Role:       model.RoleAdmin,
		},
		password: "admin123",
	},
	{
		employee: model.Employee{
			EmployeeID: "MGR001",
			FirstName:  "John",
			LastName:   "Manager",
			Email:      "manager@company.com",
			Role:       model.RoleManager,
		},
		password: "manager123",
	},
	{
		employee: model.Employee{
			EmployeeID: "EMP001",
			FirstName:  "Jane",
			LastName:   "Employee",
			Email:      "employee@company.com",
			Role:       model.RoleEmployee,
			Campaign:   "Marketing Campaign 2024",
		},
		password: "employee123",
	},
}

// SeedAll creates the demo accounts, or resets them to their known profile
// and password when they already exist.
func SeedAll(db *gorm.DB) error {
	for _, acc := range demoAccounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		emp := acc.employee
		emp.Password = string(hashed)
		emp.HourlyRate = decimal.RequireFromString("6.00")
		emp.IsActive = true

		var existing model.Employee
		err = db.Unscoped().Where("employee_id = ?", emp.EmployeeID).First(&existing).Error
		switch {
		case err == nil:
			// Reset to the known demo profile
			err = db.Unscoped().Model(&existing).Updates(map[string]interface{}{
				"first_name": emp.FirstName,
				"last_name":  emp.LastName,
				"email":      emp.Email,
				"role":       emp.Role,
				"campaign":   emp.Campaign,
				"password":   emp.Password,
				"is_active":  true,
				"deleted_at": nil,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = db.Create(&emp).Error
		}
		if err != nil {
			return err
		}
		log.Printf("Seeded %s (%s)", emp.EmployeeID, emp.Role)
	}
	return nil
}
