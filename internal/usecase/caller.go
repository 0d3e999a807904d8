package usecase

import "punchclock-backend/internal/model"

// Caller is the authenticated identity an operation runs on behalf of. It is
// always passed in explicitly; nothing in this package reads session state.
type Caller struct {
	EmployeeID string
	Role       string
}

func (c Caller) IsAdmin() bool   { return c.Role == model.RoleAdmin }
func (c Caller) IsManager() bool { return c.Role == model.RoleManager }

// CanManage reports whether the caller may act on an employee with the given
// id and role: admins on anyone, managers on plain employees, everyone on
// themselves.
func (c Caller) CanManage(employeeID, role string) bool {
	switch {
	case c.EmployeeID == employeeID:
		return true
	case c.IsAdmin():
		return true
	case c.IsManager():
		return role == model.RoleEmployee
	}
	return false
}

func (c Caller) canReport() bool {
	return c.IsAdmin() || c.IsManager()
}
