package handler

import (
	"errors"
	"log"
	"time"

	"punchclock-backend/internal/model"
	"punchclock-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var kindStatus = map[usecase.Kind]int{
	usecase.KindAlreadyOpen:       fiber.StatusConflict,
	usecase.KindNoOpenPunch:       fiber.StatusBadRequest,
	usecase.KindNonMonotonicTime:  fiber.StatusBadRequest,
	usecase.KindUnknownEmployee:   fiber.StatusNotFound,
	usecase.KindRateUnknown:       fiber.StatusUnprocessableEntity,
	usecase.KindInvalidWindow:     fiber.StatusBadRequest,
	usecase.KindInvalidTitle:      fiber.StatusBadRequest,
	usecase.KindInvalidReportType: fiber.StatusBadRequest,
	usecase.KindInvalidInput:      fiber.StatusBadRequest,
	usecase.KindForbidden:         fiber.StatusForbidden,
	usecase.KindNotFound:          fiber.StatusNotFound,
}

// engineError renders usecase errors with their kind; anything else is a 500.
func engineError(c *fiber.Ctx, err error) error {
	var ue *usecase.Error
	if errors.As(err, &ue) {
		status, ok := kindStatus[ue.Kind]
		if !ok {
			status = fiber.StatusInternalServerError
		}
		body := fiber.Map{"error": ue.Error(), "kind": ue.Kind}
		if ue.EmployeeID != "" {
			body["employee_id"] = ue.EmployeeID
		}
		if ue.RecordID != 0 {
			body["record_id"] = ue.RecordID
		}
		return c.Status(status).JSON(body)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

func validationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	fields := make(map[string]string)
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "errors": fields})
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthenticated"})
}

// punchRecordView is the wire shape of a punch record; amounts are rounded
// to two places here and nowhere earlier.
type punchRecordView struct {
	ID          uint             `json:"id"`
	EmployeeID  string           `json:"employee_id"`
	Date        string           `json:"date"`
	PunchIn     time.Time        `json:"punch_in"`
	PunchOut    *time.Time       `json:"punch_out"`
	TotalHours  *model.Amount `json:"total_hours"`
	DailySalary *model.Amount `json:"daily_salary"`
}

func newPunchRecordView(r *model.PunchRecord) *punchRecordView {
	if r == nil {
		return nil
	}
	v := &punchRecordView{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		PunchIn:    r.PunchIn,
		PunchOut:   r.PunchOut,
	}
	if r.TotalHours.Valid {
		h := model.NewAmount(r.TotalHours.Decimal)
		v.TotalHours = &h
	}
	if r.DailySalary.Valid {
		s := model.NewAmount(r.DailySalary.Decimal)
		v.DailySalary = &s
	}
	return v
}

func newPunchRecordViews(records []model.PunchRecord) []punchRecordView {
	views := make([]punchRecordView, 0, len(records))
	for i := range records {
		views = append(views, *newPunchRecordView(&records[i]))
	}
	return views
}

type employeeView struct {
	ID          uint         `json:"id"`
	EmployeeID  string       `json:"employee_id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phone_number"`
	Address     string       `json:"address"`
	Campaign    string       `json:"campaign"`
	Role        string       `json:"role"`
	HourlyRate  model.Amount `json:"hourly_rate"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func newEmployeeView(e *model.Employee) employeeView {
	return employeeView{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Name:        e.FullName(),
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Address:     e.Address,
		Campaign:    e.Campaign,
		Role:        e.Role,
		HourlyRate:  model.NewAmount(e.HourlyRate),
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func newEmployeeViews(employees []model.Employee) []employeeView {
	views := make([]employeeView, 0, len(employees))
	for i := range employees {
		views = append(views, newEmployeeView(&employees[i]))
	}
	return views
}
