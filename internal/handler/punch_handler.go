package handler

import (
	"time"

	"punchclock-backend/internal/middleware"
	"punchclock-backend/internal/repository"
	"punchclock-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PunchHandler struct {
	usecase *usecase.PunchUsecase
	now     func() time.Time
}

func NewPunchHandler(u *usecase.PunchUsecase, now func() time.Time) *PunchHandler {
	if now == nil {
		now = time.Now
	}
	return &PunchHandler{usecase: u, now: now}
}

type PunchRequest struct {
	Action string `json:"action" validate:"required,oneof=punch_in punch_out"`
}

// Punch records a punch for the caller only; there is no way to punch on
// behalf of someone else.
func (h *PunchHandler) Punch(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	var req PunchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	now := h.now()
	if req.Action == "punch_in" {
		record, err := h.usecase.PunchIn(c.UserContext(), caller.EmployeeID, now)
		if err != nil {
			return engineError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "Punched in",
			"status":  "punched in",
			"data":    newPunchRecordView(record),
		})
	}

	record, err := h.usecase.PunchOut(c.UserContext(), caller.EmployeeID, now)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Punched out",
		"status":  "punched out",
		"data":    newPunchRecordView(record),
	})
}

// GetOpen is polled by dashboards to render the running shift.
func (h *PunchHandler) GetOpen(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	record, err := h.usecase.GetOpenRecord(c.UserContext(), caller.EmployeeID)
	if err != nil {
		return engineError(c, err)
	}

	status := "NOT_PUNCHED_IN"
	if record != nil {
		status = "PUNCHED_IN"
	}
	return c.JSON(fiber.Map{
		"status": status,
		"data":   newPunchRecordView(record),
	})
}

func (h *PunchHandler) GetHistory(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	filter := repository.PunchFilter{
		EmployeeID: c.Query("employee_id"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}
	if filter.StartDate != "" || filter.EndDate != "" {
		if _, err := usecase.NewWindow(orDefault(filter.StartDate, "0001-01-01"), orDefault(filter.EndDate, "9999-12-31")); err != nil {
			return engineError(c, err)
		}
	}

	history, err := h.usecase.History(c.UserContext(), caller, filter)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Punch history",
		"data":    newPunchRecordViews(history),
	})
}

// GetStats returns the aggregator output for an employee (default: caller)
// over a window (default: the last seven days).
func (h *PunchHandler) GetStats(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	window := usecase.LastDays(h.now().In(h.usecase.Location()), 7)
	start, end := c.Query("start_date"), c.Query("end_date")
	if start != "" || end != "" {
		var err error
		window, err = usecase.NewWindow(orDefault(start, window.Start), orDefault(end, window.End))
		if err != nil {
			return engineError(c, err)
		}
	}

	employeeID := orDefault(c.Query("employee_id"), caller.EmployeeID)
	stats, err := h.usecase.Stats(c.UserContext(), caller, employeeID, window)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"employee_id": employeeID,
		"start_date":  window.Start,
		"end_date":    window.End,
		"data":        stats.Rounded(),
	})
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
