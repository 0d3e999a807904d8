package handler

import (
	"punchclock-backend/internal/repository"
	"punchclock-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// GetStats reports headcount and payroll totals; payroll is the sum of the
// stamped daily salaries, optionally limited to a window.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	start, end := c.Query("start_date"), c.Query("end_date")
	if start != "" || end != "" {
		if _, err := usecase.NewWindow(orDefault(start, "0001-01-01"), orDefault(end, "9999-12-31")); err != nil {
			return engineError(c, err)
		}
	}

	stats, err := h.repo.GetDashboardStats(c.UserContext(), start, end)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Dashboard statistics",
		"data":    stats,
	})
}
