package handler

import (
	"punchclock-backend/internal/middleware"
	"punchclock-backend/internal/model"
	"punchclock-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	usecase *usecase.ReportUsecase
}

func NewReportHandler(u *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{usecase: u}
}

// CreateReportRequest never carries numbers; data is always computed here.
type CreateReportRequest struct {
	Title      string `json:"title" validate:"max=200"`
	ReportType string `json:"report_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type reportView struct {
	ID          uint                     `json:"id"`
	Title       string                   `json:"title"`
	ReportType  string                   `json:"report_type"`
	StartDate   string                   `json:"start_date"`
	EndDate     string                   `json:"end_date"`
	GeneratedBy string                   `json:"generated_by"`
	GeneratedAt string                   `json:"generated_at"`
	Data        map[string]model.Summary `json:"data,omitempty"`
}

func newReportView(r *model.Report, withData bool) (reportView, error) {
	v := reportView{
		ID:          r.ID,
		Title:       r.Title,
		ReportType:  r.ReportType,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		GeneratedBy: r.GeneratedBy,
		GeneratedAt: r.GeneratedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
	}
	if withData {
		data, err := model.DecodeReportData(r.ReportType, r.Data)
		if err != nil {
			return v, err
		}
		v.Data = data
	}
	return v, nil
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	// Required title, type and window are checked by the report builder.
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	report, err := h.usecase.GenerateReport(c.UserContext(), caller, req.Title, req.ReportType, req.StartDate, req.EndDate)
	if err != nil {
		return engineError(c, err)
	}

	view, err := newReportView(report, true)
	if err != nil {
		return engineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *ReportHandler) GetAll(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	reports, err := h.usecase.ListReports(c.UserContext(), caller, c.Query("report_type"))
	if err != nil {
		return engineError(c, err)
	}

	views := make([]reportView, 0, len(reports))
	for i := range reports {
		v, err := newReportView(&reports[i], c.QueryBool("with_data"))
		if err != nil {
			return engineError(c, err)
		}
		views = append(views, v)
	}
	return c.JSON(fiber.Map{"data": views})
}

func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report id"})
	}

	report, err := h.usecase.GetReport(c.UserContext(), caller, uint(id))
	if err != nil {
		return engineError(c, err)
	}

	view, err := newReportView(report, true)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(view)
}
