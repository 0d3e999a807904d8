package handler

import (
	"errors"

	"punchclock-backend/internal/middleware"
	"punchclock-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type EmployeeHandler struct {
	usecase *usecase.EmployeeUsecase
	auth    *usecase.AuthUsecase
}

func NewEmployeeHandler(u *usecase.EmployeeUsecase, auth *usecase.AuthUsecase) *EmployeeHandler {
	return &EmployeeHandler{usecase: u, auth: auth}
}

type LoginRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (h *EmployeeHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	token, employee, err := h.auth.Login(c.UserContext(), req.EmployeeID, req.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Login successful",
		"token":       token,
		"employee_id": employee.EmployeeID,
		"role":        employee.Role,
		"name":        employee.FullName(),
	})
}

func (h *EmployeeHandler) GetMe(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	employee, err := h.usecase.Get(c.UserContext(), caller, caller.EmployeeID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"data": newEmployeeView(employee)})
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	employees, err := h.usecase.List(c.UserContext(), caller, c.Query("search"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"data": newEmployeeViews(employees)})
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	employee, err := h.usecase.Get(c.UserContext(), caller, c.Params("employee_id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"data": newEmployeeView(employee)})
}

type CreateEmployeeRequest struct {
	EmployeeID  string           `json:"employee_id" validate:"required,max=20"`
	FirstName   string           `json:"first_name" validate:"required"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email" validate:"required,email"`
	PhoneNumber string           `json:"phone_number" validate:"max=15"`
	Address     string           `json:"address"`
	Campaign    string           `json:"campaign" validate:"max=100"`
	Role        string           `json:"role" validate:"omitempty,oneof=admin manager employee"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	Password    string           `json:"password" validate:"required,min=6"`
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	employee, err := h.usecase.Create(c.UserContext(), caller, usecase.NewEmployee{
		EmployeeID:  req.EmployeeID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Campaign:    req.Campaign,
		Role:        req.Role,
		HourlyRate:  req.HourlyRate,
		Password:    req.Password,
	})
	if err != nil {
		return engineError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Employee created",
		"data":    newEmployeeView(employee),
	})
}

type UpdateEmployeeRequest struct {
	FirstName   *string          `json:"first_name"`
	LastName    *string          `json:"last_name"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	PhoneNumber *string          `json:"phone_number" validate:"omitempty,max=15"`
	Address     *string          `json:"address"`
	Campaign    *string          `json:"campaign" validate:"omitempty,max=100"`
	Role        *string          `json:"role" validate:"omitempty,oneof=admin manager employee"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	Password    *string          `json:"password" validate:"omitempty,min=6"`
	IsActive    *bool            `json:"is_active"`
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	employee, err := h.usecase.Update(c.UserContext(), caller, c.Params("employee_id"), usecase.EmployeeChanges{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Campaign:    req.Campaign,
		Role:        req.Role,
		HourlyRate:  req.HourlyRate,
		Password:    req.Password,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Employee updated",
		"data":    newEmployeeView(employee),
	})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	if err := h.usecase.Delete(c.UserContext(), caller, c.Params("employee_id")); err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Employee deleted"})
}
