package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/ports"
)

// EmployeeHandler handles manager-only employee record operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	Name     string  `json:"name"     validate:"required,max=50"`
	Gender   string  `json:"gender"   validate:"required,oneof=Male Female Other"`
	Contact  string  `json:"contact"  validate:"required"`
	Salary   float64 `json:"salary"   validate:"required,gt=0"`
	Username string  `json:"username" validate:"required,min=6,max=20"`
	Password string  `json:"password" validate:"required,min=6"`
}

type updateEmployeeRequest struct {
	Name    string  `json:"name"    validate:"required,max=50"`
	Gender  string  `json:"gender"  validate:"required,oneof=Male Female Other"`
	Contact string  `json:"contact" validate:"required"`
	Salary  float64 `json:"salary"  validate:"required,gt=0"`
}

// Create handles POST /api/employees.
//
// @Summary      Provision a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Name:      req.Name,
		Gender:    req.Gender,
		Contact:   req.Contact,
		Salary:    req.Salary,
		Username:  req.Username,
		Password:  req.Password,
		ManagerID: principal.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, employee)
}

// List handles GET /api/employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Employee
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Search handles GET /api/employees/search?term=.
//
// @Summary      Search employees by id or name
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        term  query    string  true  "Search term"
// @Success      200   {array}  domain.Employee
// @Router       /api/employees/search [get]
func (h *EmployeeHandler) Search(c echo.Context) error {
	employees, err := h.service.Search(c.Request().Context(), c.QueryParam("term"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee record id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Update handles PUT /api/employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee record id"
// @Param        body  body      updateEmployeeRequest  true  "Updated fields"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  map[string]string
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Name:    req.Name,
		Gender:  req.Gender,
		Contact: req.Contact,
		Salary:  req.Salary,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/:id. Deleting an account also revokes
// any outstanding tokens for it: the auth middleware re-resolves the account
// on every request and rejects tokens whose record is gone.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee record id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "employee removed"})
}
