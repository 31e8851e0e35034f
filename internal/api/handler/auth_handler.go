package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/api/metrics"
	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// AuthHandler handles the public registration and login endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerManagerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	FullName string `json:"fullName" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Contact  string `json:"contact"  validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type managerAuthResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Contact  string `json:"contact"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type employeeAuthResponse struct {
	ID         string `json:"_id"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Token      string `json:"token"`
}

// Register creates a manager account and returns its profile plus a token.
//
// @Summary      Register a farm manager
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerManagerRequest  true  "Manager registration details"
// @Success      201   {object}  managerAuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.RegisterManager(c.Request().Context(), ports.RegisterManagerInput{
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
		Contact:  req.Contact,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toManagerAuthResponse(result))
}

// Login authenticates a manager and returns a 30-day token.
//
// @Summary      Manager login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  managerAuthResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.LoginManager(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(string(domain.RoleManager), "failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.RoleManager), "success").Inc()
	return c.JSON(http.StatusOK, toManagerAuthResponse(result))
}

// LoginEmployee authenticates an employee and returns a 30-day token.
//
// @Summary      Employee login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  employeeAuthResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/employee-login [post]
func (h *AuthHandler) LoginEmployee(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.LoginEmployee(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(string(domain.RoleEmployee), "failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.RoleEmployee), "success").Inc()
	return c.JSON(http.StatusOK, employeeAuthResponse{
		ID:         result.Employee.ID,
		EmployeeID: result.Employee.EmployeeID,
		Name:       result.Employee.Name,
		Username:   result.Employee.Username,
		Role:       string(result.Employee.Role),
		Token:      result.Token,
	})
}

func toManagerAuthResponse(r *ports.ManagerAuthResult) managerAuthResponse {
	return managerAuthResponse{
		ID:       r.Manager.ID,
		Username: r.Manager.Username,
		FullName: r.Manager.FullName,
		Contact:  r.Manager.Contact,
		Role:     string(r.Manager.Role),
		Token:    r.Token,
	}
}
