package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/ports"
)

// HealthReportHandler handles animal treatment record operations.
type HealthReportHandler struct {
	service ports.HealthReportService
}

func NewHealthReportHandler(service ports.HealthReportService) *HealthReportHandler {
	return &HealthReportHandler{service: service}
}

type createHealthReportRequest struct {
	AnimalID   string  `json:"animalId"   validate:"required"`
	AnimalName string  `json:"animalName" validate:"required"`
	Date       string  `json:"date"       validate:"required"`
	Treatment  string  `json:"treatment"  validate:"required"`
	Cost       float64 `json:"cost"       validate:"required,gt=0"`
}

// Create handles POST /api/health.
//
// @Summary      Add a health report
// @Tags         health-reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHealthReportRequest  true  "Treatment record"
// @Success      201   {object}  domain.HealthReport
// @Failure      400   {object}  map[string]string
// @Router       /api/health [post]
func (h *HealthReportHandler) Create(c echo.Context) error {
	var req createHealthReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format")
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	report, err := h.service.Create(c.Request().Context(), ports.CreateHealthReportInput{
		AnimalID:      req.AnimalID,
		AnimalName:    req.AnimalName,
		Date:          date,
		Treatment:     req.Treatment,
		Cost:          req.Cost,
		TreatedBy:     principal.ID,
		TreatedByName: principal.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, report)
}

// List handles GET /api/health?animalId=.
//
// @Summary      List health reports
// @Tags         health-reports
// @Produce      json
// @Security     BearerAuth
// @Param        animalId  query    string  false  "Filter by animal id (partial match)"
// @Success      200       {array}  domain.HealthReport
// @Router       /api/health [get]
func (h *HealthReportHandler) List(c echo.Context) error {
	reports, err := h.service.List(c.Request().Context(), c.QueryParam("animalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}
