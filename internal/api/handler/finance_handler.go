package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/ports"
)

// FinanceHandler handles finance record operations.
type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

type createFinanceRecordRequest struct {
	Date         string  `json:"date"         validate:"required"`
	TotalRevenue float64 `json:"totalRevenue" validate:"gte=0"`
	TotalExpense float64 `json:"totalExpense" validate:"gte=0"`
}

// Create handles POST /api/finance.
//
// @Summary      Add a finance record
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFinanceRecordRequest  true  "Finance record"
// @Success      201   {object}  domain.FinanceRecord
// @Failure      400   {object}  map[string]string
// @Router       /api/finance [post]
func (h *FinanceHandler) Create(c echo.Context) error {
	var req createFinanceRecordRequest
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

	record, err := h.service.Create(c.Request().Context(), ports.CreateFinanceRecordInput{
		Date:         date,
		TotalRevenue: req.TotalRevenue,
		TotalExpense: req.TotalExpense,
		RecordedBy:   principal.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, record)
}

// List handles GET /api/finance?date=.
//
// @Summary      List finance records
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        date  query    string  false  "Filter by day (YYYY-MM-DD)"
// @Success      200   {array}  domain.FinanceRecord
// @Router       /api/finance [get]
func (h *FinanceHandler) List(c echo.Context) error {
	var date time.Time
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date format")
		}
		date = parsed
	}

	records, err := h.service.List(c.Request().Context(), date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Stats handles GET /api/finance/stats.
//
// @Summary      Per-month finance statistics
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.FinanceMonthStats
// @Router       /api/finance/stats [get]
func (h *FinanceHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
