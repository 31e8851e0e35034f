package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// MilkHandler handles milk production record operations.
type MilkHandler struct {
	service ports.MilkService
}

func NewMilkHandler(service ports.MilkService) *MilkHandler {
	return &MilkHandler{service: service}
}

type createMilkRecordRequest struct {
	ProductionDate string  `json:"productionDate" validate:"required"`
	AnimalID       string  `json:"animalId"       validate:"required"`
	Quantity       float64 `json:"quantity"       validate:"required,gt=0"`
	Quality        string  `json:"quality"        validate:"omitempty,oneof=Excellent Good Average Poor"`
}

// Create handles POST /api/milk. The recording employee is taken from the
// authenticated principal, never from the payload.
//
// @Summary      Add a milk production record
// @Tags         milk
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMilkRecordRequest  true  "Production record"
// @Success      201   {object}  domain.MilkRecord
// @Failure      400   {object}  map[string]string
// @Router       /api/milk [post]
func (h *MilkHandler) Create(c echo.Context) error {
	var req createMilkRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	productionDate, err := time.Parse("2006-01-02", req.ProductionDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid production date format")
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), ports.CreateMilkRecordInput{
		ProductionDate: productionDate,
		AnimalID:       req.AnimalID,
		Quantity:       req.Quantity,
		Quality:        domain.MilkQuality(req.Quality),
		RecordedBy:     principal.ID,
		RecordedByName: principal.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, record)
}

// List handles GET /api/milk?animalId=&date=.
//
// @Summary      List milk production records
// @Tags         milk
// @Produce      json
// @Security     BearerAuth
// @Param        animalId  query    string  false  "Filter by animal id (partial match)"
// @Param        date      query    string  false  "Filter by production day (YYYY-MM-DD)"
// @Success      200       {array}  domain.MilkRecord
// @Router       /api/milk [get]
func (h *MilkHandler) List(c echo.Context) error {
	filter := ports.MilkFilter{AnimalID: c.QueryParam("animalId")}
	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date format")
		}
		filter.Date = date
	}

	records, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Stats handles GET /api/milk/stats.
//
// @Summary      Per-day milk production statistics
// @Tags         milk
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.MilkDayStats
// @Router       /api/milk/stats [get]
func (h *MilkHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
