package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/ports"
)

// SaleHandler handles point-of-sale record operations.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

type createSaleRequest struct {
	SaleID       string  `json:"saleId"       validate:"required"`
	SaleDate     string  `json:"saleDate"     validate:"required"`
	CustomerName string  `json:"customerName" validate:"required"`
	ProductID    string  `json:"productId"    validate:"required"`
	TotalCost    float64 `json:"totalCost"    validate:"required,gt=0"`
}

// Create handles POST /api/sales.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSaleRequest  true  "Sale record"
// @Success      201   {object}  domain.Sale
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sale date format")
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	sale, err := h.service.Create(c.Request().Context(), ports.CreateSaleInput{
		SaleID:         req.SaleID,
		SaleDate:       saleDate,
		CustomerName:   req.CustomerName,
		ProductID:      req.ProductID,
		TotalCost:      req.TotalCost,
		RecordedBy:     principal.ID,
		RecordedByName: principal.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sale)
}

// List handles GET /api/sales?saleId=.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        saleId  query    string  false  "Filter by sale id (partial match)"
// @Success      200     {array}  domain.Sale
// @Router       /api/sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context(), c.QueryParam("saleId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// Stats handles GET /api/sales/stats.
//
// @Summary      Per-day sales statistics
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.SalesDayStats
// @Router       /api/sales/stats [get]
func (h *SaleHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
