package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/ports"
)

// ProductHandler handles employee-only product catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	ProductID      string  `json:"productId"      validate:"required"`
	Name           string  `json:"name"           validate:"required"`
	PricePerUnit   float64 `json:"pricePerUnit"   validate:"required,gt=0"`
	Availability   string  `json:"availability"   validate:"required"`
	ProductionDate string  `json:"productionDate" validate:"required"`
	ExpirationDate string  `json:"expirationDate" validate:"required"`
}

// Create handles POST /api/products.
//
// @Summary      Add a product to the catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
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
	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid expiration date format")
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		ProductID:      req.ProductID,
		Name:           req.Name,
		PricePerUnit:   req.PricePerUnit,
		Availability:   req.Availability,
		ProductionDate: productionDate,
		ExpirationDate: expirationDate,
		CreatedBy:      principal.ID,
		CreatedByName:  principal.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// List handles GET /api/products?search=.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        search  query    string  false  "Match on product id or name"
// @Success      200     {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by product id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
