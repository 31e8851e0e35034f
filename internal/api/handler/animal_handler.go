package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/ports"
)

// AnimalHandler handles livestock record operations.
type AnimalHandler struct {
	service ports.AnimalService
}

func NewAnimalHandler(service ports.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

type createAnimalRequest struct {
	AnimalID string  `json:"animalId" validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Weight   float64 `json:"weight"   validate:"required,gt=0"`
	Gender   string  `json:"gender"   validate:"required,oneof=Male Female"`
	Type     string  `json:"type"     validate:"required"`
	Age      string  `json:"age"      validate:"required"`
}

// Create handles POST /api/animals.
//
// @Summary      Register a new animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnimalRequest  true  "Animal details"
// @Success      201   {object}  domain.Animal
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/animals [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	var req createAnimalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	animal, err := h.service.Create(c.Request().Context(), ports.CreateAnimalInput{
		AnimalID: req.AnimalID,
		Name:     req.Name,
		Weight:   req.Weight,
		Gender:   req.Gender,
		Type:     req.Type,
		Age:      req.Age,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, animal)
}

// List handles GET /api/animals.
//
// @Summary      List animals
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Animal
// @Router       /api/animals [get]
func (h *AnimalHandler) List(c echo.Context) error {
	animals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}

// Search handles GET /api/animals/search?term=.
//
// @Summary      Search animals by id, name, or type
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        term  query    string  true  "Search term"
// @Success      200   {array}  domain.Animal
// @Router       /api/animals/search [get]
func (h *AnimalHandler) Search(c echo.Context) error {
	animals, err := h.service.Search(c.Request().Context(), c.QueryParam("term"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}
