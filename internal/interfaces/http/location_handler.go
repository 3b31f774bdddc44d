package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/serviya/serviya-api/internal/application/dto"
	"github.com/serviya/serviya-api/internal/application/usecase"
)

// LocationHandler maneja las lecturas geográficas de referencia.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler inyectando el caso de uso.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// ListDepartments godoc
// @Summary      Listar departamentos
// @Tags         locations
// @Produce      json
// @Success      200  {array}   dto.DepartamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/departamentos [get]
func (h *LocationHandler) ListDepartments(c *fiber.Ctx) error {
	out, err := h.uc.ListDepartments(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListCities godoc
// @Summary      Listar ciudades de un departamento
// @Tags         locations
// @Produce      json
// @Param        id_departamento  path  int  true  "ID del departamento"
// @Success      200  {array}   dto.CiudadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/ciudades/{id_departamento} [get]
func (h *LocationHandler) ListCities(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id_departamento"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de departamento inválido"})
	}
	out, err := h.uc.ListCities(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListNeighborhoods godoc
// @Summary      Listar barrios de una ciudad
// @Tags         locations
// @Produce      json
// @Param        id_ciudad  path  int  true  "ID de la ciudad"
// @Success      200  {array}   dto.BarrioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/barrios/{id_ciudad} [get]
func (h *LocationHandler) ListNeighborhoods(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id_ciudad"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de ciudad inválido"})
	}
	out, err := h.uc.ListNeighborhoods(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
