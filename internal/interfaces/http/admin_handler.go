package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/serviya/serviya-api/internal/application/admin"
	"github.com/serviya/serviya-api/internal/application/dto"
)

// AdminHandler maneja la revisión administrativa de solicitudes de verificación.
type AdminHandler struct {
	uc *admin.ReviewUseCase
}

// NewAdminHandler construye el handler inyectando el caso de uso.
func NewAdminHandler(uc *admin.ReviewUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListPending godoc
// @Summary      Solicitudes pendientes de revisión
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   dto.VerificationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/verificaciones/pendientes [get]
func (h *AdminHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetDetail godoc
// @Summary      Detalle de una solicitud (perfil y documentos)
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "ID de la solicitud"
// @Success      200  {object}  dto.VerificationDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/verificaciones/{id} [get]
func (h *AdminHandler) GetDetail(c *fiber.Ctx) error {
	id, ok := requestID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetDetail(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar una solicitud de verificación
// @Description  Marca la solicitud como aprobada y el perfil de empresa como verificado y activo.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true   "ID de la solicitud"
// @Param        body  body      dto.DecisionRequest  false  "Comentario del revisor"
// @Success      200   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/verificaciones/{id}/aprobar [post]
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	id, ok := requestID(c)
	if !ok {
		return nil
	}
	var in dto.DecisionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.uc.Approve(c.UserContext(), GetUserID(c), id, in.Comentario); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Solicitud aprobada."})
}

// Reject godoc
// @Summary      Rechazar una solicitud de verificación
// @Description  Marca la solicitud como rechazada. El perfil de empresa no se modifica.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true   "ID de la solicitud"
// @Param        body  body      dto.DecisionRequest  false  "Comentario del revisor"
// @Success      200   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/verificaciones/{id}/rechazar [post]
func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	id, ok := requestID(c)
	if !ok {
		return nil
	}
	var in dto.DecisionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.uc.Reject(c.UserContext(), GetUserID(c), id, in.Comentario); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Solicitud rechazada."})
}

// requestID parsea el path param id. Si es inválido responde 400 y devuelve ok=false.
func requestID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de solicitud inválido"})
		return 0, false
	}
	return id, true
}
