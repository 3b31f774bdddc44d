package http

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/serviya/serviya-api/internal/application/dto"
	"github.com/serviya/serviya-api/internal/application/provider"
)

// ProviderHandler maneja el flujo de inscripción y verificación de proveedores.
type ProviderHandler struct {
	uc *provider.SubmitVerificationUseCase
}

// NewProviderHandler construye el handler inyectando el caso de uso.
func NewProviderHandler(uc *provider.SubmitVerificationUseCase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

// SubmitVerification godoc
// @Summary      Solicitar verificación de proveedor
// @Description  Registra el perfil de empresa, su dirección, la solicitud de verificación y los documentos adjuntos en una sola transacción.
// @Tags         providers
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        nombre_fantasia      formData  string  true   "Nombre de fantasía de la empresa"
// @Param        calle                formData  string  true   "Calle"
// @Param        numero               formData  string  true   "Número"
// @Param        referencia           formData  string  false  "Referencia de la dirección"
// @Param        latitud              formData  number  true   "Latitud"
// @Param        longitud             formData  number  true   "Longitud"
// @Param        id_barrio            formData  integer true   "ID del barrio"
// @Param        ids_tip_documento    formData  string  true   "IDs de tipo de documento (repetido, uno por archivo)"
// @Param        documentos           formData  file    true   "Documentos adjuntos"
// @Param        comentario_solicitud formData  string  false  "Comentario del solicitante"
// @Success      201  {object}  dto.SubmitVerificationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/providers/solicitar-verificacion [post]
func (h *ProviderHandler) SubmitVerification(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}

	in := provider.SubmitInputDTO{
		UserID:         GetUserID(c),
		NombreFantasia: strings.TrimSpace(c.FormValue("nombre_fantasia")),
	}

	in.Direccion.Calle = strings.TrimSpace(c.FormValue("calle"))
	in.Direccion.Numero = strings.TrimSpace(c.FormValue("numero"))
	if ref := strings.TrimSpace(c.FormValue("referencia")); ref != "" {
		in.Direccion.Referencia = &ref
	}
	if in.Direccion.Lat, err = strconv.ParseFloat(c.FormValue("latitud"), 64); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "latitud inválida"})
	}
	if in.Direccion.Lng, err = strconv.ParseFloat(c.FormValue("longitud"), 64); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "longitud inválida"})
	}
	if in.Direccion.IDBarrio, err = strconv.ParseInt(c.FormValue("id_barrio"), 10, 64); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_barrio inválido"})
	}
	if comentario := strings.TrimSpace(c.FormValue("comentario_solicitud")); comentario != "" {
		in.Comentario = &comentario
	}

	in.IDsTipDocumento, err = parseDocTypeIDs(form.Value["ids_tip_documento"])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids_tip_documento inválido"})
	}

	files := form.File["documentos"]
	in.Archivos = make([]provider.FileInput, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo " + fh.Filename})
		}
		opened = append(opened, f)
		in.Archivos = append(in.Archivos, provider.FileInput{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}

	result, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubmitVerificationResponse{
		Message:        "Solicitud de verificación registrada correctamente.",
		IDVerificacion: result.IDVerificacion,
		IDPerfil:       result.IDPerfil,
	})
}

// parseDocTypeIDs acepta el campo repetido ("1", "2") o una sola entrada separada
// por comas ("1,2"), como lo envían distintos clientes de formularios.
func parseDocTypeIDs(values []string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
