package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/usecase"
)

// DistributorHandler maneja las peticiones HTTP para Distributor (protegido).
type DistributorHandler struct {
	uc *usecase.DistributorUseCase
}

// NewDistributorHandler construye el handler.
func NewDistributorHandler(uc *usecase.DistributorUseCase) *DistributorHandler {
	return &DistributorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear distribuidor
// @Tags         distributors
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        distributor_name               formData  string  true   "Nombre"
// @Param        city                           formData  string  true   "Ciudad"
// @Param        address                        formData  string  true   "Dirección"
// @Param        primary_contact_person         formData  string  true   "Contacto principal"
// @Param        primary_mobile_number          formData  string  true   "Móvil principal (10 dígitos)"
// @Param        email_id                       formData  string  true   "Email"
// @Param        gst_number                     formData  string  true   "GST"
// @Param        distributor_category           formData  string  true   "Categoría"
// @Param        whatsapp_communication_number  formData  string  true   "WhatsApp (10 dígitos)"
// @Param        secondary_mobile_number        formData  string  false  "Móvil secundario"
// @Param        distributor_logo               formData  file    false  "Logo (png/jpg/jpeg, máx. 2 MiB)"
// @Success      201  {object}  dto.DistributorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/distributors [post]
func (h *DistributorHandler) Create(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := readForm(c)
	if err != nil {
		return writeError(c, err)
	}
	logo, err := formFile(c, dto.FileDistributorLogo)
	if err != nil {
		return writeError(c, err)
	}
	defer closeUpload(logo)
	out, err := h.uc.Create(c.UserContext(), id, form, logo)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar distribuidores visibles
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"         default(1)
// @Param        per_page  query  int     false  "Tamaño"         default(10)
// @Param        search    query  string  false  "Nombre, ciudad o GST"
// @Param        category  query  string  false  "Categoría"
// @Param        city      query  string  false  "Ciudad"
// @Success      200  {object}  dto.DistributorListResponse
// @Router       /api/distributors [get]
func (h *DistributorHandler) List(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	var req dto.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Dropdown de distribuidores visibles
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DistributorOption
// @Router       /api/distributors/list [get]
func (h *DistributorHandler) Options(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Options(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener distribuidor por ID
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del distribuidor"
// @Success      200  {object}  dto.DistributorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [get]
func (h *DistributorHandler) GetByID(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	distributorID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id, distributorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar distribuidor
// @Description  Reemplazo completo: se exigen los mismos campos que al crear.
// @Tags         distributors
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id                path      int   true   "ID del distribuidor"
// @Param        distributor_logo  formData  file  false  "Logo nuevo"
// @Success      200  {object}  dto.DistributorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [put]
func (h *DistributorHandler) Update(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	distributorID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := readForm(c)
	if err != nil {
		return writeError(c, err)
	}
	logo, err := formFile(c, dto.FileDistributorLogo)
	if err != nil {
		return writeError(c, err)
	}
	defer closeUpload(logo)
	out, err := h.uc.Update(c.UserContext(), id, distributorID, form, logo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar distribuidor
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del distribuidor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [delete]
func (h *DistributorHandler) Delete(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	distributorID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id, distributorID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "distribuidor eliminado", ID: distributorID})
}

// QRData godoc
// @Summary      Datos del QR del distribuidor
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del distribuidor"
// @Success      200  {object}  dto.DistributorQRResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id}/qrcode [get]
func (h *DistributorHandler) QRData(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	distributorID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.QRData(c.UserContext(), id, distributorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// QRCard godoc
// @Summary      Tarjeta PDF con QR del distribuidor
// @Tags         distributors
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del distribuidor"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id}/qrcode.pdf [get]
func (h *DistributorHandler) QRCard(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	distributorID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	pdf, err := h.uc.QRCard(c.UserContext(), id, distributorID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="distributor_%d_qr.pdf"`, distributorID))
	return c.Send(pdf)
}
