package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP para Client (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        client_name             formData  string  true   "Nombre"
// @Param        city                    formData  string  true   "Ciudad"
// @Param        address                 formData  string  true   "Dirección"
// @Param        primary_contact_person  formData  string  true   "Contacto principal"
// @Param        primary_mobile_number   formData  string  true   "Móvil principal (10 dígitos)"
// @Param        email                   formData  string  true   "Email"
// @Param        gst_number              formData  string  true   "GST"
// @Param        types_of_metals         formData  string  true   "Metales"
// @Param        client_category         formData  string  true   "Categoría"
// @Param        whatsapp_number         formData  string  true   "WhatsApp (10 dígitos)"
// @Param        distributor_id          formData  int     false  "Distribuidor asociado"
// @Param        client_logo             formData  file    false  "Logo (png/jpg/jpeg, máx. 2 MiB)"
// @Success      201  {object}  dto.ClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := readForm(c)
	if err != nil {
		return writeError(c, err)
	}
	logo, err := formFile(c, dto.FileClientLogo)
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
// @Summary      Listar clientes visibles
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        per_page  query  int     false  "Tamaño"  default(10)
// @Param        search    query  string  false  "Nombre, ciudad, email o GST"
// @Param        category  query  string  false  "Categoría"
// @Param        city      query  string  false  "Ciudad"
// @Success      200  {object}  dto.ClientListResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	clientID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id, clientID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Actualización parcial: solo se aplican los campos enviados.
// @Tags         clients
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id           path      int   true   "ID del cliente"
// @Param        client_logo  formData  file  false  "Logo nuevo"
// @Success      200  {object}  dto.ClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	clientID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := readForm(c)
	if err != nil {
		return writeError(c, err)
	}
	logo, err := formFile(c, dto.FileClientLogo)
	if err != nil {
		return writeError(c, err)
	}
	defer closeUpload(logo)
	out, err := h.uc.Update(c.UserContext(), id, clientID, form, logo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	clientID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id, clientID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado", ID: clientID})
}
