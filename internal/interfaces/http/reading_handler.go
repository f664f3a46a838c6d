package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/usecase"
)

// ReadingHandler lecturas de refrigerante y dropdown de máquinas.
type ReadingHandler struct {
	uc *usecase.ReadingUseCase
}

// NewReadingHandler construye el handler.
func NewReadingHandler(uc *usecase.ReadingUseCase) *ReadingHandler {
	return &ReadingHandler{uc: uc}
}

// List godoc
// @Summary      Listar lecturas
// @Tags         readings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReadingListResponse
// @Router       /api/readings [get]
func (h *ReadingHandler) List(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar lectura
// @Tags         readings
// @Security     Bearer
// @Accept       json,mpfd,x-www-form-urlencoded
// @Produce      json
// @Param        machine_id         formData  int     true   "Máquina"
// @Param        oil_refractometer  formData  number  false  "Refractómetro"
// @Param        oil_ph             formData  number  false  "pH aceite"
// @Param        water_ph           formData  number  false  "pH agua"
// @Param        oil_top_up         formData  number  false  "Reposición de aceite"
// @Param        water_input        formData  number  false  "Agua agregada"
// @Success      201  {object}  dto.ReadingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/readings [post]
func (h *ReadingHandler) Create(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := readForm(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), id, form)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Respond godoc
// @Summary      Responder lectura
// @Description  Guarda las métricas post-servicio y marca la lectura como resuelta.
// @Tags         readings
// @Security     Bearer
// @Accept       json,mpfd,x-www-form-urlencoded
// @Produce      json
// @Param        id                      path      int     true   "ID de la lectura"
// @Param        post_oil_refractometer  formData  number  false  "Refractómetro"
// @Param        post_oil_ph             formData  number  false  "pH aceite"
// @Param        post_oil_top_up         formData  number  false  "Reposición de aceite"
// @Param        post_water              formData  number  false  "Agua"
// @Param        post_water_ph           formData  number  false  "pH agua"
// @Success      200  {object}  dto.ReadingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/readings/{id}/response [post]
func (h *ReadingHandler) Respond(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	readingID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := readForm(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Respond(c.UserContext(), id, readingID, form)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lectura
// @Tags         readings
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la lectura"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/readings/{id} [delete]
func (h *ReadingHandler) Delete(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	readingID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id, readingID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "lectura eliminada", ID: readingID})
}

// Machines godoc
// @Summary      Dropdown de máquinas
// @Tags         readings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MachineResponse
// @Router       /api/machines [get]
func (h *ReadingHandler) Machines(c *fiber.Ctx) error {
	out, err := h.uc.Machines(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
