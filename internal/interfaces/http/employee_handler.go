package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP para Employee (protegido).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json,mpfd,x-www-form-urlencoded
// @Produce      json
// @Param        employee_name    formData  string  true   "Nombre"
// @Param        address          formData  string  true   "Dirección"
// @Param        mobile_number    formData  string  true   "Móvil (10 dígitos)"
// @Param        whatsapp_number  formData  string  true   "WhatsApp (10 dígitos)"
// @Param        email            formData  string  true   "Email"
// @Param        employee_type    formData  string  true   "Tipo"
// @Param        manager_name     formData  string  false  "Manager"
// @Param        category         formData  string  false  "Categoría"
// @Success      201  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar empleados visibles
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        per_page  query  int     false  "Tamaño"  default(10)
// @Param        search    query  string  false  "Nombre, email o móvil"
// @Param        category  query  string  false  "Categoría"
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
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

// Categories godoc
// @Summary      Categorías de empleados
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/employees/categories [get]
func (h *EmployeeHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Managers godoc
// @Summary      Managers disponibles
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ManagersResponse
// @Router       /api/employees/managers [get]
func (h *EmployeeHandler) Managers(c *fiber.Ctx) error {
	out, err := h.uc.Managers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	employeeID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id, employeeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Description  El rol employee solo puede modificar dirección y teléfonos de su propio registro.
// @Tags         employees
// @Security     Bearer
// @Accept       json,mpfd,x-www-form-urlencoded
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	employeeID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	form, err := readForm(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, employeeID, form)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := requestIdentity(c)
	if err != nil {
		return writeError(c, err)
	}
	employeeID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id, employeeID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleado eliminado", ID: employeeID})
}
