package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

var employeeRequired = []string{
	dto.FieldEmployeeName, dto.FieldAddress, dto.FieldMobileNumber,
	dto.FieldWhatsAppNumber, dto.FieldEmail, dto.FieldEmployeeType,
}

var employeePhones = []string{dto.FieldMobileNumber, dto.FieldWhatsAppNumber}

// EmployeeUseCase ciclo de vida de empleados.
type EmployeeUseCase struct {
	repo   repository.EmployeeRepository
	users  repository.UserRepository
	tx     ports.TxRunner
	paging Paging
	log    zerolog.Logger
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	users repository.UserRepository,
	tx ports.TxRunner,
	paging Paging,
	log zerolog.Logger,
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, users: users, tx: tx, paging: paging, log: log}
}

// Create admin, distributor o manager. Un manager siempre queda como manager_name del nuevo empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, id entity.Identity, form dto.Form) (*dto.EmployeeResponse, error) {
	if err := requireFields(form, employeeRequired...); err != nil {
		return nil, err
	}
	if err := validatePhones(form, employeePhones...); err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionCreate, policy.ResourceEmployee, nil); err != nil {
		return nil, err
	}

	e := &entity.Employee{
		Name:         form.Get(dto.FieldEmployeeName),
		Address:      form.Get(dto.FieldAddress),
		Mobile:       phoneOf(form, dto.FieldMobileCountryCode, dto.FieldMobileNumber),
		WhatsApp:     phoneOf(form, dto.FieldWhatsAppCountryCode, dto.FieldWhatsAppNumber),
		Email:        form.Get(dto.FieldEmail),
		EmployeeType: form.Get(dto.FieldEmployeeType),
		ManagerName:  form.Get(dto.FieldManagerName),
		Category:     form.Get(dto.FieldCategory),
	}
	uc.pinManager(id, e)

	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Employees.Create(ctx, e)
	}); err != nil {
		return nil, persistErr("create employee", err)
	}
	uc.log.Info().Int64("employee_id", e.ID).Int64("user_id", id.UserID).Msg("empleado creado")
	out := toEmployeeResponse(e)
	return &out, nil
}

// Get devuelve el empleado si es visible para id.
func (uc *EmployeeUseCase) Get(ctx context.Context, id entity.Identity, employeeID int64) (*dto.EmployeeResponse, error) {
	e, err := uc.load(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionRead, policy.ResourceEmployee, e); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// List página filtrada por búsqueda (nombre, email, móvil), categoría y visibilidad del rol.
func (uc *EmployeeUseCase) List(ctx context.Context, id entity.Identity, req dto.ListRequest) (*dto.EmployeeListResponse, error) {
	page, size, offset := uc.paging.normalize(req.PageRequest)
	list, total, err := uc.repo.List(ctx, repository.ListQuery{
		Search:     req.Search,
		Category:   req.Category,
		Visibility: policy.VisibilityFilter(id, policy.ResourceEmployee),
		Limit:      size,
		Offset:     offset,
	})
	if err != nil {
		return nil, persistErr("list employees", err)
	}
	out := &dto.EmployeeListResponse{
		Employees:  make([]dto.EmployeeResponse, 0, len(list)),
		Pagination: dto.NewPagination(total, page, size),
	}
	for _, e := range list {
		out.Employees = append(out.Employees, toEmployeeResponse(e))
	}
	return out, nil
}

// Categories categorías distintas (globales).
func (uc *EmployeeUseCase) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	cats, err := uc.repo.Categories(ctx)
	if err != nil {
		return nil, persistErr("employee categories", err)
	}
	return &dto.CategoriesResponse{Categories: cats}, nil
}

// Managers nombres de los usuarios con rol manager.
func (uc *EmployeeUseCase) Managers(ctx context.Context) (*dto.ManagersResponse, error) {
	names, err := uc.users.FullNamesByRole(ctx, entity.RoleManager.String())
	if err != nil {
		return nil, persistErr("managers", err)
	}
	return &dto.ManagersResponse{Managers: names}, nil
}

// Update para rol employee aplica solo los campos de autoservicio e ignora el resto;
// para los demás roles reemplaza el registro completo.
func (uc *EmployeeUseCase) Update(ctx context.Context, id entity.Identity, employeeID int64, form dto.Form) (*dto.EmployeeResponse, error) {
	allowed, restricted := policy.UpdatableFields(id, policy.ResourceEmployee)
	if restricted {
		form = form.Only(allowed...)
		if err := requireNotBlank(form, employeeRequired...); err != nil {
			return nil, err
		}
	} else if err := requireFields(form, employeeRequired...); err != nil {
		return nil, err
	}
	if err := validatePhones(form, employeePhones...); err != nil {
		return nil, err
	}
	e, err := uc.load(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionUpdate, policy.ResourceEmployee, e); err != nil {
		return nil, err
	}

	if restricted {
		mergeString(&e.Address, form, dto.FieldAddress)
		mergePhone(&e.Mobile, form, dto.FieldMobileCountryCode, dto.FieldMobileNumber)
		mergePhone(&e.WhatsApp, form, dto.FieldWhatsAppCountryCode, dto.FieldWhatsAppNumber)
	} else {
		e.Name = form.Get(dto.FieldEmployeeName)
		e.Address = form.Get(dto.FieldAddress)
		e.Mobile = phoneOf(form, dto.FieldMobileCountryCode, dto.FieldMobileNumber)
		e.WhatsApp = phoneOf(form, dto.FieldWhatsAppCountryCode, dto.FieldWhatsAppNumber)
		e.Email = form.Get(dto.FieldEmail)
		e.EmployeeType = form.Get(dto.FieldEmployeeType)
		e.ManagerName = form.Get(dto.FieldManagerName)
		e.Category = form.Get(dto.FieldCategory)
		uc.pinManager(id, e)
	}

	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Employees.Update(ctx, e)
	}); err != nil {
		return nil, persistErr("update employee", err)
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// Delete admin y distributor sin restricción; manager solo sus empleados; employee nunca.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id entity.Identity, employeeID int64) error {
	e, err := uc.load(ctx, employeeID)
	if err != nil {
		return err
	}
	if err := authorize(id, policy.ActionDelete, policy.ResourceEmployee, e); err != nil {
		return err
	}
	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Employees.Delete(ctx, e.ID)
	}); err != nil {
		return persistErr("delete employee", err)
	}
	uc.log.Info().Int64("employee_id", e.ID).Int64("user_id", id.UserID).Msg("empleado eliminado")
	return nil
}

// pinManager un manager solo puede asignarse a sí mismo como manager_name.
func (uc *EmployeeUseCase) pinManager(id entity.Identity, e *entity.Employee) {
	if id.Role == entity.RoleManager && e.ManagerName != id.FullName {
		if e.ManagerName != "" {
			uc.log.Debug().Str("requested", e.ManagerName).Str("manager", id.FullName).Msg("manager_name forzado al manager del request")
		}
		e.ManagerName = id.FullName
	}
}

func (uc *EmployeeUseCase) load(ctx context.Context, employeeID int64) (*entity.Employee, error) {
	e, err := uc.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, persistErr("get employee", err)
	}
	if e == nil {
		return nil, notFoundAs(policy.ResourceEmployee, employeeID)
	}
	return e, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Address:             e.Address,
		MobileNumber:        e.Mobile.Number,
		MobileCountryCode:   e.Mobile.CountryCode,
		WhatsAppNumber:      e.WhatsApp.Number,
		WhatsAppCountryCode: e.WhatsApp.CountryCode,
		Email:               e.Email,
		EmployeeType:        e.EmployeeType,
		ManagerName:         e.ManagerName,
		Category:            e.Category,
	}
}
