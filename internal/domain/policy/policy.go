// Package policy concentra las reglas de autorización y visibilidad por rol.
// Es puro: no conoce HTTP ni la base de datos. Los handlers y casos de uso solo
// preguntan CanPerform y VisibilityFilter; ninguna regla de rol vive fuera de aquí.
package policy

import "github.com/jhoicas/coolant-flow-api/internal/domain/entity"

// Action operación que se intenta sobre un recurso.
type Action int

const (
	ActionRead Action = iota + 1
	ActionCreate
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}

// Resource tipo de entidad protegida.
type Resource int

const (
	ResourceDistributor Resource = iota + 1
	ResourceClient
	ResourceEmployee
	ResourceReading
)

func (r Resource) String() string {
	switch r {
	case ResourceDistributor:
		return "distributor"
	case ResourceClient:
		return "client"
	case ResourceEmployee:
		return "employee"
	case ResourceReading:
		return "reading"
	}
	return "unknown"
}

// EmployeeSelfFields campos que un empleado puede modificar de su propio registro.
var EmployeeSelfFields = []string{
	"address", "mobile_number", "mobile_country_code", "whatsapp_number", "whatsapp_country_code",
}

// CanPerform decide si identity puede ejecutar action sobre el recurso.
// snap es la entidad afectada; es nil para ActionCreate.
func CanPerform(id entity.Identity, action Action, res Resource, snap entity.Snapshot) bool {
	if id.UserID == 0 && id.Role == entity.RoleUnknown {
		return false
	}
	if action == ActionRead {
		if res == ResourceReading {
			return true
		}
		return snap != nil && VisibilityFilter(id, res).Match(snap)
	}
	switch res {
	case ResourceDistributor:
		return canDistributor(id, action, snap)
	case ResourceClient:
		return canClient(id, action, snap)
	case ResourceEmployee:
		return canEmployee(id, action, snap)
	case ResourceReading:
		// Acceso plano: cualquier usuario autenticado.
		return true
	}
	return false
}

func canDistributor(id entity.Identity, action Action, snap entity.Snapshot) bool {
	switch action {
	case ActionCreate:
		return true
	case ActionUpdate:
		return id.Role == entity.RoleAdmin || matches(snap, entity.FieldCreatedBy, id.UserID)
	case ActionDelete:
		return id.Role == entity.RoleAdmin
	}
	return false
}

func canClient(id entity.Identity, action Action, snap entity.Snapshot) bool {
	switch action {
	case ActionCreate:
		return id.Role.In(entity.RoleAdmin, entity.RoleManager, entity.RoleDistributor, entity.RoleEmployee)
	case ActionUpdate:
		if id.Role == entity.RoleClient {
			return matches(snap, entity.FieldTaxID, id.Company)
		}
		// Concesión amplia: los demás roles pueden intentar la modificación sin chequeo de ownership.
		return true
	case ActionDelete:
		return id.Role.In(entity.RoleAdmin, entity.RoleManager, entity.RoleDistributor)
	}
	return false
}

func canEmployee(id entity.Identity, action Action, snap entity.Snapshot) bool {
	switch action {
	case ActionCreate:
		return id.Role.In(entity.RoleAdmin, entity.RoleDistributor, entity.RoleManager)
	case ActionUpdate:
		switch id.Role {
		case entity.RoleEmployee:
			return matches(snap, entity.FieldEmail, id.Email)
		case entity.RoleManager:
			return matches(snap, entity.FieldManagerName, id.FullName)
		case entity.RoleAdmin, entity.RoleDistributor:
			return true
		}
		return false
	case ActionDelete:
		switch id.Role {
		case entity.RoleManager:
			return matches(snap, entity.FieldManagerName, id.FullName)
		case entity.RoleAdmin, entity.RoleDistributor:
			return true
		}
		return false
	}
	return false
}

// UpdatableFields devuelve la lista de campos que identity puede modificar en res.
// restricted=false significa sin restricción de campos.
func UpdatableFields(id entity.Identity, res Resource) (fields []string, restricted bool) {
	if res == ResourceEmployee && id.Role == entity.RoleEmployee {
		return EmployeeSelfFields, true
	}
	return nil, false
}

// VisibilityFilter devuelve el predicado que limita qué filas de res ve identity.
// Los buckets se evalúan en orden, gana el primero que coincide.
func VisibilityFilter(id entity.Identity, res Resource) Predicate {
	switch res {
	case ResourceEmployee:
		switch {
		case id.Role == entity.RoleAdmin:
			return All{}
		case id.Role == entity.RoleManager:
			return Eq{Field: entity.FieldManagerName, Value: id.FullName}
		case id.Role == entity.RoleEmployee:
			return Eq{Field: entity.FieldEmail, Value: id.Email}
		}
		return All{}
	case ResourceDistributor:
		switch {
		case id.Role == entity.RoleAdmin:
			return All{}
		case id.Role == entity.RoleManager:
			return Eq{Field: entity.FieldCreatedBy, Value: id.UserID}
		case id.Role == entity.RoleEmployee:
			return Eq{Field: entity.FieldEmail, Value: id.Email}
		}
		return All{}
	case ResourceClient:
		return clientVisibility(id)
	case ResourceReading:
		return All{}
	}
	return None{}
}

func clientVisibility(id entity.Identity) Predicate {
	switch {
	case id.Role.In(entity.RoleAdmin, entity.RoleManufacturer):
		return All{}
	case id.Role.In(entity.RoleManager, entity.RoleDistributor):
		return Or{
			Eq{Field: entity.FieldCreatedBy, Value: id.UserID},
			Eq{Field: entity.FieldDistributorOwner, Value: id.UserID},
		}
	case id.Role == entity.RoleEmployee:
		return Or{
			Eq{Field: entity.FieldCreatedBy, Value: id.UserID},
			And{
				In{Field: entity.FieldDistributorOwnerRole, Values: []any{
					entity.RoleManager.String(), entity.RoleDistributor.String(),
				}},
				Eq{Field: entity.FieldDistributorOwnerCompany, Value: id.Company},
			},
		}
	case id.Role == entity.RoleClient:
		return Eq{Field: entity.FieldTaxID, Value: id.Company}
	}
	return None{}
}

func matches(snap entity.Snapshot, f entity.Field, want any) bool {
	if snap == nil {
		return false
	}
	return Eq{Field: f, Value: want}.Match(snap)
}
