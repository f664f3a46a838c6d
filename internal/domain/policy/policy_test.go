package policy_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var (
	admin    = entity.Identity{UserID: 1, Role: entity.RoleAdmin, FullName: "Root", Email: "root@x.com"}
	manager  = entity.Identity{UserID: 2, Role: entity.RoleManager, FullName: "Marta Gómez", Email: "marta@x.com", Company: "Coolant SA"}
	distUser = entity.Identity{UserID: 3, Role: entity.RoleDistributor, FullName: "Diego", Email: "diego@x.com", Company: "Coolant SA"}
	employee = entity.Identity{UserID: 4, Role: entity.RoleEmployee, FullName: "Eva", Email: "eva@x.com", Company: "Coolant SA"}
	client   = entity.Identity{UserID: 5, Role: entity.RoleClient, FullName: "Carlos", Email: "carlos@x.com", Company: "GST-CLIENT-1"}
	manuf    = entity.Identity{UserID: 6, Role: entity.RoleManufacturer, FullName: "Fábrica"}
	stranger = entity.Identity{UserID: 7, Role: entity.RoleUnknown, FullName: "Nadie"}
)

func ownedClient(createdBy int64, owner *entity.DistributorOwner, taxID string) *entity.Client {
	return &entity.Client{ID: 100, CreatedBy: createdBy, Owner: owner, TaxID: taxID}
}

// ──────────────────────────────────────────────────────────────────────────────
// Distributor
// ──────────────────────────────────────────────────────────────────────────────

func TestDistributor_CrearCualquierRolAutenticado(t *testing.T) {
	for _, id := range []entity.Identity{admin, manager, distUser, employee, client, manuf, stranger} {
		assert.True(t, policy.CanPerform(id, policy.ActionCreate, policy.ResourceDistributor, nil), id.Role.String())
	}
}

func TestDistributor_IdentidadVaciaNoPuedeNada(t *testing.T) {
	assert.False(t, policy.CanPerform(entity.Identity{}, policy.ActionCreate, policy.ResourceDistributor, nil))
}

func TestDistributor_ActualizarSoloCreadorOAdmin(t *testing.T) {
	d := &entity.Distributor{ID: 10, CreatedBy: manager.UserID}

	assert.True(t, policy.CanPerform(manager, policy.ActionUpdate, policy.ResourceDistributor, d))
	assert.True(t, policy.CanPerform(admin, policy.ActionUpdate, policy.ResourceDistributor, d))
	assert.False(t, policy.CanPerform(distUser, policy.ActionUpdate, policy.ResourceDistributor, d))
	assert.False(t, policy.CanPerform(employee, policy.ActionUpdate, policy.ResourceDistributor, d))
}

func TestDistributor_EliminarSoloAdmin(t *testing.T) {
	d := &entity.Distributor{ID: 10, CreatedBy: manager.UserID}

	assert.True(t, policy.CanPerform(admin, policy.ActionDelete, policy.ResourceDistributor, d))
	assert.False(t, policy.CanPerform(manager, policy.ActionDelete, policy.ResourceDistributor, d),
		"el creador no puede eliminar su propio distribuidor")
}

func TestDistributor_Visibilidad(t *testing.T) {
	own := &entity.Distributor{CreatedBy: manager.UserID, Email: "otro@x.com"}
	other := &entity.Distributor{CreatedBy: 99, Email: employee.Email}

	mgr := policy.VisibilityFilter(manager, policy.ResourceDistributor)
	assert.True(t, mgr.Match(own))
	assert.False(t, mgr.Match(other))

	emp := policy.VisibilityFilter(employee, policy.ResourceDistributor)
	assert.False(t, emp.Match(own))
	assert.True(t, emp.Match(other), "employee ve los distribuidores con su email")

	assert.Equal(t, policy.All{}, policy.VisibilityFilter(admin, policy.ResourceDistributor))
	assert.Equal(t, policy.All{}, policy.VisibilityFilter(client, policy.ResourceDistributor))
}

// ──────────────────────────────────────────────────────────────────────────────
// Client
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_CrearPorRol(t *testing.T) {
	allowed := map[entity.Role]bool{
		entity.RoleAdmin: true, entity.RoleManager: true, entity.RoleDistributor: true, entity.RoleEmployee: true,
	}
	for _, id := range []entity.Identity{admin, manager, distUser, employee, client, manuf, stranger} {
		assert.Equal(t, allowed[id.Role], policy.CanPerform(id, policy.ActionCreate, policy.ResourceClient, nil), id.Role.String())
	}
}

func TestClient_EliminarPorRol(t *testing.T) {
	c := ownedClient(99, nil, "GST-X")
	assert.True(t, policy.CanPerform(admin, policy.ActionDelete, policy.ResourceClient, c))
	assert.True(t, policy.CanPerform(manager, policy.ActionDelete, policy.ResourceClient, c))
	assert.True(t, policy.CanPerform(distUser, policy.ActionDelete, policy.ResourceClient, c))
	assert.False(t, policy.CanPerform(employee, policy.ActionDelete, policy.ResourceClient, c))
	assert.False(t, policy.CanPerform(client, policy.ActionDelete, policy.ResourceClient, c))
}

func TestClient_ActualizarRolClientSoloSuGST(t *testing.T) {
	mine := ownedClient(99, nil, client.Company)
	theirs := ownedClient(99, nil, "GST-OTHER")

	assert.True(t, policy.CanPerform(client, policy.ActionUpdate, policy.ResourceClient, mine))
	assert.False(t, policy.CanPerform(client, policy.ActionUpdate, policy.ResourceClient, theirs))
	assert.True(t, policy.CanPerform(employee, policy.ActionUpdate, policy.ResourceClient, theirs),
		"los demás roles pueden intentar la modificación")
}

func TestClient_VisibilidadManager(t *testing.T) {
	p := policy.VisibilityFilter(manager, policy.ResourceClient)

	assert.True(t, p.Match(ownedClient(manager.UserID, nil, "")), "creado por el manager")
	assert.True(t, p.Match(ownedClient(99, &entity.DistributorOwner{UserID: manager.UserID}, "")),
		"atendido por un distribuidor del manager")
	assert.False(t, p.Match(ownedClient(99, &entity.DistributorOwner{UserID: 98}, "")))
	assert.False(t, p.Match(ownedClient(99, nil, "")), "sin distribuidor y creado por otro")
}

func TestClient_VisibilidadEmployee(t *testing.T) {
	p := policy.VisibilityFilter(employee, policy.ResourceClient)

	sameCompanyManager := &entity.DistributorOwner{UserID: 50, Role: "Manager", Company: employee.Company}
	sameCompanyAdmin := &entity.DistributorOwner{UserID: 51, Role: "admin", Company: employee.Company}
	otherCompany := &entity.DistributorOwner{UserID: 52, Role: "distributor", Company: "Otra SA"}

	assert.True(t, p.Match(ownedClient(employee.UserID, nil, "")))
	assert.True(t, p.Match(ownedClient(99, sameCompanyManager, "")), "rol del dueño sin importar mayúsculas")
	assert.False(t, p.Match(ownedClient(99, sameCompanyAdmin, "")), "dueño admin no cuenta")
	assert.False(t, p.Match(ownedClient(99, otherCompany, "")))
}

func TestClient_VisibilidadClientYOtros(t *testing.T) {
	assert.True(t, policy.VisibilityFilter(client, policy.ResourceClient).Match(ownedClient(99, nil, client.Company)))
	assert.False(t, policy.VisibilityFilter(client, policy.ResourceClient).Match(ownedClient(99, nil, "GST-OTHER")))
	assert.Equal(t, policy.All{}, policy.VisibilityFilter(manuf, policy.ResourceClient))
	assert.Equal(t, policy.None{}, policy.VisibilityFilter(stranger, policy.ResourceClient))
}

// ──────────────────────────────────────────────────────────────────────────────
// Employee
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployee_Crear(t *testing.T) {
	assert.True(t, policy.CanPerform(admin, policy.ActionCreate, policy.ResourceEmployee, nil))
	assert.True(t, policy.CanPerform(manager, policy.ActionCreate, policy.ResourceEmployee, nil))
	assert.True(t, policy.CanPerform(distUser, policy.ActionCreate, policy.ResourceEmployee, nil))
	assert.False(t, policy.CanPerform(employee, policy.ActionCreate, policy.ResourceEmployee, nil))
	assert.False(t, policy.CanPerform(client, policy.ActionCreate, policy.ResourceEmployee, nil))
}

func TestEmployee_ActualizarYEliminar(t *testing.T) {
	self := &entity.Employee{Email: employee.Email, ManagerName: manager.FullName}
	other := &entity.Employee{Email: "otro@x.com", ManagerName: "Otro Manager"}

	assert.True(t, policy.CanPerform(employee, policy.ActionUpdate, policy.ResourceEmployee, self))
	assert.False(t, policy.CanPerform(employee, policy.ActionUpdate, policy.ResourceEmployee, other))
	assert.False(t, policy.CanPerform(employee, policy.ActionDelete, policy.ResourceEmployee, self))

	assert.True(t, policy.CanPerform(manager, policy.ActionUpdate, policy.ResourceEmployee, self))
	assert.True(t, policy.CanPerform(manager, policy.ActionDelete, policy.ResourceEmployee, self))
	assert.False(t, policy.CanPerform(manager, policy.ActionDelete, policy.ResourceEmployee, other))

	assert.True(t, policy.CanPerform(distUser, policy.ActionDelete, policy.ResourceEmployee, other))
	assert.False(t, policy.CanPerform(client, policy.ActionUpdate, policy.ResourceEmployee, self))
}

func TestEmployee_CamposEditables(t *testing.T) {
	fields, restricted := policy.UpdatableFields(employee, policy.ResourceEmployee)
	assert.True(t, restricted)
	assert.ElementsMatch(t, policy.EmployeeSelfFields, fields)
	assert.NotContains(t, fields, "employee_type")

	_, restricted = policy.UpdatableFields(manager, policy.ResourceEmployee)
	assert.False(t, restricted)
	_, restricted = policy.UpdatableFields(employee, policy.ResourceClient)
	assert.False(t, restricted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reading
// ──────────────────────────────────────────────────────────────────────────────

func TestReading_AccesoPlano(t *testing.T) {
	r := &entity.Reading{RaisedBy: 99}
	for _, a := range []policy.Action{policy.ActionRead, policy.ActionCreate, policy.ActionUpdate, policy.ActionDelete} {
		assert.True(t, policy.CanPerform(client, a, policy.ResourceReading, r), a.String())
	}
	assert.Equal(t, policy.All{}, policy.VisibilityFilter(client, policy.ResourceReading))
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades sobre datos generados
// ──────────────────────────────────────────────────────────────────────────────

// Leer una entidad individual coincide siempre con el filtro del listado, y los roles
// acotados nunca ven filas fuera de su ámbito.
func TestPropiedad_LecturaCoincideConVisibilidad(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	roles := []string{"admin", "manager", "distributor", "employee", "client", "manufacturer", "supervisor"}
	companies := []string{"Coolant SA", "Otra SA", "GST-CLIENT-1", ""}
	names := []string{"Marta Gómez", "Eva", "Otro Manager", ""}

	identities := []entity.Identity{admin, manager, distUser, employee, client, manuf, stranger}
	for i := 0; i < 500; i++ {
		c := &entity.Client{
			CreatedBy: int64(rng.Intn(8)),
			TaxID:     companies[rng.Intn(len(companies))],
		}
		if rng.Intn(3) > 0 {
			c.Owner = &entity.DistributorOwner{
				UserID:  int64(rng.Intn(8)),
				Role:    roles[rng.Intn(len(roles))],
				Company: companies[rng.Intn(len(companies))],
			}
		}
		e := &entity.Employee{
			Email:       []string{employee.Email, "otro@x.com"}[rng.Intn(2)],
			ManagerName: names[rng.Intn(len(names))],
		}

		for _, id := range identities {
			msg := fmt.Sprintf("iter %d rol %s", i, id.Role)

			visibleClient := policy.VisibilityFilter(id, policy.ResourceClient).Match(c)
			assert.Equal(t, visibleClient, policy.CanPerform(id, policy.ActionRead, policy.ResourceClient, c), msg)
			if visibleClient && id.Role == entity.RoleClient {
				assert.Equal(t, id.Company, c.TaxID, msg)
			}
			if visibleClient && id.Role == entity.RoleManager {
				assert.True(t, c.CreatedBy == id.UserID || (c.Owner != nil && c.Owner.UserID == id.UserID), msg)
			}

			visibleEmployee := policy.VisibilityFilter(id, policy.ResourceEmployee).Match(e)
			assert.Equal(t, visibleEmployee, policy.CanPerform(id, policy.ActionRead, policy.ResourceEmployee, e), msg)
			if visibleEmployee && id.Role == entity.RoleManager {
				assert.Equal(t, id.FullName, e.ManagerName, msg)
			}
			if visibleEmployee && id.Role == entity.RoleEmployee {
				assert.Equal(t, id.Email, e.Email, msg)
			}
			// Quien puede modificar un empleado también puede verlo.
			if policy.CanPerform(id, policy.ActionUpdate, policy.ResourceEmployee, e) {
				assert.True(t, visibleEmployee, msg)
			}
		}
	}
}
