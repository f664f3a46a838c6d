package usecase_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/usecase"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/infrastructure/storage"
)

var (
	admin      = entity.Identity{UserID: 1, Role: entity.RoleAdmin, FullName: "Ana Admin", Email: "ana@coolant.in"}
	manager    = entity.Identity{UserID: 2, Role: entity.RoleManager, FullName: "Mara Manager", Email: "mara@acme.in", Company: "ACME"}
	distUser   = entity.Identity{UserID: 3, Role: entity.RoleDistributor, FullName: "Dario Dist", Email: "dario@acme.in", Company: "ACME"}
	employee   = entity.Identity{UserID: 4, Role: entity.RoleEmployee, FullName: "Eli Empleado", Email: "eli@acme.in", Company: "ACME"}
	clientUser = entity.Identity{UserID: 5, Role: entity.RoleClient, FullName: "Carla Cliente", Email: "carla@taller.in", Company: "27CLIENT"}
	manager2   = entity.Identity{UserID: 6, Role: entity.RoleManager, FullName: "Otro Manager", Email: "otro@beta.in", Company: "BETA"}
)

type env struct {
	db           *memDB
	tx           *fakeTx
	store        *storage.AttachmentStore
	qr           *fakeQR
	distributors *usecase.DistributorUseCase
	clients      *usecase.ClientUseCase
	employees    *usecase.EmployeeUseCase
	readings     *usecase.ReadingUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := newMemDB()
	for _, id := range []entity.Identity{admin, manager, distUser, employee, clientUser, manager2} {
		db.users[id.UserID] = &entity.User{
			ID: id.UserID, FullName: id.FullName, Email: id.Email, Role: id.Role.String(), Company: id.Company,
		}
	}
	db.machines = []*entity.Machine{{ID: 7, Name: "CNC-01"}, {ID: 8, Name: "Torno-02"}}

	e := &env{db: db, tx: &fakeTx{db: db}, store: newStore(t), qr: &fakeQR{}}
	log := zerolog.Nop()
	e.distributors = usecase.NewDistributorUseCase(distributorRepo{db}, e.tx, e.store, e.qr, usecase.DefaultPaging, log)
	e.clients = usecase.NewClientUseCase(clientRepo{db}, e.tx, e.store, usecase.DefaultPaging, log)
	e.employees = usecase.NewEmployeeUseCase(employeeRepo{db}, userRepo{db}, e.tx, usecase.DefaultPaging, log)
	e.readings = usecase.NewReadingUseCase(readingRepo{db}, machineRepo{db}, e.tx, log)
	return e
}

func distributorForm(name string) dto.Form {
	return dto.Form{
		dto.FieldDistributorName:      name,
		dto.FieldCity:                 "Pune",
		dto.FieldAddress:              "MIDC Bhosari",
		dto.FieldPrimaryContactPerson: "Ravi",
		dto.FieldPrimaryMobileNumber:  "9876543210",
		dto.FieldEmailID:              "ventas@" + name + ".in",
		dto.FieldGSTNumber:            "27DIST" + name,
		dto.FieldDistributorCategory:  "gold",
		dto.FieldWhatsAppCommNumber:   "9876543211",
	}
}

func clientForm(name, gst string) dto.Form {
	return dto.Form{
		dto.FieldClientName:           name,
		dto.FieldCity:                 "Nashik",
		dto.FieldAddress:              "Satpur",
		dto.FieldPrimaryContactPerson: "Suresh",
		dto.FieldPrimaryMobileNumber:  "9123456789",
		dto.FieldEmail:                "compras@" + name + ".in",
		dto.FieldGSTNumber:            gst,
		dto.FieldClientCategory:       "automotriz",
	}
}

func employeeForm(name, email, managerName string) dto.Form {
	return dto.Form{
		dto.FieldEmployeeName:   name,
		dto.FieldAddress:        "Calle 1",
		dto.FieldMobileNumber:   "9000000001",
		dto.FieldWhatsAppNumber: "9000000002",
		dto.FieldEmail:          email,
		dto.FieldEmployeeType:   "tecnico",
		dto.FieldManagerName:    managerName,
		dto.FieldCategory:       "campo",
	}
}
