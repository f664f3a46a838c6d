package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
)

func TestEmployeeCreate_ManagerQuedaComoManager(t *testing.T) {
	e := newEnv(t)

	out, err := e.employees.Create(context.Background(), manager, employeeForm("Tomas", "tomas@acme.in", "Otro Manager"))
	require.NoError(t, err)

	assert.Equal(t, manager.FullName, out.ManagerName, "un manager no puede asignar empleados a otro manager")
	assert.Equal(t, "+91", out.MobileCountryCode)
}

func TestEmployeeCreate_AdminEligeManager(t *testing.T) {
	e := newEnv(t)

	out, err := e.employees.Create(context.Background(), admin, employeeForm("Tomas", "tomas@acme.in", "Otro Manager"))
	require.NoError(t, err)

	assert.Equal(t, "Otro Manager", out.ManagerName)
}

func TestEmployeeCreate_EmpleadoNoPuedeCrear(t *testing.T) {
	e := newEnv(t)

	_, err := e.employees.Create(context.Background(), employee, employeeForm("Tomas", "tomas@acme.in", ""))

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, e.db.employees)
}

func TestEmployeeCreate_TelefonosInvalidos(t *testing.T) {
	e := newEnv(t)
	form := employeeForm("Tomas", "tomas@acme.in", "")
	form[dto.FieldWhatsAppNumber] = "90000-00002"

	_, err := e.employees.Create(context.Background(), admin, form)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{dto.FieldWhatsAppNumber}, ve.Fields)
}

func TestEmployeeList_ManagerSoloVeSusEmpleados(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	mine, err := e.employees.Create(ctx, admin, employeeForm("Tomas", "tomas@acme.in", manager.FullName))
	require.NoError(t, err)
	_, err = e.employees.Create(ctx, admin, employeeForm("Bea", "bea@beta.in", manager2.FullName))
	require.NoError(t, err)

	out, err := e.employees.List(ctx, manager, dto.ListRequest{})
	require.NoError(t, err)

	require.Len(t, out.Employees, 1)
	assert.Equal(t, mine.ID, out.Employees[0].ID)
	assert.Equal(t, 1, out.Pagination.TotalCount)

	all, err := e.employees.List(ctx, distUser, dto.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Employees, 2, "distributor ve todos los empleados")
}

func TestEmployeeList_EmpleadoSoloSuRegistro(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.employees.Create(ctx, admin, employeeForm(employee.FullName, employee.Email, manager.FullName))
	require.NoError(t, err)
	_, err = e.employees.Create(ctx, admin, employeeForm("Bea", "bea@beta.in", manager.FullName))
	require.NoError(t, err)

	out, err := e.employees.List(ctx, employee, dto.ListRequest{})
	require.NoError(t, err)

	require.Len(t, out.Employees, 1)
	assert.Equal(t, employee.Email, out.Employees[0].Email)
}

func TestEmployeeUpdate_AutoservicioIgnoraCamposRestringidos(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	own, err := e.employees.Create(ctx, admin, employeeForm(employee.FullName, employee.Email, manager.FullName))
	require.NoError(t, err)

	out, err := e.employees.Update(ctx, employee, own.ID, dto.Form{
		dto.FieldAddress:      "Av. Nueva 42",
		dto.FieldMobileNumber: "9111111111",
		dto.FieldEmployeeType: "supervisor",
		dto.FieldManagerName:  "Nadie",
	})
	require.NoError(t, err)

	assert.Equal(t, "Av. Nueva 42", out.Address)
	assert.Equal(t, "9111111111", out.MobileNumber)
	assert.Equal(t, "tecnico", out.EmployeeType, "employee_type no es de autoservicio")
	assert.Equal(t, manager.FullName, out.ManagerName)
	assert.Equal(t, "9000000002", out.WhatsAppNumber, "lo no enviado se conserva")
}

func TestEmployeeUpdate_EmpleadoNoModificaAOtro(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	other, err := e.employees.Create(ctx, admin, employeeForm("Bea", "bea@acme.in", manager.FullName))
	require.NoError(t, err)

	_, err = e.employees.Update(ctx, employee, other.ID, dto.Form{dto.FieldAddress: "x"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Calle 1", e.db.employees[other.ID].Address)
}

func TestEmployeeUpdate_ReemplazoCompletoExigeRequeridos(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	emp, err := e.employees.Create(ctx, admin, employeeForm("Tomas", "tomas@acme.in", manager.FullName))
	require.NoError(t, err)

	_, err = e.employees.Update(ctx, admin, emp.ID, dto.Form{dto.FieldAddress: "solo dirección"})

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{
		dto.FieldEmployeeName, dto.FieldMobileNumber, dto.FieldWhatsAppNumber, dto.FieldEmail, dto.FieldEmployeeType,
	}, ve.Fields)
}

func TestEmployeeUpdate_ManagerAjenoEsUnauthorized(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	emp, err := e.employees.Create(ctx, admin, employeeForm("Tomas", "tomas@acme.in", manager.FullName))
	require.NoError(t, err)

	_, err = e.employees.Update(ctx, manager2, emp.ID, employeeForm("Tomas", "tomas@acme.in", ""))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := e.employees.Update(ctx, manager, emp.ID, employeeForm("Tomás", "tomas@acme.in", ""))
	require.NoError(t, err)
	assert.Equal(t, "Tomás", out.Name)
	assert.Equal(t, manager.FullName, out.ManagerName)
}

func TestEmployeeDelete_PorRol(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	own, err := e.employees.Create(ctx, admin, employeeForm(employee.FullName, employee.Email, manager.FullName))
	require.NoError(t, err)

	assert.ErrorIs(t, e.employees.Delete(ctx, employee, own.ID), domain.ErrUnauthorized, "un empleado nunca borra")
	assert.ErrorIs(t, e.employees.Delete(ctx, manager2, own.ID), domain.ErrUnauthorized)
	assert.ErrorIs(t, e.employees.Delete(ctx, manager, 404), domain.ErrNotFound)

	require.NoError(t, e.employees.Delete(ctx, manager, own.ID))
	assert.NotContains(t, e.db.employees, own.ID)
}

func TestEmployeeDropdowns(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := employeeForm("Tomas", "tomas@acme.in", "")
	b := employeeForm("Bea", "bea@acme.in", "")
	b[dto.FieldCategory] = "planta"
	for _, f := range []dto.Form{a, b} {
		_, err := e.employees.Create(ctx, admin, f)
		require.NoError(t, err)
	}

	cats, err := e.employees.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"campo", "planta"}, cats.Categories)

	managers, err := e.employees.Managers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{manager.FullName, manager2.FullName}, managers.Managers)
}
