package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

func toSQL(t *testing.T, p policy.Predicate, cols columnMap) (string, []interface{}) {
	t.Helper()
	s, err := predicateSQL(p, cols)
	require.NoError(t, err)
	sql, args, err := s.ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestPredicateSQL_AllYNone(t *testing.T) {
	sql, args := toSQL(t, policy.All{}, clientColumns)
	assert.Equal(t, "TRUE", sql)
	assert.Empty(t, args)

	sql, _ = toSQL(t, nil, clientColumns)
	assert.Equal(t, "TRUE", sql, "sin predicado no se filtra")

	sql, _ = toSQL(t, policy.None{}, clientColumns)
	assert.Equal(t, "FALSE", sql)

	sql, _ = toSQL(t, policy.In{Field: entity.FieldTaxID}, clientColumns)
	assert.Equal(t, "FALSE", sql, "IN vacío no acepta filas")
}

func TestPredicateSQL_VisibilidadManagerSobreClientes(t *testing.T) {
	id := entity.Identity{UserID: 2, Role: entity.RoleManager}
	sql, args := toSQL(t, policy.VisibilityFilter(id, policy.ResourceClient), clientColumns)

	assert.Equal(t, "(c.created_by = ? OR d.created_by = ?)", sql)
	assert.Equal(t, []interface{}{int64(2), int64(2)}, args)
}

func TestPredicateSQL_VisibilidadEmployeeSobreClientes(t *testing.T) {
	id := entity.Identity{UserID: 4, Role: entity.RoleEmployee, Company: "Coolant SA"}
	sql, args := toSQL(t, policy.VisibilityFilter(id, policy.ResourceClient), clientColumns)

	assert.Equal(t,
		"(c.created_by = ? OR (LOWER(TRIM(u.role)) IN (?,?) AND COALESCE(u.company, '') = ?))", sql)
	assert.Equal(t, []interface{}{int64(4), "manager", "distributor", "Coolant SA"}, args)
}

func TestPredicateSQL_VisibilidadEmpleados(t *testing.T) {
	id := entity.Identity{UserID: 2, Role: entity.RoleManager, FullName: "Marta Gómez"}
	sql, args := toSQL(t, policy.VisibilityFilter(id, policy.ResourceEmployee), employeeColumns)

	assert.Equal(t, "COALESCE(manager_name, '') = ?", sql)
	assert.Equal(t, []interface{}{"Marta Gómez"}, args)
}

func TestPredicateSQL_CampoSinColumna(t *testing.T) {
	_, err := predicateSQL(policy.Eq{Field: entity.FieldManagerName, Value: "x"}, distributorColumns)
	assert.Error(t, err)

	_, err = predicateSQL(policy.Or{policy.All{}, policy.Eq{Field: entity.FieldDistributorOwner, Value: int64(1)}}, employeeColumns)
	assert.Error(t, err, "el error se propaga desde un subpredicado")
}

func TestDistributorWhere_ComponeVisibilidadBusquedaYFiltros(t *testing.T) {
	where, err := distributorWhere(repository.ListQuery{
		Visibility: policy.Eq{Field: entity.FieldCreatedBy, Value: int64(2)},
		Search:     "50%_off",
		Category:   "gold",
		City:       "Pune",
	})
	require.NoError(t, err)

	sql, args, err := psql.Select("d.distributor_id").From("distributor d").Where(where).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT d.distributor_id FROM distributor d WHERE (d.created_by = $1 AND "+
			"(d.distributor_name ILIKE $2 OR d.city ILIKE $3 OR d.gst_number ILIKE $4) AND "+
			"d.distributor_category = $5 AND d.city = $6)", sql)
	assert.Equal(t, []interface{}{
		int64(2), `%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`, "gold", "Pune",
	}, args)
}

func TestLikePattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
	assert.Equal(t, "%acme%", likePattern("acme"))
}
