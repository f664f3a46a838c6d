package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

var employeeColumns = columnMap{
	entity.FieldEmail:       "email",
	entity.FieldManagerName: "COALESCE(manager_name, '')",
	entity.FieldCategory:    "COALESCE(category, '')",
}

const employeeSelect = `id, employee_name, address,
	mobile_country_code, mobile_number, COALESCE(whatsapp_country_code, ''), COALESCE(whatsapp_number, ''),
	email, employee_type, COALESCE(manager_name, ''), COALESCE(category, '')`

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL (tabla employee_details).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el repositorio. q puede ser el pool o una tx.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create inserta el empleado y asigna e.ID.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employee_details (
			employee_name, address, mobile_number, mobile_country_code,
			whatsapp_number, whatsapp_country_code, email, employee_type, manager_name, category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.Name, e.Address, e.Mobile.Number, e.Mobile.CountryCode,
		nullIfEmpty(e.WhatsApp.Number), nullIfEmpty(e.WhatsApp.CountryCode),
		e.Email, e.EmployeeType, nullIfEmpty(e.ManagerName), nullIfEmpty(e.Category),
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.Persistence("insert employee", err)
	}
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeSelect + ` FROM employee_details WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence("get employee", err)
	}
	return e, nil
}

// List aplica búsqueda, categoría y visibilidad; devuelve la página y el total filtrado.
func (r *EmployeeRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Employee, int, error) {
	vis, err := predicateSQL(q.Visibility, employeeColumns)
	if err != nil {
		return nil, 0, err
	}
	where := sq.And{vis}
	if q.Search != "" {
		where = append(where, searchAny(q.Search, "employee_name", "email", "mobile_number"))
	}
	if q.Category != "" {
		where = append(where, sq.Eq{"category": q.Category})
	}

	countSQL, args, err := psql.Select("COUNT(*)").From("employee_details").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count employees: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, domain.Persistence("count employees", err)
	}

	listSQL, args, err := psql.Select(employeeSelect).From("employee_details").Where(where).
		OrderBy("id").
		Limit(uint64(q.Limit)).Offset(uint64(q.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list employees: %w", err)
	}
	rows, err := r.q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, domain.Persistence("list employees", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0, q.Limit)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, domain.Persistence("scan employee", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.Persistence("list employees", err)
	}
	return list, total, nil
}

// Categories categorías distintas no nulas.
func (r *EmployeeRepo) Categories(ctx context.Context) ([]string, error) {
	out, err := distinctStrings(ctx, r.q,
		`SELECT DISTINCT category FROM employee_details WHERE category IS NOT NULL ORDER BY category`)
	if err != nil {
		return nil, domain.Persistence("employee categories", err)
	}
	return out, nil
}

// Update reescribe todos los campos del empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employee_details SET
			employee_name = $2, address = $3, mobile_number = $4, mobile_country_code = $5,
			whatsapp_number = $6, whatsapp_country_code = $7, email = $8,
			employee_type = $9, manager_name = $10, category = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Address, e.Mobile.Number, e.Mobile.CountryCode,
		nullIfEmpty(e.WhatsApp.Number), nullIfEmpty(e.WhatsApp.CountryCode), e.Email,
		e.EmployeeType, nullIfEmpty(e.ManagerName), nullIfEmpty(e.Category),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.Persistence("update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el empleado. ErrNotFound si no existía.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM employee_details WHERE id = $1`, id)
	if err != nil {
		return domain.Persistence("delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Address,
		&e.Mobile.CountryCode, &e.Mobile.Number, &e.WhatsApp.CountryCode, &e.WhatsApp.Number,
		&e.Email, &e.EmployeeType, &e.ManagerName, &e.Category,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
