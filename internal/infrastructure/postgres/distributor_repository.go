package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

var _ repository.DistributorRepository = (*DistributorRepo)(nil)

var distributorColumns = columnMap{
	entity.FieldCreatedBy: "d.created_by",
	entity.FieldEmail:     "d.email_id",
	entity.FieldTaxID:     "d.gst_number",
	entity.FieldCategory:  "d.distributor_category",
	entity.FieldCity:      "d.city",
}

const distributorSelect = `d.distributor_id, d.distributor_name, d.city, d.address,
	d.primary_contact_person, d.primary_country_code, d.primary_mobile_number,
	COALESCE(d.secondary_contact_person, ''), COALESCE(d.secondary_country_code, ''), COALESCE(d.secondary_mobile_number, ''),
	COALESCE(d.whatsapp_country_code, ''), COALESCE(d.whatsapp_communication_number, ''),
	d.email_id, d.gst_number, d.distributor_category, COALESCE(d.distributor_logo, ''),
	d.created_by, d.created_at, d.updated_at`

// DistributorRepo implementación de DistributorRepository sobre PostgreSQL.
type DistributorRepo struct {
	q Querier
}

// NewDistributorRepository construye el repositorio. q puede ser el pool o una tx.
func NewDistributorRepository(q Querier) *DistributorRepo {
	return &DistributorRepo{q: q}
}

// Create inserta el distribuidor y asigna d.ID.
func (r *DistributorRepo) Create(ctx context.Context, d *entity.Distributor) error {
	query := `
		INSERT INTO distributor (
			distributor_name, city, address, primary_contact_person, primary_country_code, primary_mobile_number,
			secondary_contact_person, secondary_country_code, secondary_mobile_number,
			email_id, gst_number, distributor_category, whatsapp_country_code, whatsapp_communication_number,
			distributor_logo, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING distributor_id`
	err := r.q.QueryRow(ctx, query,
		d.Name, d.City, d.Address, d.Primary.Person, d.Primary.Phone.CountryCode, d.Primary.Phone.Number,
		nullIfEmpty(d.Secondary.Person), nullIfEmpty(d.Secondary.Phone.CountryCode), nullIfEmpty(d.Secondary.Phone.Number),
		d.Email, d.TaxID, d.Category, nullIfEmpty(d.WhatsApp.CountryCode), nullIfEmpty(d.WhatsApp.Number),
		nullIfEmpty(d.LogoRef), d.CreatedBy, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.Persistence("insert distributor", err)
	}
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *DistributorRepo) GetByID(ctx context.Context, id int64) (*entity.Distributor, error) {
	query := `SELECT ` + distributorSelect + ` FROM distributor d WHERE d.distributor_id = $1`
	d, err := scanDistributor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence("get distributor", err)
	}
	return d, nil
}

// List aplica búsqueda, filtros y visibilidad; devuelve la página y el total filtrado.
func (r *DistributorRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Distributor, int, error) {
	where, err := distributorWhere(q)
	if err != nil {
		return nil, 0, err
	}

	countSQL, args, err := psql.Select("COUNT(*)").From("distributor d").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count distributors: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, domain.Persistence("count distributors", err)
	}

	listSQL, args, err := psql.Select(distributorSelect).From("distributor d").Where(where).
		OrderBy("d.distributor_id").
		Limit(uint64(q.Limit)).Offset(uint64(q.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list distributors: %w", err)
	}
	rows, err := r.q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, domain.Persistence("list distributors", err)
	}
	defer rows.Close()
	list := make([]*entity.Distributor, 0, q.Limit)
	for rows.Next() {
		d, err := scanDistributor(rows)
		if err != nil {
			return nil, 0, domain.Persistence("scan distributor", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.Persistence("list distributors", err)
	}
	return list, total, nil
}

// Names devuelve id y nombre de los distribuidores visibles, ordenados por nombre (dropdown de clientes).
func (r *DistributorRepo) Names(ctx context.Context, visibility policy.Predicate) ([]*entity.Distributor, error) {
	vis, err := predicateSQL(visibility, distributorColumns)
	if err != nil {
		return nil, err
	}
	query, args, err := psql.Select("d.distributor_id", "d.distributor_name").From("distributor d").
		Where(vis).OrderBy("d.distributor_name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build distributor names: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Persistence("distributor names", err)
	}
	defer rows.Close()
	var list []*entity.Distributor
	for rows.Next() {
		var d entity.Distributor
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, domain.Persistence("scan distributor name", err)
		}
		list = append(list, &d)
	}
	return list, domain.Persistence("distributor names", rows.Err())
}

// FilterOptions categorías y ciudades distintas de toda la tabla.
func (r *DistributorRepo) FilterOptions(ctx context.Context) (repository.FilterOptions, error) {
	var out repository.FilterOptions
	var err error
	out.Categories, err = distinctStrings(ctx, r.q,
		`SELECT DISTINCT distributor_category FROM distributor WHERE distributor_category IS NOT NULL ORDER BY distributor_category`)
	if err != nil {
		return out, domain.Persistence("distributor categories", err)
	}
	out.Cities, err = distinctStrings(ctx, r.q,
		`SELECT DISTINCT city FROM distributor WHERE city IS NOT NULL ORDER BY city`)
	if err != nil {
		return out, domain.Persistence("distributor cities", err)
	}
	return out, nil
}

// Update reescribe todos los campos editables.
func (r *DistributorRepo) Update(ctx context.Context, d *entity.Distributor) error {
	query := `
		UPDATE distributor SET
			distributor_name = $2, city = $3, address = $4,
			primary_contact_person = $5, primary_country_code = $6, primary_mobile_number = $7,
			secondary_contact_person = $8, secondary_country_code = $9, secondary_mobile_number = $10,
			email_id = $11, gst_number = $12, distributor_category = $13,
			whatsapp_country_code = $14, whatsapp_communication_number = $15,
			distributor_logo = $16, updated_at = $17
		WHERE distributor_id = $1`
	tag, err := r.q.Exec(ctx, query,
		d.ID, d.Name, d.City, d.Address,
		d.Primary.Person, d.Primary.Phone.CountryCode, d.Primary.Phone.Number,
		nullIfEmpty(d.Secondary.Person), nullIfEmpty(d.Secondary.Phone.CountryCode), nullIfEmpty(d.Secondary.Phone.Number),
		d.Email, d.TaxID, d.Category,
		nullIfEmpty(d.WhatsApp.CountryCode), nullIfEmpty(d.WhatsApp.Number),
		nullIfEmpty(d.LogoRef), d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.Persistence("update distributor", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el distribuidor. ErrNotFound si no existía.
func (r *DistributorRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM distributor WHERE distributor_id = $1`, id)
	if err != nil {
		return domain.Persistence("delete distributor", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func distributorWhere(q repository.ListQuery) (sq.And, error) {
	vis, err := predicateSQL(q.Visibility, distributorColumns)
	if err != nil {
		return nil, err
	}
	where := sq.And{vis}
	if q.Search != "" {
		where = append(where, searchAny(q.Search, "d.distributor_name", "d.city", "d.gst_number"))
	}
	if q.Category != "" {
		where = append(where, sq.Eq{"d.distributor_category": q.Category})
	}
	if q.City != "" {
		where = append(where, sq.Eq{"d.city": q.City})
	}
	return where, nil
}

func scanDistributor(row pgx.Row) (*entity.Distributor, error) {
	var d entity.Distributor
	err := row.Scan(
		&d.ID, &d.Name, &d.City, &d.Address,
		&d.Primary.Person, &d.Primary.Phone.CountryCode, &d.Primary.Phone.Number,
		&d.Secondary.Person, &d.Secondary.Phone.CountryCode, &d.Secondary.Phone.Number,
		&d.WhatsApp.CountryCode, &d.WhatsApp.Number,
		&d.Email, &d.TaxID, &d.Category, &d.LogoRef,
		&d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func distinctStrings(ctx context.Context, q Querier, query string, args ...any) ([]string, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
