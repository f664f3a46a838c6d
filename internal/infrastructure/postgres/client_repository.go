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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// La cadena distribuidor → creador se resuelve con LEFT JOIN; sin distribuidor las columnas quedan NULL.
const clientFrom = `client c
	LEFT JOIN distributor d ON d.distributor_id = c.distributor_id
	LEFT JOIN user_details u ON u.user_id = d.created_by`

var clientColumns = columnMap{
	entity.FieldCreatedBy:               "c.created_by",
	entity.FieldEmail:                   "c.email",
	entity.FieldTaxID:                   "c.gst_number",
	entity.FieldCategory:                "c.client_category",
	entity.FieldCity:                    "c.city",
	entity.FieldDistributorOwner:        "d.created_by",
	entity.FieldDistributorOwnerRole:    "LOWER(TRIM(u.role))",
	entity.FieldDistributorOwnerCompany: "COALESCE(u.company, '')",
}

const clientSelect = `c.client_id, c.client_name, c.city, c.address,
	c.primary_contact_person, c.primary_country_code, c.primary_mobile_number,
	COALESCE(c.secondary_contact_person, ''), COALESCE(c.secondary_country_code, ''), COALESCE(c.secondary_mobile_number, ''),
	COALESCE(c.whatsapp_country_code, ''), COALESCE(c.whatsapp_number, ''),
	c.email, c.gst_number, COALESCE(c.types_of_metals, ''), c.client_category, COALESCE(c.client_logo, ''),
	c.distributor_id, c.created_by, c.created_at, c.updated_at,
	d.created_by, u.role, u.company`

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el repositorio. q puede ser el pool o una tx.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create inserta el cliente y asigna c.ID. distributor_id no se valida.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO client (
			client_name, city, address, primary_contact_person, primary_country_code, primary_mobile_number,
			secondary_contact_person, secondary_country_code, secondary_mobile_number,
			email, gst_number, types_of_metals, client_category, whatsapp_country_code, whatsapp_number,
			client_logo, distributor_id, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING client_id`
	err := r.q.QueryRow(ctx, query,
		c.Name, c.City, c.Address, c.Primary.Person, c.Primary.Phone.CountryCode, c.Primary.Phone.Number,
		nullIfEmpty(c.Secondary.Person), nullIfEmpty(c.Secondary.Phone.CountryCode), nullIfEmpty(c.Secondary.Phone.Number),
		c.Email, c.TaxID, nullIfEmpty(c.MetalTypes), c.Category,
		nullIfEmpty(c.WhatsApp.CountryCode), nullIfEmpty(c.WhatsApp.Number),
		nullIfEmpty(c.LogoRef), c.DistributorID, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.Persistence("insert client", err)
	}
	return nil
}

// GetByID devuelve el cliente con Owner resuelto, o nil, nil si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `SELECT ` + clientSelect + ` FROM ` + clientFrom + ` WHERE c.client_id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence("get client", err)
	}
	return c, nil
}

// List aplica búsqueda, filtros y visibilidad; devuelve la página y el total filtrado.
func (r *ClientRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Client, int, error) {
	vis, err := predicateSQL(q.Visibility, clientColumns)
	if err != nil {
		return nil, 0, err
	}
	where := sq.And{vis}
	if q.Search != "" {
		where = append(where, searchAny(q.Search, "c.client_name", "c.city", "c.gst_number"))
	}
	if q.Category != "" {
		where = append(where, sq.Eq{"c.client_category": q.Category})
	}
	if q.City != "" {
		where = append(where, sq.Eq{"c.city": q.City})
	}

	countSQL, args, err := psql.Select("COUNT(*)").From(clientFrom).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count clients: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, domain.Persistence("count clients", err)
	}

	listSQL, args, err := psql.Select(clientSelect).From(clientFrom).Where(where).
		OrderBy("c.client_id").
		Limit(uint64(q.Limit)).Offset(uint64(q.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list clients: %w", err)
	}
	rows, err := r.q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, domain.Persistence("list clients", err)
	}
	defer rows.Close()
	list := make([]*entity.Client, 0, q.Limit)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, domain.Persistence("scan client", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.Persistence("list clients", err)
	}
	return list, total, nil
}

// FilterOptions categorías y ciudades distintas de toda la tabla.
func (r *ClientRepo) FilterOptions(ctx context.Context) (repository.FilterOptions, error) {
	var out repository.FilterOptions
	var err error
	out.Categories, err = distinctStrings(ctx, r.q,
		`SELECT DISTINCT client_category FROM client WHERE client_category IS NOT NULL ORDER BY client_category`)
	if err != nil {
		return out, domain.Persistence("client categories", err)
	}
	out.Cities, err = distinctStrings(ctx, r.q,
		`SELECT DISTINCT city FROM client WHERE city IS NOT NULL ORDER BY city`)
	if err != nil {
		return out, domain.Persistence("client cities", err)
	}
	return out, nil
}

// Update reescribe los campos editables del cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE client SET
			client_name = $2, city = $3, address = $4,
			primary_contact_person = $5, primary_country_code = $6, primary_mobile_number = $7,
			secondary_contact_person = $8, secondary_country_code = $9, secondary_mobile_number = $10,
			email = $11, gst_number = $12, types_of_metals = $13, client_category = $14,
			whatsapp_country_code = $15, whatsapp_number = $16,
			client_logo = $17, distributor_id = $18, updated_at = $19
		WHERE client_id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.City, c.Address,
		c.Primary.Person, c.Primary.Phone.CountryCode, c.Primary.Phone.Number,
		nullIfEmpty(c.Secondary.Person), nullIfEmpty(c.Secondary.Phone.CountryCode), nullIfEmpty(c.Secondary.Phone.Number),
		c.Email, c.TaxID, nullIfEmpty(c.MetalTypes), c.Category,
		nullIfEmpty(c.WhatsApp.CountryCode), nullIfEmpty(c.WhatsApp.Number),
		nullIfEmpty(c.LogoRef), c.DistributorID, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.Persistence("update client", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el cliente. ErrNotFound si no existía.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM client WHERE client_id = $1`, id)
	if err != nil {
		return domain.Persistence("delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var (
		c            entity.Client
		ownerID      *int64
		ownerRole    *string
		ownerCompany *string
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.City, &c.Address,
		&c.Primary.Person, &c.Primary.Phone.CountryCode, &c.Primary.Phone.Number,
		&c.Secondary.Person, &c.Secondary.Phone.CountryCode, &c.Secondary.Phone.Number,
		&c.WhatsApp.CountryCode, &c.WhatsApp.Number,
		&c.Email, &c.TaxID, &c.MetalTypes, &c.Category, &c.LogoRef,
		&c.DistributorID, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		&ownerID, &ownerRole, &ownerCompany,
	)
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		c.Owner = &entity.DistributorOwner{UserID: *ownerID}
		if ownerRole != nil {
			c.Owner.Role = *ownerRole
		}
		if ownerCompany != nil {
			c.Owner.Company = *ownerCompany
		}
	}
	return &c, nil
}
