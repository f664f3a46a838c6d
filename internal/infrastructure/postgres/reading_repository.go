package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

var (
	_ repository.ReadingRepository = (*ReadingRepo)(nil)
	_ repository.MachineRepository = (*MachineRepo)(nil)
)

// Las métricas son NUMERIC; el codec de pgx-shopspring-decimal registrado en el pool las mapea a decimal.NullDecimal.
const readingSelect = `reading_id, machine_id, raised_by,
	pre_oil_refractometer, pre_oil_ph, pre_water_ph, pre_oil_top_up, pre_water_input,
	status, response_by, response_timestamp,
	post_oil_refractometer, post_oil_ph, post_oil_top_up, post_water, post_water_ph,
	created_at, updated_at`

// ReadingRepo implementación de ReadingRepository sobre PostgreSQL (tabla coolant_reading).
type ReadingRepo struct {
	q Querier
}

// NewReadingRepository construye el repositorio. q puede ser el pool o una tx.
func NewReadingRepository(q Querier) *ReadingRepo {
	return &ReadingRepo{q: q}
}

// Create inserta la lectura y asigna r.ID.
func (r *ReadingRepo) Create(ctx context.Context, rd *entity.Reading) error {
	query := `
		INSERT INTO coolant_reading (
			machine_id, raised_by,
			pre_oil_refractometer, pre_oil_ph, pre_water_ph, pre_oil_top_up, pre_water_input,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING reading_id`
	err := r.q.QueryRow(ctx, query,
		rd.MachineID, rd.RaisedBy,
		rd.Pre.OilRefractometer, rd.Pre.OilPH, rd.Pre.WaterPH, rd.Pre.OilTopUp, rd.Pre.WaterInput,
		rd.Status, rd.CreatedAt, rd.UpdatedAt,
	).Scan(&rd.ID)
	if err != nil {
		return domain.Persistence("insert reading", err)
	}
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *ReadingRepo) GetByID(ctx context.Context, id int64) (*entity.Reading, error) {
	rd, err := scanReading(r.q.QueryRow(ctx, `SELECT `+readingSelect+` FROM coolant_reading WHERE reading_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence("get reading", err)
	}
	return rd, nil
}

// List todas las lecturas, las más recientes primero.
func (r *ReadingRepo) List(ctx context.Context) ([]*entity.Reading, error) {
	rows, err := r.q.Query(ctx, `SELECT `+readingSelect+` FROM coolant_reading ORDER BY created_at DESC, reading_id DESC`)
	if err != nil {
		return nil, domain.Persistence("list readings", err)
	}
	defer rows.Close()
	list := make([]*entity.Reading, 0)
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			return nil, domain.Persistence("scan reading", err)
		}
		list = append(list, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list readings", err)
	}
	return list, nil
}

// Respond guarda la respuesta de servicio.
func (r *ReadingRepo) Respond(ctx context.Context, rd *entity.Reading) error {
	query := `
		UPDATE coolant_reading SET
			post_oil_refractometer = $2, post_oil_ph = $3, post_oil_top_up = $4, post_water = $5, post_water_ph = $6,
			status = $7, response_by = $8, response_timestamp = $9, updated_at = $10
		WHERE reading_id = $1`
	tag, err := r.q.Exec(ctx, query,
		rd.ID, rd.Post.OilRefractometer, rd.Post.OilPH, rd.Post.OilTopUp, rd.Post.Water, rd.Post.WaterPH,
		rd.Status, rd.ResponseBy, rd.ResponseAt, rd.UpdatedAt,
	)
	if err != nil {
		return domain.Persistence("respond reading", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la lectura. ErrNotFound si no existía.
func (r *ReadingRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM coolant_reading WHERE reading_id = $1`, id)
	if err != nil {
		return domain.Persistence("delete reading", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanReading(row pgx.Row) (*entity.Reading, error) {
	var rd entity.Reading
	err := row.Scan(
		&rd.ID, &rd.MachineID, &rd.RaisedBy,
		&rd.Pre.OilRefractometer, &rd.Pre.OilPH, &rd.Pre.WaterPH, &rd.Pre.OilTopUp, &rd.Pre.WaterInput,
		&rd.Status, &rd.ResponseBy, &rd.ResponseAt,
		&rd.Post.OilRefractometer, &rd.Post.OilPH, &rd.Post.OilTopUp, &rd.Post.Water, &rd.Post.WaterPH,
		&rd.CreatedAt, &rd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rd, nil
}

// MachineRepo lectura de la tabla machine.
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el repositorio de máquinas.
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// List máquinas ordenadas por nombre.
func (r *MachineRepo) List(ctx context.Context) ([]*entity.Machine, error) {
	rows, err := r.q.Query(ctx, `SELECT machine_id, machine_name FROM machine ORDER BY machine_name`)
	if err != nil {
		return nil, domain.Persistence("list machines", err)
	}
	defer rows.Close()
	list := make([]*entity.Machine, 0)
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, domain.Persistence("scan machine", err)
		}
		list = append(list, &m)
	}
	return list, domain.Persistence("list machines", rows.Err())
}
