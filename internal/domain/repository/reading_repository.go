package repository

import (
	"context"

	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
)

// ReadingRepository define el puerto de persistencia para lecturas de refrigerante.
type ReadingRepository interface {
	Create(ctx context.Context, r *entity.Reading) error
	GetByID(ctx context.Context, id int64) (*entity.Reading, error)
	List(ctx context.Context) ([]*entity.Reading, error)
	// Respond guarda la respuesta de servicio (post-métricas, response_by/at, status).
	Respond(ctx context.Context, r *entity.Reading) error
	Delete(ctx context.Context, id int64) error
}

// MachineRepository lectura de máquinas para dropdowns.
type MachineRepository interface {
	List(ctx context.Context) ([]*entity.Machine, error)
}
