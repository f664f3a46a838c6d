package repository

import (
	"context"

	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
)

// DistributorRepository define el puerto de persistencia para Distributor.
type DistributorRepository interface {
	// Create persiste y asigna d.ID.
	Create(ctx context.Context, d *entity.Distributor) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Distributor, error)
	// List devuelve la página pedida y el total del conjunto filtrado.
	List(ctx context.Context, q ListQuery) ([]*entity.Distributor, int, error)
	// Names id y nombre de los distribuidores visibles (dropdown del formulario de clientes).
	Names(ctx context.Context, visibility policy.Predicate) ([]*entity.Distributor, error)
	FilterOptions(ctx context.Context) (FilterOptions, error)
	Update(ctx context.Context, d *entity.Distributor) error
	Delete(ctx context.Context, id int64) error
}
