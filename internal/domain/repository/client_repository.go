package repository

import (
	"context"

	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Las lecturas resuelven Client.Owner (creador del distribuidor asociado).
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context, q ListQuery) ([]*entity.Client, int, error)
	FilterOptions(ctx context.Context) (FilterOptions, error)
	Update(ctx context.Context, c *entity.Client) error
	Delete(ctx context.Context, id int64) error
}
