package ports

import (
	"context"

	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción; si fn devuelve error se hace rollback.
// Los repositorios recibidos solo son válidos durante fn.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}
