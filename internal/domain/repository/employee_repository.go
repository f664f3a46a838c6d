package repository

import (
	"context"

	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	List(ctx context.Context, q ListQuery) ([]*entity.Employee, int, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id int64) error
}
