package repository

import (
	"context"

	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, userID int64, hash string) error
	// FullNamesByRole nombres completos de los usuarios con ese rol (dropdown de managers).
	FullNamesByRole(ctx context.Context, role string) ([]string, error)
}

// PasswordResetRepository tokens de recuperación de contraseña.
type PasswordResetRepository interface {
	Create(ctx context.Context, t *entity.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)
	DeleteByToken(ctx context.Context, token string) error
}
