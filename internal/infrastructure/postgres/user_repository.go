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
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)
)

const userSelect = `user_id, full_name, email, password, role,
	COALESCE(designation, ''), COALESCE(phone_number, ''), COALESCE(company, ''), COALESCE(profile_image, ''),
	created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (tabla user_details).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// GetByID obtiene un usuario por ID. nil, nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userSelect+` FROM user_details WHERE user_id = $1`, id)
}

// GetByEmail obtiene un usuario por email, sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userSelect+` FROM user_details WHERE LOWER(email) = LOWER($1) LIMIT 1`, email)
}

// UpdateProfile actualiza los datos editables del perfil.
func (r *UserRepo) UpdateProfile(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE user_details SET
			full_name = $2, designation = $3, phone_number = $4, company = $5, profile_image = $6, updated_at = $7
		WHERE user_id = $1`
	tag, err := r.q.Exec(ctx, query,
		u.ID, u.FullName, nullIfEmpty(u.Designation), nullIfEmpty(u.PhoneNumber),
		nullIfEmpty(u.Company), nullIfEmpty(u.ProfileImage), u.UpdatedAt,
	)
	if err != nil {
		return domain.Persistence("update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE user_details SET password = $2, updated_at = NOW() WHERE user_id = $1`, userID, hash)
	if err != nil {
		return domain.Persistence("update password", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FullNamesByRole nombres de los usuarios con ese rol (comparación sin mayúsculas).
func (r *UserRepo) FullNamesByRole(ctx context.Context, role string) ([]string, error) {
	out, err := distinctStrings(ctx, r.q,
		`SELECT full_name FROM user_details WHERE LOWER(TRIM(role)) = LOWER($1) ORDER BY full_name`, role)
	if err != nil {
		return nil, domain.Persistence("users by role", err)
	}
	return out, nil
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role,
		&u.Designation, &u.PhoneNumber, &u.Company, &u.ProfileImage,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence("get user", err)
	}
	return &u, nil
}

// PasswordResetRepo tokens de recuperación (tabla password_reset_token).
type PasswordResetRepo struct {
	q Querier
}

// NewPasswordResetRepository construye el repositorio de tokens de recuperación.
func NewPasswordResetRepository(q Querier) *PasswordResetRepo {
	return &PasswordResetRepo{q: q}
}

// Create guarda el token y asigna t.ID.
func (r *PasswordResetRepo) Create(ctx context.Context, t *entity.PasswordResetToken) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO password_reset_token (user_id, token, expires_at) VALUES ($1, $2, $3) RETURNING id`,
		t.UserID, t.Token, t.ExpiresAt,
	).Scan(&t.ID)
	if err != nil {
		return domain.Persistence("insert reset token", err)
	}
	return nil
}

// GetByToken nil, nil si el token no existe.
func (r *PasswordResetRepo) GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var t entity.PasswordResetToken
	err := r.q.QueryRow(ctx,
		`SELECT id, user_id, token, expires_at FROM password_reset_token WHERE token = $1`, token,
	).Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence("get reset token", err)
	}
	return &t, nil
}

// DeleteByToken borra el token usado. No falla si ya no existe.
func (r *PasswordResetRepo) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM password_reset_token WHERE token = $1`, token); err != nil {
		return domain.Persistence("delete reset token", err)
	}
	return nil
}
