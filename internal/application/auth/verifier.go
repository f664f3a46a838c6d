package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
	"github.com/jhoicas/coolant-flow-api/pkg/jwt"
)

// Verifier valida tokens de acceso y produce la Identity del request.
type Verifier struct {
	secret  string
	users   repository.UserRepository
	refresh bool
	log     zerolog.Logger
}

// NewVerifier construye el verificador. Con refresh=true relee el usuario por id en cada
// request y sobreescribe role, full_name, email y company con los valores actuales;
// un usuario borrado invalida su token. Con refresh=false los claims se usan tal cual.
func NewVerifier(secret string, users repository.UserRepository, refresh bool, log zerolog.Logger) *Verifier {
	return &Verifier{secret: secret, users: users, refresh: refresh && users != nil, log: log}
}

// Verify valida el token (firma, expiración, propósito) y devuelve la identidad.
// Todo fallo de credencial es domain.ErrUnauthenticated.
func (v *Verifier) Verify(ctx context.Context, token string) (entity.Identity, error) {
	if token == "" {
		return entity.Identity{}, fmt.Errorf("%w: token ausente", domain.ErrUnauthenticated)
	}
	claims, err := jwt.Parse(v.secret, token)
	if err != nil {
		return entity.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.UserID == 0 {
		return entity.Identity{}, fmt.Errorf("%w: token sin user_id", domain.ErrUnauthenticated)
	}

	id := entity.Identity{
		UserID:   claims.UserID,
		Role:     entity.ParseRole(claims.Role),
		FullName: claims.FullName,
		Email:    claims.Email,
		Company:  claims.Company,
	}
	if !v.refresh {
		return id, nil
	}

	u, err := v.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return entity.Identity{}, err
	}
	if u == nil {
		return entity.Identity{}, fmt.Errorf("%w: el usuario ya no existe", domain.ErrUnauthenticated)
	}
	fresh := u.Identity()
	if fresh.Role != id.Role {
		v.log.Debug().Int64("user_id", id.UserID).
			Str("token_role", id.Role.String()).Str("role", fresh.Role.String()).
			Msg("rol del token desactualizado, se usa el actual")
	}
	return fresh, nil
}
