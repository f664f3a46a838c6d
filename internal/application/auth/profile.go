package auth

import (
	"context"
	"time"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

// Profile devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Profile(ctx context.Context, id entity.Identity) (*dto.ProfileResponse, error) {
	user, err := uc.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.NewProfileResponse(user, uc.store.URL(user.ProfileImage))
	return &out, nil
}

// UpdateProfile aplica los campos enviados y, si viene, reemplaza la foto de perfil.
// Email y rol no se modifican por esta vía.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, id entity.Identity, form dto.Form, image *ports.Upload) (*dto.ProfileResponse, error) {
	if blank := form.Blank(dto.FieldFullName); len(blank) > 0 {
		return nil, domain.NewMissingFields(blank...)
	}
	user, err := uc.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	fields := map[string]*string{
		dto.FieldFullName:    &user.FullName,
		dto.FieldDesignation: &user.Designation,
		dto.FieldPhoneNumber: &user.PhoneNumber,
		dto.FieldCompanyName: &user.Company,
	}
	// Para el rol client la empresa es su GST y define qué clientes ve.
	if entity.ParseRole(user.Role) == entity.RoleClient {
		delete(fields, dto.FieldCompanyName)
	}
	for field, dst := range fields {
		if form.Has(field) {
			*dst = form.Get(field)
		}
	}
	user.UpdatedAt = uc.now().UTC().Truncate(time.Second)

	persist := func() error {
		return uc.tx.Run(ctx, func(repos repository.Repositories) error {
			return repos.Users.UpdateProfile(ctx, user)
		})
	}
	if image != nil {
		_, err = uc.store.Replace(ctx, user.ProfileImage, ports.AssetUserProfile, *image, func(newRef string) error {
			user.ProfileImage = newRef
			return persist()
		})
	} else {
		err = persist()
	}
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("user_id", user.ID).Msg("perfil actualizado")
	out := dto.NewProfileResponse(user, uc.store.URL(user.ProfileImage))
	return &out, nil
}
