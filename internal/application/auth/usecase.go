package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
	"github.com/jhoicas/coolant-flow-api/pkg/jwt"
)

// MinPasswordLength longitud mínima de una contraseña nueva.
const MinPasswordLength = 8

var errBadCredentials = fmt.Errorf("%w: email o contraseña incorrectos", domain.ErrUnauthenticated)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret       string
	Issuer       string
	ExpMinutes   int
	ResetMinutes int
}

// Options comportamiento del flujo de recuperación.
type Options struct {
	ResetLinkBase string // URL del frontend que recibe ?token=
	ExposeLink    bool   // incluir el enlace en la respuesta (solo desarrollo)
}

// AuthUseCase casos de uso de autenticación: login y gestión de contraseña.
type AuthUseCase struct {
	users  repository.UserRepository
	resets repository.PasswordResetRepository
	tx     ports.TxRunner
	store  ports.AttachmentStore
	jwtCfg JWTConfig
	opts   Options
	log    zerolog.Logger
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	resets repository.PasswordResetRepository,
	tx ports.TxRunner,
	store ports.AttachmentStore,
	jwtCfg JWTConfig,
	opts Options,
	log zerolog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users: users, resets: resets, tx: tx, store: store,
		jwtCfg: jwtCfg, opts: opts, log: log, now: time.Now,
	}
}

// Login verifica email/password, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if missing := missingFields(map[string]string{"email": in.Email, "password": in.Password}, "email", "password"); len(missing) > 0 {
		return nil, domain.NewMissingFields(missing...)
	}
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, errBadCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.Subject{
		UserID:   user.ID,
		Role:     entity.ParseRole(user.Role).String(),
		FullName: user.FullName,
		Email:    user.Email,
		Company:  user.Company,
	}, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	uc.log.Info().Int64("user_id", user.ID).Msg("login")
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewProfileResponse(user, uc.store.URL(user.ProfileImage)),
	}, nil
}

// ForgotPassword emite un token de recuperación. La respuesta no revela si el email existe.
// El envío del email es externo; el enlace queda en el log.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	if in.Email == "" {
		return nil, domain.NewMissingFields("email")
	}
	out := &dto.ForgotPasswordResponse{Message: "si el email está registrado, recibirá un enlace de recuperación"}

	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Debug().Str("email", in.Email).Msg("recuperación solicitada para email desconocido")
		return out, nil
	}

	token, err := jwt.GenerateReset(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, user.ID, uc.jwtCfg.ResetMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token de recuperación: %w", err)
	}
	t := &entity.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ResetMinutes) * time.Minute),
	}
	if err := uc.resets.Create(ctx, t); err != nil {
		return nil, err
	}

	link := uc.opts.ResetLinkBase + "?token=" + url.QueryEscape(token)
	uc.log.Info().Int64("user_id", user.ID).Str("reset_link", link).Msg("enlace de recuperación emitido")
	if uc.opts.ExposeLink {
		out.ResetLink = link
	}
	return out, nil
}

// ResetPassword valida el token (firma y fila vigente), cambia la contraseña y consume el token.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if missing := missingFields(map[string]string{"token": in.Token, "password": in.Password}, "token", "password"); len(missing) > 0 {
		return domain.NewMissingFields(missing...)
	}
	if len(in.Password) < MinPasswordLength {
		return domain.NewInvalidField("password", fmt.Sprintf("mínimo %d caracteres", MinPasswordLength))
	}
	userID, err := jwt.ParseReset(uc.jwtCfg.Secret, in.Token)
	if err != nil {
		return domain.ErrInvalidResetLink
	}
	stored, err := uc.resets.GetByToken(ctx, in.Token)
	if err != nil {
		return err
	}
	if stored == nil || stored.UserID != userID || stored.Expired(uc.now()) {
		return domain.ErrInvalidResetLink
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return err
	}
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Users.UpdatePassword(ctx, userID, hash); err != nil {
			return err
		}
		return repos.PasswordResets.DeleteByToken(ctx, in.Token)
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetLink
		}
		return err
	}
	uc.log.Info().Int64("user_id", userID).Msg("contraseña restablecida")
	return nil
}

// ChangePassword cambia la contraseña del usuario autenticado; la actual debe coincidir.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, id entity.Identity, in dto.ChangePasswordRequest) error {
	fields := map[string]string{"currentPassword": in.CurrentPassword, "newPassword": in.NewPassword}
	if missing := missingFields(fields, "currentPassword", "newPassword"); len(missing) > 0 {
		return domain.NewMissingFields(missing...)
	}
	if len(in.NewPassword) < MinPasswordLength {
		return domain.NewInvalidField("newPassword", fmt.Sprintf("mínimo %d caracteres", MinPasswordLength))
	}
	user, err := uc.users.GetByID(ctx, id.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := hashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	uc.log.Info().Int64("user_id", user.ID).Msg("contraseña cambiada")
	return nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash de contraseña: %w", err)
	}
	return string(hash), nil
}

func missingFields(values map[string]string, order ...string) []string {
	var out []string
	for _, k := range order {
		if values[k] == "" {
			out = append(out, k)
		}
	}
	return out
}
