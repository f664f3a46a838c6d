package auth_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/coolant-flow-api/internal/application/auth"
	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
	"github.com/jhoicas/coolant-flow-api/internal/infrastructure/storage"
)

const testSecret = "clave-de-pruebas"

type memUsers struct {
	mu    sync.Mutex
	users map[int64]*entity.User
	err   error
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) UpdateProfile(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) UpdatePassword(_ context.Context, userID int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *memUsers) FullNamesByRole(context.Context, string) ([]string, error) {
	return nil, nil
}

type memResets struct {
	mu     sync.Mutex
	tokens map[string]*entity.PasswordResetToken
}

func (m *memResets) Create(_ context.Context, t *entity.PasswordResetToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = int64(len(m.tokens) + 1)
	cp := *t
	m.tokens[t.Token] = &cp
	return nil
}

func (m *memResets) GetByToken(_ context.Context, token string) (*entity.PasswordResetToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[token]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memResets) DeleteByToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

// fakeTx ejecuta fn contra los mismos repositorios; err simula un fallo de la base.
type fakeTx struct {
	users  *memUsers
	resets *memResets
	err    error
}

func (t *fakeTx) Run(_ context.Context, fn func(repos repository.Repositories) error) error {
	if t.err != nil {
		return t.err
	}
	return fn(repository.Repositories{Users: t.users, PasswordResets: t.resets})
}

type authEnv struct {
	users  *memUsers
	resets *memResets
	tx     *fakeTx
	store  *storage.AttachmentStore
	uc     *auth.AuthUseCase
}

func hash(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuthEnv(t *testing.T, opts auth.Options) *authEnv {
	t.Helper()
	users := &memUsers{users: map[int64]*entity.User{
		1: {ID: 1, FullName: "Ana Admin", Email: "ana@coolant.in", Role: "Admin", PasswordHash: hash(t, "secreto123")},
		5: {ID: 5, FullName: "Carla Cliente", Email: "carla@taller.in", Role: "client", Company: "27CLIENT", PasswordHash: hash(t, "cliente123")},
	}}
	resets := &memResets{tokens: map[string]*entity.PasswordResetToken{}}
	store, err := storage.NewAttachmentStore(afero.NewMemMapFs(), storage.Config{PublicPath: "/static"}, zerolog.Nop())
	require.NoError(t, err)

	tx := &fakeTx{users: users, resets: resets}
	cfg := auth.JWTConfig{Secret: testSecret, Issuer: "coolant-flow-api", ExpMinutes: 60, ResetMinutes: 15}
	return &authEnv{
		users:  users,
		resets: resets,
		tx:     tx,
		store:  store,
		uc:     auth.NewAuthUseCase(users, resets, tx, store, cfg, opts, zerolog.Nop()),
	}
}

func jpg(name string) *ports.Upload {
	content := []byte("\xff\xd8\xff fake")
	return &ports.Upload{Filename: name, Size: int64(len(content)), Content: bytes.NewReader(content)}
}

var errDB = errors.New("conexión rechazada")
