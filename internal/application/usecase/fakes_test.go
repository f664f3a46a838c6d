package usecase_test

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
	"github.com/jhoicas/coolant-flow-api/internal/infrastructure/storage"
)

// memDB base en memoria compartida por los repositorios falsos. Las lecturas devuelven copias.
type memDB struct {
	mu           sync.Mutex
	nextID       int64
	distributors map[int64]*entity.Distributor
	clients      map[int64]*entity.Client
	employees    map[int64]*entity.Employee
	readings     map[int64]*entity.Reading
	machines     []*entity.Machine
	users        map[int64]*entity.User
}

func newMemDB() *memDB {
	return &memDB{
		distributors: map[int64]*entity.Distributor{},
		clients:      map[int64]*entity.Client{},
		employees:    map[int64]*entity.Employee{},
		readings:     map[int64]*entity.Reading{},
		users:        map[int64]*entity.User{},
	}
}

func (db *memDB) id() int64 {
	db.nextID++
	return db.nextID
}

func (db *memDB) repos() repository.Repositories {
	return repository.Repositories{
		Distributors: distributorRepo{db},
		Clients:      clientRepo{db},
		Employees:    employeeRepo{db},
		Readings:     readingRepo{db},
		Users:        userRepo{db},
	}
}

func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func containsFold(needle string, haystack ...string) bool {
	if needle == "" {
		return true
	}
	n := strings.ToLower(needle)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), n) {
			return true
		}
	}
	return false
}

func page[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func visible(p policy.Predicate, s entity.Snapshot) bool {
	return p == nil || p.Match(s)
}

// ─── distribuidores ──────────────────────────────────────────────────────────

type distributorRepo struct{ db *memDB }

func (r distributorRepo) Create(_ context.Context, d *entity.Distributor) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	d.ID = r.db.id()
	cp := *d
	r.db.distributors[d.ID] = &cp
	return nil
}

func (r distributorRepo) GetByID(_ context.Context, id int64) (*entity.Distributor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	d, ok := r.db.distributors[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r distributorRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Distributor, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var rows []*entity.Distributor
	for _, k := range sortedKeys(r.db.distributors) {
		d := r.db.distributors[k]
		if !visible(q.Visibility, d) || !containsFold(q.Search, d.Name, d.City, d.TaxID) {
			continue
		}
		if (q.Category != "" && d.Category != q.Category) || (q.City != "" && d.City != q.City) {
			continue
		}
		cp := *d
		rows = append(rows, &cp)
	}
	return page(rows, q.Limit, q.Offset), len(rows), nil
}

func (r distributorRepo) Names(_ context.Context, visibility policy.Predicate) ([]*entity.Distributor, error) {
	list, _, err := r.List(context.Background(), repository.ListQuery{Visibility: visibility})
	return list, err
}

func (r distributorRepo) FilterOptions(context.Context) (repository.FilterOptions, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var cats, cities []string
	for _, k := range sortedKeys(r.db.distributors) {
		d := r.db.distributors[k]
		cats = appendDistinct(cats, d.Category)
		cities = appendDistinct(cities, d.City)
	}
	return repository.FilterOptions{Categories: cats, Cities: cities}, nil
}

func (r distributorRepo) Update(_ context.Context, d *entity.Distributor) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.distributors[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	r.db.distributors[d.ID] = &cp
	return nil
}

func (r distributorRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.distributors[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.distributors, id)
	return nil
}

func appendDistinct(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

// ─── clientes ────────────────────────────────────────────────────────────────

type clientRepo struct{ db *memDB }

// withOwner resuelve Owner como lo hace el join distribuidor → usuario creador.
func (r clientRepo) withOwner(c *entity.Client) *entity.Client {
	cp := *c
	cp.Owner = nil
	if c.DistributorID == nil {
		return &cp
	}
	d, ok := r.db.distributors[*c.DistributorID]
	if !ok {
		return &cp
	}
	owner := &entity.DistributorOwner{UserID: d.CreatedBy}
	if u, ok := r.db.users[d.CreatedBy]; ok {
		owner.Role = u.Role
		owner.Company = u.Company
	}
	cp.Owner = owner
	return &cp
}

func (r clientRepo) Create(_ context.Context, c *entity.Client) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c.ID = r.db.id()
	cp := *c
	r.db.clients[c.ID] = &cp
	return nil
}

func (r clientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.clients[id]
	if !ok {
		return nil, nil
	}
	return r.withOwner(c), nil
}

func (r clientRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Client, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var rows []*entity.Client
	for _, k := range sortedKeys(r.db.clients) {
		c := r.withOwner(r.db.clients[k])
		if !visible(q.Visibility, c) || !containsFold(q.Search, c.Name, c.City, c.TaxID) {
			continue
		}
		if (q.Category != "" && c.Category != q.Category) || (q.City != "" && c.City != q.City) {
			continue
		}
		rows = append(rows, c)
	}
	return page(rows, q.Limit, q.Offset), len(rows), nil
}

func (r clientRepo) FilterOptions(context.Context) (repository.FilterOptions, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var cats, cities []string
	for _, k := range sortedKeys(r.db.clients) {
		c := r.db.clients[k]
		cats = appendDistinct(cats, c.Category)
		cities = appendDistinct(cities, c.City)
	}
	return repository.FilterOptions{Categories: cats, Cities: cities}, nil
}

func (r clientRepo) Update(_ context.Context, c *entity.Client) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	cp.Owner = nil
	r.db.clients[c.ID] = &cp
	return nil
}

func (r clientRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.clients, id)
	return nil
}

// ─── empleados ───────────────────────────────────────────────────────────────

type employeeRepo struct{ db *memDB }

func (r employeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e.ID = r.db.id()
	cp := *e
	r.db.employees[e.ID] = &cp
	return nil
}

func (r employeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r employeeRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Employee, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var rows []*entity.Employee
	for _, k := range sortedKeys(r.db.employees) {
		e := r.db.employees[k]
		if !visible(q.Visibility, e) || !containsFold(q.Search, e.Name, e.Email, e.Mobile.Number) {
			continue
		}
		if q.Category != "" && e.Category != q.Category {
			continue
		}
		cp := *e
		rows = append(rows, &cp)
	}
	return page(rows, q.Limit, q.Offset), len(rows), nil
}

func (r employeeRepo) Categories(context.Context) ([]string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var cats []string
	for _, k := range sortedKeys(r.db.employees) {
		cats = appendDistinct(cats, r.db.employees[k].Category)
	}
	return cats, nil
}

func (r employeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.employees[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.db.employees[e.ID] = &cp
	return nil
}

func (r employeeRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.employees, id)
	return nil
}

// ─── lecturas y máquinas ─────────────────────────────────────────────────────

type readingRepo struct{ db *memDB }

func (r readingRepo) Create(_ context.Context, rd *entity.Reading) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rd.ID = r.db.id()
	cp := *rd
	r.db.readings[rd.ID] = &cp
	return nil
}

func (r readingRepo) GetByID(_ context.Context, id int64) (*entity.Reading, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rd, ok := r.db.readings[id]
	if !ok {
		return nil, nil
	}
	cp := *rd
	return &cp, nil
}

func (r readingRepo) List(context.Context) ([]*entity.Reading, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*entity.Reading, 0, len(r.db.readings))
	for _, k := range sortedKeys(r.db.readings) {
		cp := *r.db.readings[k]
		out = append(out, &cp)
	}
	return out, nil
}

func (r readingRepo) Respond(_ context.Context, rd *entity.Reading) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.readings[rd.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *rd
	r.db.readings[rd.ID] = &cp
	return nil
}

func (r readingRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.readings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.readings, id)
	return nil
}

type machineRepo struct{ db *memDB }

func (r machineRepo) List(context.Context) ([]*entity.Machine, error) {
	return r.db.machines, nil
}

// ─── usuarios ────────────────────────────────────────────────────────────────

type userRepo struct{ db *memDB }

func (r userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, k := range sortedKeys(r.db.users) {
		if u := r.db.users[k]; strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r userRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *u
	r.db.users[u.ID] = &cp
	return nil
}

func (r userRepo) UpdatePassword(_ context.Context, userID int64, hash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r userRepo) FullNamesByRole(_ context.Context, role string) ([]string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var names []string
	for _, k := range sortedKeys(r.db.users) {
		if u := r.db.users[k]; entity.ParseRole(u.Role).String() == role {
			names = append(names, u.FullName)
		}
	}
	return names, nil
}

// ─── transacción, almacén y QR ───────────────────────────────────────────────

// fakeTx ejecuta fn sobre los repositorios en memoria; err simula un fallo de la base.
type fakeTx struct {
	db  *memDB
	err error
}

func (t *fakeTx) Run(_ context.Context, fn func(repos repository.Repositories) error) error {
	if t.err != nil {
		return t.err
	}
	return fn(t.db.repos())
}

type fakeQR struct {
	cards []ports.DistributorCard
}

func (q *fakeQR) GenerateDistributorCard(_ context.Context, card ports.DistributorCard) ([]byte, error) {
	q.cards = append(q.cards, card)
	return []byte("%PDF-1.4 tarjeta"), nil
}

func newStore(t *testing.T) *storage.AttachmentStore {
	t.Helper()
	s, err := storage.NewAttachmentStore(afero.NewMemMapFs(), storage.Config{PublicPath: "/static"}, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func png(name string) *ports.Upload {
	content := []byte("\x89PNG fake")
	return &ports.Upload{Filename: name, Size: int64(len(content)), Content: bytes.NewReader(content)}
}
