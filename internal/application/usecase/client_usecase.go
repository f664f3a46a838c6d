package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

var clientRequired = []string{
	dto.FieldClientName, dto.FieldCity, dto.FieldAddress,
	dto.FieldPrimaryContactPerson, dto.FieldPrimaryMobileNumber,
	dto.FieldEmail, dto.FieldGSTNumber, dto.FieldClientCategory,
}

var clientPhones = []string{
	dto.FieldPrimaryMobileNumber, dto.FieldSecondaryMobileNumber, dto.FieldWhatsAppNumber,
}

// ClientUseCase ciclo de vida de clientes.
type ClientUseCase struct {
	repo   repository.ClientRepository
	tx     ports.TxRunner
	store  ports.AttachmentStore
	paging Paging
	log    zerolog.Logger
	now    func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	repo repository.ClientRepository,
	tx ports.TxRunner,
	store ports.AttachmentStore,
	paging Paging,
	log zerolog.Logger,
) *ClientUseCase {
	return &ClientUseCase{repo: repo, tx: tx, store: store, paging: paging, log: log, now: time.Now}
}

// Create valida, autoriza y persiste. distributor_id no se valida contra la tabla de distribuidores.
func (uc *ClientUseCase) Create(ctx context.Context, id entity.Identity, form dto.Form, logo *ports.Upload) (*dto.ClientResponse, error) {
	if err := requireFields(form, clientRequired...); err != nil {
		return nil, err
	}
	if err := validatePhones(form, clientPhones...); err != nil {
		return nil, err
	}
	distributorID, err := parseOptionalID(form, dto.FieldDistributorID)
	if err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionCreate, policy.ResourceClient, nil); err != nil {
		return nil, err
	}

	now := uc.now()
	c := &entity.Client{
		Name:    form.Get(dto.FieldClientName),
		City:    form.Get(dto.FieldCity),
		Address: form.Get(dto.FieldAddress),
		Primary: entity.Contact{
			Person: form.Get(dto.FieldPrimaryContactPerson),
			Phone:  phoneOf(form, dto.FieldPrimaryCountryCode, dto.FieldPrimaryMobileNumber),
		},
		Email:         form.Get(dto.FieldEmail),
		TaxID:         form.Get(dto.FieldGSTNumber),
		MetalTypes:    form.Get(dto.FieldTypesOfMetals),
		Category:      form.Get(dto.FieldClientCategory),
		DistributorID: distributorID,
		CreatedBy:     id.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if v := form.Get(dto.FieldSecondaryMobileNumber); v != "" || form.Get(dto.FieldSecondaryContactPerson) != "" {
		c.Secondary = entity.Contact{
			Person: form.Get(dto.FieldSecondaryContactPerson),
			Phone:  phoneOf(form, dto.FieldSecondaryCountryCode, dto.FieldSecondaryMobileNumber),
		}
	}
	if form.Get(dto.FieldWhatsAppNumber) != "" {
		c.WhatsApp = phoneOf(form, dto.FieldWhatsAppCountryCode, dto.FieldWhatsAppNumber)
	}

	ref, err := storeUpload(ctx, uc.store, ports.AssetClientLogo, logo)
	if err != nil {
		return nil, err
	}
	c.LogoRef = ref

	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Clients.Create(ctx, c)
	}); err != nil {
		logOrphan(uc.log, ref, err)
		return nil, persistErr("create client", err)
	}
	if distributorID != nil {
		uc.log.Debug().Int64("client_id", c.ID).Int64("distributor_id", *distributorID).Msg("cliente asociado a distribuidor")
	}
	uc.log.Info().Int64("client_id", c.ID).Int64("user_id", id.UserID).Msg("cliente creado")
	out := uc.toResponse(c)
	return &out, nil
}

// Get devuelve el cliente si es visible para id.
func (uc *ClientUseCase) Get(ctx context.Context, id entity.Identity, clientID int64) (*dto.ClientResponse, error) {
	c, err := uc.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionRead, policy.ResourceClient, c); err != nil {
		return nil, err
	}
	out := uc.toResponse(c)
	return &out, nil
}

// List página filtrada por búsqueda, categoría, ciudad y la cadena distribuidor → cliente del rol.
func (uc *ClientUseCase) List(ctx context.Context, id entity.Identity, req dto.ListRequest) (*dto.ClientListResponse, error) {
	page, size, offset := uc.paging.normalize(req.PageRequest)
	list, total, err := uc.repo.List(ctx, repository.ListQuery{
		Search:     req.Search,
		Category:   req.Category,
		City:       req.City,
		Visibility: policy.VisibilityFilter(id, policy.ResourceClient),
		Limit:      size,
		Offset:     offset,
	})
	if err != nil {
		return nil, persistErr("list clients", err)
	}
	opts, err := uc.repo.FilterOptions(ctx)
	if err != nil {
		return nil, persistErr("client filters", err)
	}
	out := &dto.ClientListResponse{
		Clients:    make([]dto.ClientResponse, 0, len(list)),
		Pagination: dto.NewPagination(total, page, size),
		Filters:    dto.FilterOptions{Categories: opts.Categories, Cities: opts.Cities},
	}
	for _, c := range list {
		out.Clients = append(out.Clients, uc.toResponse(c))
	}
	return out, nil
}

// Update aplica solo los campos enviados. Un cliente solo modifica su propio registro (gst == company).
func (uc *ClientUseCase) Update(ctx context.Context, id entity.Identity, clientID int64, form dto.Form, logo *ports.Upload) (*dto.ClientResponse, error) {
	if err := requireNotBlank(form, clientRequired...); err != nil {
		return nil, err
	}
	if err := validatePhones(form, clientPhones...); err != nil {
		return nil, err
	}
	var distributorID *int64
	if form.Has(dto.FieldDistributorID) {
		var err error
		if distributorID, err = parseOptionalID(form, dto.FieldDistributorID); err != nil {
			return nil, err
		}
	}
	c, err := uc.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionUpdate, policy.ResourceClient, c); err != nil {
		return nil, err
	}

	mergeString(&c.Name, form, dto.FieldClientName)
	mergeString(&c.City, form, dto.FieldCity)
	mergeString(&c.Address, form, dto.FieldAddress)
	mergeString(&c.Primary.Person, form, dto.FieldPrimaryContactPerson)
	mergePhone(&c.Primary.Phone, form, dto.FieldPrimaryCountryCode, dto.FieldPrimaryMobileNumber)
	mergeString(&c.Secondary.Person, form, dto.FieldSecondaryContactPerson)
	mergePhone(&c.Secondary.Phone, form, dto.FieldSecondaryCountryCode, dto.FieldSecondaryMobileNumber)
	mergePhone(&c.WhatsApp, form, dto.FieldWhatsAppCountryCode, dto.FieldWhatsAppNumber)
	mergeString(&c.Email, form, dto.FieldEmail)
	mergeString(&c.TaxID, form, dto.FieldGSTNumber)
	mergeString(&c.MetalTypes, form, dto.FieldTypesOfMetals)
	mergeString(&c.Category, form, dto.FieldClientCategory)
	if form.Has(dto.FieldDistributorID) {
		c.DistributorID = distributorID
	}
	c.UpdatedAt = uc.now()

	persist := func() error {
		return uc.tx.Run(ctx, func(repos repository.Repositories) error {
			return repos.Clients.Update(ctx, c)
		})
	}
	if logo == nil {
		err = persist()
	} else {
		_, err = uc.store.Replace(ctx, c.LogoRef, ports.AssetClientLogo, *logo, func(ref string) error {
			c.LogoRef = ref
			return persist()
		})
	}
	if err != nil {
		return nil, persistErr("update client", err)
	}
	out := uc.toResponse(c)
	return &out, nil
}

// Delete admin, manager o distributor. NotFound antes que el permiso; el logo se borra tras el commit.
func (uc *ClientUseCase) Delete(ctx context.Context, id entity.Identity, clientID int64) error {
	c, err := uc.load(ctx, clientID)
	if err != nil {
		return err
	}
	if err := authorize(id, policy.ActionDelete, policy.ResourceClient, c); err != nil {
		return err
	}
	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Clients.Delete(ctx, c.ID)
	}); err != nil {
		return persistErr("delete client", err)
	}
	_ = uc.store.Delete(ctx, c.LogoRef)
	uc.log.Info().Int64("client_id", c.ID).Int64("user_id", id.UserID).Msg("cliente eliminado")
	return nil
}

func (uc *ClientUseCase) load(ctx context.Context, clientID int64) (*entity.Client, error) {
	c, err := uc.repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, persistErr("get client", err)
	}
	if c == nil {
		return nil, notFoundAs(policy.ResourceClient, clientID)
	}
	return c, nil
}

func (uc *ClientUseCase) toResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:                     c.ID,
		Name:                   c.Name,
		City:                   c.City,
		Address:                c.Address,
		PrimaryContactPerson:   c.Primary.Person,
		PrimaryCountryCode:     c.Primary.Phone.CountryCode,
		PrimaryMobileNumber:    c.Primary.Phone.Number,
		PrimaryNumber:          c.Primary.Phone.Full(),
		SecondaryContactPerson: c.Secondary.Person,
		SecondaryCountryCode:   c.Secondary.Phone.CountryCode,
		SecondaryMobileNumber:  c.Secondary.Phone.Number,
		SecondaryNumber:        c.Secondary.Phone.Full(),
		Email:                  c.Email,
		GSTNumber:              c.TaxID,
		TypesOfMetals:          c.MetalTypes,
		Category:               c.Category,
		WhatsAppCountryCode:    c.WhatsApp.CountryCode,
		WhatsAppNumber:         c.WhatsApp.Number,
		Logo:                   uc.store.URL(c.LogoRef),
		DistributorID:          c.DistributorID,
		CreatedBy:              c.CreatedBy,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}
