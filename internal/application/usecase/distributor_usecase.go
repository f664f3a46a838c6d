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

var distributorRequired = []string{
	dto.FieldDistributorName, dto.FieldCity, dto.FieldAddress,
	dto.FieldPrimaryContactPerson, dto.FieldPrimaryMobileNumber,
	dto.FieldEmailID, dto.FieldGSTNumber, dto.FieldDistributorCategory,
	dto.FieldWhatsAppCommNumber,
}

var distributorPhones = []string{
	dto.FieldPrimaryMobileNumber, dto.FieldSecondaryMobileNumber, dto.FieldWhatsAppCommNumber,
}

// DistributorUseCase ciclo de vida de distribuidores.
type DistributorUseCase struct {
	repo   repository.DistributorRepository
	tx     ports.TxRunner
	store  ports.AttachmentStore
	qr     ports.QRCardGenerator
	paging Paging
	log    zerolog.Logger
	now    func() time.Time
}

// NewDistributorUseCase construye el caso de uso.
func NewDistributorUseCase(
	repo repository.DistributorRepository,
	tx ports.TxRunner,
	store ports.AttachmentStore,
	qr ports.QRCardGenerator,
	paging Paging,
	log zerolog.Logger,
) *DistributorUseCase {
	return &DistributorUseCase{repo: repo, tx: tx, store: store, qr: qr, paging: paging, log: log, now: time.Now}
}

// Create valida, autoriza y persiste. created_by es el usuario del request.
func (uc *DistributorUseCase) Create(ctx context.Context, id entity.Identity, form dto.Form, logo *ports.Upload) (*dto.DistributorResponse, error) {
	if err := requireFields(form, distributorRequired...); err != nil {
		return nil, err
	}
	if err := validatePhones(form, distributorPhones...); err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionCreate, policy.ResourceDistributor, nil); err != nil {
		return nil, err
	}

	now := uc.now()
	d := &entity.Distributor{CreatedBy: id.UserID, CreatedAt: now, UpdatedAt: now}
	applyDistributorForm(d, form)

	ref, err := storeUpload(ctx, uc.store, ports.AssetDistributorLogo, logo)
	if err != nil {
		return nil, err
	}
	d.LogoRef = ref

	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Distributors.Create(ctx, d)
	}); err != nil {
		logOrphan(uc.log, ref, err)
		return nil, persistErr("create distributor", err)
	}
	uc.log.Info().Int64("distributor_id", d.ID).Int64("user_id", id.UserID).Msg("distribuidor creado")
	out := uc.toResponse(d)
	return &out, nil
}

// Get devuelve el distribuidor si es visible para id.
func (uc *DistributorUseCase) Get(ctx context.Context, id entity.Identity, distributorID int64) (*dto.DistributorResponse, error) {
	d, err := uc.load(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionRead, policy.ResourceDistributor, d); err != nil {
		return nil, err
	}
	out := uc.toResponse(d)
	return &out, nil
}

// List página filtrada por búsqueda, categoría, ciudad y visibilidad del rol.
func (uc *DistributorUseCase) List(ctx context.Context, id entity.Identity, req dto.ListRequest) (*dto.DistributorListResponse, error) {
	page, size, offset := uc.paging.normalize(req.PageRequest)
	list, total, err := uc.repo.List(ctx, repository.ListQuery{
		Search:     req.Search,
		Category:   req.Category,
		City:       req.City,
		Visibility: policy.VisibilityFilter(id, policy.ResourceDistributor),
		Limit:      size,
		Offset:     offset,
	})
	if err != nil {
		return nil, persistErr("list distributors", err)
	}
	opts, err := uc.repo.FilterOptions(ctx)
	if err != nil {
		return nil, persistErr("distributor filters", err)
	}
	out := &dto.DistributorListResponse{
		Distributors: make([]dto.DistributorResponse, 0, len(list)),
		Pagination:   dto.NewPagination(total, page, size),
		Filters:      dto.FilterOptions{Categories: opts.Categories, Cities: opts.Cities},
	}
	for _, d := range list {
		out.Distributors = append(out.Distributors, uc.toResponse(d))
	}
	return out, nil
}

// Options id y nombre de los distribuidores visibles para el dropdown de clientes.
func (uc *DistributorUseCase) Options(ctx context.Context, id entity.Identity) ([]dto.DistributorOption, error) {
	list, err := uc.repo.Names(ctx, policy.VisibilityFilter(id, policy.ResourceDistributor))
	if err != nil {
		return nil, persistErr("distributor names", err)
	}
	out := make([]dto.DistributorOption, 0, len(list))
	for _, d := range list {
		out = append(out, dto.DistributorOption{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// Update reemplaza todos los campos. Solo admin o el creador.
// Con logo nuevo, el anterior se borra después del commit.
func (uc *DistributorUseCase) Update(ctx context.Context, id entity.Identity, distributorID int64, form dto.Form, logo *ports.Upload) (*dto.DistributorResponse, error) {
	if err := requireFields(form, distributorRequired...); err != nil {
		return nil, err
	}
	if err := validatePhones(form, distributorPhones...); err != nil {
		return nil, err
	}
	d, err := uc.load(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionUpdate, policy.ResourceDistributor, d); err != nil {
		return nil, err
	}

	applyDistributorForm(d, form)
	d.UpdatedAt = uc.now()
	persist := func() error {
		return uc.tx.Run(ctx, func(repos repository.Repositories) error {
			return repos.Distributors.Update(ctx, d)
		})
	}

	if logo == nil {
		err = persist()
	} else {
		_, err = uc.store.Replace(ctx, d.LogoRef, ports.AssetDistributorLogo, *logo, func(ref string) error {
			d.LogoRef = ref
			return persist()
		})
	}
	if err != nil {
		return nil, persistErr("update distributor", err)
	}
	out := uc.toResponse(d)
	return &out, nil
}

// Delete solo admin. La existencia se comprueba antes que el permiso; el logo se borra tras el commit.
func (uc *DistributorUseCase) Delete(ctx context.Context, id entity.Identity, distributorID int64) error {
	d, err := uc.load(ctx, distributorID)
	if err != nil {
		return err
	}
	if err := authorize(id, policy.ActionDelete, policy.ResourceDistributor, d); err != nil {
		return err
	}
	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Distributors.Delete(ctx, d.ID)
	}); err != nil {
		return persistErr("delete distributor", err)
	}
	_ = uc.store.Delete(ctx, d.LogoRef)
	uc.log.Info().Int64("distributor_id", d.ID).Int64("user_id", id.UserID).Msg("distribuidor eliminado")
	return nil
}

// QRData datos del QR del distribuidor (mismas reglas de lectura que Get).
func (uc *DistributorUseCase) QRData(ctx context.Context, id entity.Identity, distributorID int64) (*dto.DistributorQRResponse, error) {
	card, err := uc.card(ctx, id, distributorID)
	if err != nil {
		return nil, err
	}
	return &dto.DistributorQRResponse{DistributorData: dto.DistributorQRData{
		ID: card.ID, Name: card.Name, City: card.City, Email: card.Email, GST: card.GST,
	}}, nil
}

// QRCard genera la tarjeta PDF con el QR del distribuidor.
func (uc *DistributorUseCase) QRCard(ctx context.Context, id entity.Identity, distributorID int64) ([]byte, error) {
	card, err := uc.card(ctx, id, distributorID)
	if err != nil {
		return nil, err
	}
	return uc.qr.GenerateDistributorCard(ctx, card)
}

func (uc *DistributorUseCase) card(ctx context.Context, id entity.Identity, distributorID int64) (ports.DistributorCard, error) {
	d, err := uc.load(ctx, distributorID)
	if err != nil {
		return ports.DistributorCard{}, err
	}
	if err := authorize(id, policy.ActionRead, policy.ResourceDistributor, d); err != nil {
		return ports.DistributorCard{}, err
	}
	return ports.DistributorCard{ID: d.ID, Name: d.Name, City: d.City, Email: d.Email, GST: d.TaxID}, nil
}

func (uc *DistributorUseCase) load(ctx context.Context, distributorID int64) (*entity.Distributor, error) {
	d, err := uc.repo.GetByID(ctx, distributorID)
	if err != nil {
		return nil, persistErr("get distributor", err)
	}
	if d == nil {
		return nil, notFoundAs(policy.ResourceDistributor, distributorID)
	}
	return d, nil
}

func applyDistributorForm(d *entity.Distributor, form dto.Form) {
	d.Name = form.Get(dto.FieldDistributorName)
	d.City = form.Get(dto.FieldCity)
	d.Address = form.Get(dto.FieldAddress)
	d.Primary = entity.Contact{
		Person: form.Get(dto.FieldPrimaryContactPerson),
		Phone:  phoneOf(form, dto.FieldPrimaryCountryCode, dto.FieldPrimaryMobileNumber),
	}
	d.Secondary = entity.Contact{
		Person: form.Get(dto.FieldSecondaryContactPerson),
		Phone:  phoneOf(form, dto.FieldSecondaryCountryCode, dto.FieldSecondaryMobileNumber),
	}
	if d.Secondary.Phone.Number == "" {
		d.Secondary.Phone.CountryCode = ""
	}
	d.WhatsApp = phoneOf(form, dto.FieldWhatsAppCountryCode, dto.FieldWhatsAppCommNumber)
	d.Email = form.Get(dto.FieldEmailID)
	d.TaxID = form.Get(dto.FieldGSTNumber)
	d.Category = form.Get(dto.FieldDistributorCategory)
}

func (uc *DistributorUseCase) toResponse(d *entity.Distributor) dto.DistributorResponse {
	return dto.DistributorResponse{
		ID:                          d.ID,
		Name:                        d.Name,
		City:                        d.City,
		Address:                     d.Address,
		PrimaryContactPerson:        d.Primary.Person,
		PrimaryCountryCode:          d.Primary.Phone.CountryCode,
		PrimaryMobileNumber:         d.Primary.Phone.Number,
		PrimaryNumber:               d.Primary.Phone.Full(),
		SecondaryContactPerson:      d.Secondary.Person,
		SecondaryCountryCode:        d.Secondary.Phone.CountryCode,
		SecondaryMobileNumber:       d.Secondary.Phone.Number,
		SecondaryNumber:             d.Secondary.Phone.Full(),
		Email:                       d.Email,
		GSTNumber:                   d.TaxID,
		Category:                    d.Category,
		WhatsAppCountryCode:         d.WhatsApp.CountryCode,
		WhatsAppCommunicationNumber: d.WhatsApp.Number,
		WhatsAppNumber:              d.WhatsApp.Full(),
		Logo:                        uc.store.URL(d.LogoRef),
		CreatedBy:                   d.CreatedBy,
		CreatedAt:                   d.CreatedAt,
		UpdatedAt:                   d.UpdatedAt,
	}
}
