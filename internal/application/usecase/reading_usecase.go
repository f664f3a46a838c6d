package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
	"github.com/jhoicas/coolant-flow-api/internal/domain/repository"
)

// ReadingUseCase lecturas de refrigerante. Acceso plano: cualquier usuario autenticado.
type ReadingUseCase struct {
	repo     repository.ReadingRepository
	machines repository.MachineRepository
	tx       ports.TxRunner
	log      zerolog.Logger
	now      func() time.Time
}

// NewReadingUseCase construye el caso de uso.
func NewReadingUseCase(
	repo repository.ReadingRepository,
	machines repository.MachineRepository,
	tx ports.TxRunner,
	log zerolog.Logger,
) *ReadingUseCase {
	return &ReadingUseCase{repo: repo, machines: machines, tx: tx, log: log, now: time.Now}
}

// List todas las lecturas, sin filtro de visibilidad.
func (uc *ReadingUseCase) List(ctx context.Context, id entity.Identity) (*dto.ReadingListResponse, error) {
	if err := authorize(id, policy.ActionRead, policy.ResourceReading, nil); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, persistErr("list readings", err)
	}
	out := &dto.ReadingListResponse{Readings: make([]dto.ReadingResponse, 0, len(list))}
	for _, r := range list {
		out.Readings = append(out.Readings, toReadingResponse(r))
	}
	return out, nil
}

// Create registra una lectura pendiente; raised_by es el usuario del request.
func (uc *ReadingUseCase) Create(ctx context.Context, id entity.Identity, form dto.Form) (*dto.ReadingResponse, error) {
	if err := requireFields(form, dto.FieldMachineID); err != nil {
		return nil, err
	}
	machineID, err := strconv.ParseInt(form.Get(dto.FieldMachineID), 10, 64)
	if err != nil || machineID <= 0 {
		return nil, domain.NewInvalidField(dto.FieldMachineID, "debe ser un id numérico positivo")
	}
	var pre entity.PreServiceMetrics
	if err := parseMetrics(form, []metricField{
		{dto.FieldOilRefractometer, &pre.OilRefractometer},
		{dto.FieldOilPH, &pre.OilPH},
		{dto.FieldWaterPH, &pre.WaterPH},
		{dto.FieldOilTopUp, &pre.OilTopUp},
		{dto.FieldWaterInput, &pre.WaterInput},
	}); err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionCreate, policy.ResourceReading, nil); err != nil {
		return nil, err
	}

	now := uc.now()
	r := &entity.Reading{
		MachineID: machineID,
		RaisedBy:  id.UserID,
		Pre:       pre,
		Status:    entity.ReadingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Readings.Create(ctx, r)
	}); err != nil {
		return nil, persistErr("create reading", err)
	}
	uc.log.Info().Int64("reading_id", r.ID).Int64("machine_id", machineID).Msg("lectura registrada")
	out := toReadingResponse(r)
	return &out, nil
}

// Respond guarda las métricas post-servicio y marca la lectura como resuelta.
func (uc *ReadingUseCase) Respond(ctx context.Context, id entity.Identity, readingID int64, form dto.Form) (*dto.ReadingResponse, error) {
	var post entity.PostServiceMetrics
	if err := parseMetrics(form, []metricField{
		{dto.FieldPostOilRefractometer, &post.OilRefractometer},
		{dto.FieldPostOilPH, &post.OilPH},
		{dto.FieldPostOilTopUp, &post.OilTopUp},
		{dto.FieldPostWater, &post.Water},
		{dto.FieldPostWaterPH, &post.WaterPH},
	}); err != nil {
		return nil, err
	}
	r, err := uc.load(ctx, readingID)
	if err != nil {
		return nil, err
	}
	if err := authorize(id, policy.ActionUpdate, policy.ResourceReading, r); err != nil {
		return nil, err
	}

	now := uc.now()
	responder := id.UserID
	r.Post = post
	r.Status = entity.ReadingStatusResolved
	r.ResponseBy = &responder
	r.ResponseAt = &now
	r.UpdatedAt = now
	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Readings.Respond(ctx, r)
	}); err != nil {
		return nil, persistErr("respond reading", err)
	}
	out := toReadingResponse(r)
	return &out, nil
}

// Delete elimina la lectura.
func (uc *ReadingUseCase) Delete(ctx context.Context, id entity.Identity, readingID int64) error {
	r, err := uc.load(ctx, readingID)
	if err != nil {
		return err
	}
	if err := authorize(id, policy.ActionDelete, policy.ResourceReading, r); err != nil {
		return err
	}
	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Readings.Delete(ctx, r.ID)
	}); err != nil {
		return persistErr("delete reading", err)
	}
	return nil
}

// Machines dropdown de máquinas.
func (uc *ReadingUseCase) Machines(ctx context.Context) ([]dto.MachineResponse, error) {
	list, err := uc.machines.List(ctx)
	if err != nil {
		return nil, persistErr("list machines", err)
	}
	out := make([]dto.MachineResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MachineResponse{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (uc *ReadingUseCase) load(ctx context.Context, readingID int64) (*entity.Reading, error) {
	r, err := uc.repo.GetByID(ctx, readingID)
	if err != nil {
		return nil, persistErr("get reading", err)
	}
	if r == nil {
		return nil, notFoundAs(policy.ResourceReading, readingID)
	}
	return r, nil
}

type metricField struct {
	name string
	dst  *decimal.NullDecimal
}

func parseMetrics(form dto.Form, fields []metricField) error {
	for _, f := range fields {
		v, err := parseMetric(form, f.name)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

// parseMetric métrica opcional no negativa; vacía = NULL.
func parseMetric(form dto.Form, field string) (decimal.NullDecimal, error) {
	v := form.Get(field)
	if v == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}, domain.NewInvalidField(field, "debe ser numérico")
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, domain.NewInvalidField(field, "no puede ser negativo")
	}
	return decimal.NewNullDecimal(d), nil
}

func toReadingResponse(r *entity.Reading) dto.ReadingResponse {
	return dto.ReadingResponse{
		ID:                   r.ID,
		MachineID:            r.MachineID,
		RaisedBy:             r.RaisedBy,
		OilRefractometer:     r.Pre.OilRefractometer,
		OilPH:                r.Pre.OilPH,
		WaterPH:              r.Pre.WaterPH,
		OilTopUp:             r.Pre.OilTopUp,
		WaterInput:           r.Pre.WaterInput,
		Status:               r.Status,
		ResponseBy:           r.ResponseBy,
		ResponseTimestamp:    r.ResponseAt,
		PostOilRefractometer: r.Post.OilRefractometer,
		PostOilPH:            r.Post.OilPH,
		PostOilTopUp:         r.Post.OilTopUp,
		PostWater:            r.Post.Water,
		PostWaterPH:          r.Post.WaterPH,
		CreatedAt:            r.CreatedAt,
	}
}
