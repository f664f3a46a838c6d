package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jhoicas/coolant-flow-api/internal/application/dto"
	"github.com/jhoicas/coolant-flow-api/internal/application/ports"
	"github.com/jhoicas/coolant-flow-api/internal/domain"
	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
)

// Paging tamaños de página de los listados.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPaging 10 por página, hasta 100.
var DefaultPaging = Paging{DefaultSize: 10, MaxSize: 100}

// normalize devuelve página (≥1), tamaño acotado y offset.
func (p Paging) normalize(req dto.PageRequest) (page, size, offset int) {
	def, maxSize := p.DefaultSize, p.MaxSize
	if def <= 0 {
		def = DefaultPaging.DefaultSize
	}
	if maxSize <= 0 {
		maxSize = DefaultPaging.MaxSize
	}
	page, size = req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = def
	}
	if size > maxSize {
		size = maxSize
	}
	return page, size, (page - 1) * size
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// requireFields falla con ValidationError nombrando todos los campos faltantes.
func requireFields(form dto.Form, fields ...string) error {
	if missing := form.Missing(fields...); len(missing) > 0 {
		return domain.NewMissingFields(missing...)
	}
	return nil
}

// requireNotBlank para actualizaciones parciales: los campos requeridos enviados no pueden venir vacíos.
func requireNotBlank(form dto.Form, fields ...string) error {
	if blank := form.Blank(fields...); len(blank) > 0 {
		return domain.NewMissingFields(blank...)
	}
	return nil
}

// validatePhones exige exactamente 10 dígitos en los campos de teléfono que traen valor.
func validatePhones(form dto.Form, fields ...string) error {
	for _, f := range fields {
		v := form.Get(f)
		if v == "" {
			continue
		}
		if !phonePattern.MatchString(v) {
			return domain.NewInvalidField(f, "debe tener exactamente 10 dígitos")
		}
	}
	return nil
}

// parseOptionalID interpreta un id opcional del formulario ("" = nil).
func parseOptionalID(form dto.Form, field string) (*int64, error) {
	v := form.Get(field)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return nil, domain.NewInvalidField(field, "debe ser un id numérico positivo")
	}
	return &n, nil
}

// authorize traduce la decisión de la política a error de dominio.
func authorize(id entity.Identity, action policy.Action, res policy.Resource, snap entity.Snapshot) error {
	if !policy.CanPerform(id, action, res, snap) {
		return fmt.Errorf("%w: %s %s", domain.ErrUnauthorized, action, res)
	}
	return nil
}

// phoneOf arma el teléfono con el código de país por defecto.
func phoneOf(form dto.Form, ccField, numberField string) entity.Phone {
	return entity.Phone{
		CountryCode: form.GetOr(ccField, entity.DefaultCountryCode),
		Number:      form.Get(numberField),
	}
}

// mergePhone aplica solo las partes del teléfono enviadas.
func mergePhone(p *entity.Phone, form dto.Form, ccField, numberField string) {
	if form.Has(ccField) {
		p.CountryCode = form.GetOr(ccField, entity.DefaultCountryCode)
	}
	if form.Has(numberField) {
		p.Number = form.Get(numberField)
	}
}

// mergeString aplica el campo si fue enviado.
func mergeString(dst *string, form dto.Form, field string) {
	if form.Has(field) {
		*dst = form.Get(field)
	}
}

// storeUpload guarda el adjunto si vino; "" si no hay archivo.
func storeUpload(ctx context.Context, store ports.AttachmentStore, kind ports.AssetKind, up *ports.Upload) (string, error) {
	if up == nil {
		return "", nil
	}
	return store.Store(ctx, kind, *up)
}

// logOrphan registra un adjunto guardado cuya fila no llegó a persistirse.
// El archivo no se borra: un huérfano es basura recuperable, nunca una referencia rota.
func logOrphan(log zerolog.Logger, ref string, cause error) {
	if ref == "" {
		return
	}
	log.Warn().Err(cause).Str("ref", ref).Msg("adjunto huérfano: la fila no se persistió")
}

// notFoundAs agrega el recurso al error de no encontrado.
func notFoundAs(res policy.Resource, id int64) error {
	return fmt.Errorf("%w: %s %d", domain.ErrNotFound, res, id)
}

// isDomainError informa si err ya es un error de dominio tipado (no hace falta envolverlo).
func isDomainError(err error) bool {
	var ve *domain.ValidationError
	var pe *domain.PersistenceError
	return errors.As(err, &ve) || errors.As(err, &pe) ||
		errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrUnsupportedType) ||
		errors.Is(err, domain.ErrTooLarge)
}

// persistErr envuelve fallos no tipados del almacén como PersistenceError.
func persistErr(op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	return domain.Persistence(op, err)
}
