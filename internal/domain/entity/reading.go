package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una lectura.
const (
	ReadingStatusPending  = "pending"
	ReadingStatusResolved = "resolved"
)

// Reading lectura de refrigerante de una máquina, con su respuesta de servicio.
type Reading struct {
	ID         int64
	MachineID  int64
	RaisedBy   int64
	Pre        PreServiceMetrics
	Status     string
	ResponseBy *int64
	ResponseAt *time.Time
	Post       PostServiceMetrics
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PreServiceMetrics métricas registradas al levantar la lectura.
type PreServiceMetrics struct {
	OilRefractometer decimal.NullDecimal
	OilPH            decimal.NullDecimal
	WaterPH          decimal.NullDecimal
	OilTopUp         decimal.NullDecimal
	WaterInput       decimal.NullDecimal
}

// PostServiceMetrics métricas registradas en la respuesta de servicio.
type PostServiceMetrics struct {
	OilRefractometer decimal.NullDecimal
	OilPH            decimal.NullDecimal
	OilTopUp         decimal.NullDecimal
	Water            decimal.NullDecimal
	WaterPH          decimal.NullDecimal
}

// Value implementa Snapshot.
func (r *Reading) Value(f Field) (any, bool) {
	if f == FieldCreatedBy {
		return r.RaisedBy, true
	}
	return nil, false
}
