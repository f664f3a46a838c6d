package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claves del formulario de lecturas.
const (
	FieldMachineID            = "machine_id"
	FieldOilRefractometer     = "oil_refractometer"
	FieldOilPH                = "oil_ph"
	FieldWaterPH              = "water_ph"
	FieldOilTopUp             = "oil_top_up"
	FieldWaterInput           = "water_input"
	FieldPostOilRefractometer = "post_oil_refractometer"
	FieldPostOilPH            = "post_oil_ph"
	FieldPostOilTopUp         = "post_oil_top_up"
	FieldPostWater            = "post_water"
	FieldPostWaterPH          = "post_water_ph"
)

// ReadingResponse salida de una lectura. Las métricas ausentes se serializan como null.
type ReadingResponse struct {
	ID                   int64               `json:"reading_id"`
	MachineID            int64               `json:"machine_id"`
	RaisedBy             int64               `json:"raised_by"`
	OilRefractometer     decimal.NullDecimal `json:"oil_refractometer"`
	OilPH                decimal.NullDecimal `json:"oil_ph"`
	WaterPH              decimal.NullDecimal `json:"water_ph"`
	OilTopUp             decimal.NullDecimal `json:"oil_top_up"`
	WaterInput           decimal.NullDecimal `json:"water_input"`
	Status               string              `json:"status"`
	ResponseBy           *int64              `json:"response_by"`
	ResponseTimestamp    *time.Time          `json:"response_timestamp"`
	PostOilRefractometer decimal.NullDecimal `json:"post_oil_refractometer"`
	PostOilPH            decimal.NullDecimal `json:"post_oil_ph"`
	PostOilTopUp         decimal.NullDecimal `json:"post_oil_top_up"`
	PostWater            decimal.NullDecimal `json:"post_water"`
	PostWaterPH          decimal.NullDecimal `json:"post_water_ph"`
	CreatedAt            time.Time           `json:"created_at"`
}

// ReadingListResponse todas las lecturas (acceso plano, sin paginación).
type ReadingListResponse struct {
	Readings []ReadingResponse `json:"readings"`
}

// MachineResponse entrada del dropdown de máquinas.
type MachineResponse struct {
	ID   int64  `json:"machine_id"`
	Name string `json:"machine_name"`
}
