package entity

import "time"

// Client cliente final, opcionalmente atendido por un distribuidor.
type Client struct {
	ID            int64
	Name          string
	City          string
	Address       string
	Primary       Contact
	Secondary     Contact
	WhatsApp      Phone
	Email         string
	TaxID         string // GST
	MetalTypes    string
	Category      string
	LogoRef       string
	DistributorID *int64 // sin validación de existencia
	CreatedBy     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Owner se resuelve por join al leer; nil si el cliente no tiene distribuidor o éste no existe.
	Owner *DistributorOwner
}

// DistributorOwner creador del distribuidor asociado a un cliente.
type DistributorOwner struct {
	UserID  int64
	Role    string
	Company string
}

// Value implementa Snapshot.
func (c *Client) Value(f Field) (any, bool) {
	switch f {
	case FieldCreatedBy:
		return c.CreatedBy, true
	case FieldEmail:
		return c.Email, true
	case FieldTaxID:
		return c.TaxID, true
	case FieldCategory:
		return c.Category, true
	case FieldCity:
		return c.City, true
	case FieldDistributorOwner:
		if c.Owner == nil {
			return nil, false
		}
		return c.Owner.UserID, true
	case FieldDistributorOwnerRole:
		if c.Owner == nil {
			return nil, false
		}
		return ParseRole(c.Owner.Role).String(), true
	case FieldDistributorOwnerCompany:
		if c.Owner == nil {
			return nil, false
		}
		return c.Owner.Company, true
	}
	return nil, false
}
