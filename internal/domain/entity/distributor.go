package entity

import "time"

// Distributor distribuidor registrado por un usuario. Su creador es el dueño; admin puede todo.
type Distributor struct {
	ID        int64
	Name      string
	City      string
	Address   string
	Primary   Contact
	Secondary Contact
	WhatsApp  Phone
	Email     string
	TaxID     string // GST
	Category  string
	LogoRef   string // referencia en el almacén de adjuntos, vacío si no tiene logo
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Value implementa Snapshot.
func (d *Distributor) Value(f Field) (any, bool) {
	switch f {
	case FieldCreatedBy:
		return d.CreatedBy, true
	case FieldEmail:
		return d.Email, true
	case FieldTaxID:
		return d.TaxID, true
	case FieldCategory:
		return d.Category, true
	case FieldCity:
		return d.City, true
	}
	return nil, false
}
