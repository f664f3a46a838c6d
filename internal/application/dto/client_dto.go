package dto

import "time"

// Claves propias del formulario de cliente (el resto se comparte con distribuidor).
const (
	FieldClientName     = "client_name"
	FieldEmail          = "email"
	FieldTypesOfMetals  = "types_of_metals"
	FieldClientCategory = "client_category"
	FieldWhatsAppNumber = "whatsapp_number"
	FieldDistributorID  = "distributor_id"
	FileClientLogo      = "client_logo"
)

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"client_name"`
	City                   string    `json:"city"`
	Address                string    `json:"address"`
	PrimaryContactPerson   string    `json:"primary_contact_person"`
	PrimaryCountryCode     string    `json:"primary_country_code"`
	PrimaryMobileNumber    string    `json:"primary_mobile_number"`
	PrimaryNumber          string    `json:"primary_number"`
	SecondaryContactPerson string    `json:"secondary_contact_person"`
	SecondaryCountryCode   string    `json:"secondary_country_code"`
	SecondaryMobileNumber  string    `json:"secondary_mobile_number"`
	SecondaryNumber        string    `json:"secondary_number"`
	Email                  string    `json:"email"`
	GSTNumber              string    `json:"gst_number"`
	TypesOfMetals          string    `json:"types_of_metals"`
	Category               string    `json:"client_category"`
	WhatsAppCountryCode    string    `json:"whatsapp_country_code"`
	WhatsAppNumber         string    `json:"whatsapp_number"`
	Logo                   string    `json:"client_logo"`
	DistributorID          *int64    `json:"distributor_id"`
	CreatedBy              int64     `json:"created_by"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ClientListResponse página de clientes con filtros globales.
type ClientListResponse struct {
	Clients    []ClientResponse `json:"clients"`
	Pagination Pagination       `json:"pagination"`
	Filters    FilterOptions    `json:"filters"`
}
