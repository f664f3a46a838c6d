package dto

import "time"

// Claves del formulario de distribuidor.
const (
	FieldDistributorName        = "distributor_name"
	FieldCity                   = "city"
	FieldAddress                = "address"
	FieldPrimaryContactPerson   = "primary_contact_person"
	FieldPrimaryCountryCode     = "primary_country_code"
	FieldPrimaryMobileNumber    = "primary_mobile_number"
	FieldSecondaryContactPerson = "secondary_contact_person"
	FieldSecondaryCountryCode   = "secondary_country_code"
	FieldSecondaryMobileNumber  = "secondary_mobile_number"
	FieldEmailID                = "email_id"
	FieldGSTNumber              = "gst_number"
	FieldDistributorCategory    = "distributor_category"
	FieldWhatsAppCountryCode    = "whatsapp_country_code"
	FieldWhatsAppCommNumber     = "whatsapp_communication_number"
	FileDistributorLogo         = "distributor_logo"
)

// DistributorResponse salida de un distribuidor.
type DistributorResponse struct {
	ID                          int64     `json:"distributor_id"`
	Name                        string    `json:"distributor_name"`
	City                        string    `json:"city"`
	Address                     string    `json:"address"`
	PrimaryContactPerson        string    `json:"primary_contact_person"`
	PrimaryCountryCode          string    `json:"primary_country_code"`
	PrimaryMobileNumber         string    `json:"primary_mobile_number"`
	PrimaryNumber               string    `json:"primary_number"`
	SecondaryContactPerson      string    `json:"secondary_contact_person"`
	SecondaryCountryCode        string    `json:"secondary_country_code"`
	SecondaryMobileNumber       string    `json:"secondary_mobile_number"`
	SecondaryNumber             string    `json:"secondary_number"`
	Email                       string    `json:"email_id"`
	GSTNumber                   string    `json:"gst_number"`
	Category                    string    `json:"distributor_category"`
	WhatsAppCountryCode         string    `json:"whatsapp_country_code"`
	WhatsAppCommunicationNumber string    `json:"whatsapp_communication_number"`
	WhatsAppNumber              string    `json:"whatsapp_number"`
	Logo                        string    `json:"distributor_logo"`
	CreatedBy                   int64     `json:"created_by"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

// DistributorListResponse página de distribuidores con filtros globales.
type DistributorListResponse struct {
	Distributors []DistributorResponse `json:"distributors"`
	Pagination   Pagination            `json:"pagination"`
	Filters      FilterOptions         `json:"filters"`
}

// DistributorOption entrada del dropdown de distribuidores.
type DistributorOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DistributorQRData datos codificados en el QR del distribuidor.
type DistributorQRData struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	Email string `json:"email"`
	GST   string `json:"gst"`
}

// DistributorQRResponse envoltorio de GET /api/distributors/{id}/qrcode.
type DistributorQRResponse struct {
	DistributorData DistributorQRData `json:"distributor_data"`
}
