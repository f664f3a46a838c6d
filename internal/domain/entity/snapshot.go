package entity

// Field nombre lógico de un atributo de entidad usado por las reglas de autorización.
// La capa de persistencia traduce cada Field a su columna.
type Field string

// Campos que participan en ownership y visibilidad.
const (
	FieldCreatedBy   Field = "created_by"
	FieldEmail       Field = "email"
	FieldManagerName Field = "manager_name"
	FieldTaxID       Field = "tax_id"
	FieldCategory    Field = "category"
	FieldCity        Field = "city"

	// Cadena distribuidor → cliente: datos del creador del distribuidor dueño del cliente.
	FieldDistributorOwner        Field = "distributor.created_by"
	FieldDistributorOwnerRole    Field = "distributor.owner_role"
	FieldDistributorOwnerCompany Field = "distributor.owner_company"
)

// Snapshot vista de solo lectura de una entidad para evaluar predicados.
// ok=false indica que el campo no aplica o es NULL.
type Snapshot interface {
	Value(f Field) (v any, ok bool)
}
