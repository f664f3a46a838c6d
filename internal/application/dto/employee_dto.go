package dto

// Claves del formulario de empleado.
const (
	FieldEmployeeName      = "employee_name"
	FieldMobileNumber      = "mobile_number"
	FieldMobileCountryCode = "mobile_country_code"
	FieldEmployeeType      = "employee_type"
	FieldManagerName       = "manager_name"
	FieldCategory          = "category"
)

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"employee_name"`
	Address             string `json:"address"`
	MobileNumber        string `json:"mobile_number"`
	MobileCountryCode   string `json:"mobile_country_code"`
	WhatsAppNumber      string `json:"whatsapp_number"`
	WhatsAppCountryCode string `json:"whatsapp_country_code"`
	Email               string `json:"email"`
	EmployeeType        string `json:"employee_type"`
	ManagerName         string `json:"manager_name"`
	Category            string `json:"category"`
}

// EmployeeListResponse página de empleados.
type EmployeeListResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination Pagination         `json:"pagination"`
}

// CategoriesResponse dropdown de categorías de empleados.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ManagersResponse dropdown de managers (full_name).
type ManagersResponse struct {
	Managers []string `json:"managers"`
}
