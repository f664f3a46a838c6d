package entity

// Employee empleado de campo. ManagerName guarda el full_name del manager (no su id).
type Employee struct {
	ID           int64
	Name         string
	Address      string
	Mobile       Phone
	WhatsApp     Phone
	Email        string
	EmployeeType string
	ManagerName  string
	Category     string
}

// Value implementa Snapshot.
func (e *Employee) Value(f Field) (any, bool) {
	switch f {
	case FieldEmail:
		return e.Email, true
	case FieldManagerName:
		return e.ManagerName, true
	case FieldCategory:
		return e.Category, true
	}
	return nil, false
}
