package entity

import "time"

// User usuario del sistema (tabla user_details).
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	Designation  string
	PhoneNumber  string
	Company      string // nombre de empresa; para rol client es su GST
	ProfileImage string // referencia en el almacén de adjuntos
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity proyecta el usuario a la identidad de un request.
func (u *User) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Role:     ParseRole(u.Role),
		FullName: u.FullName,
		Email:    u.Email,
		Company:  u.Company,
	}
}
