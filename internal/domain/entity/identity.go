package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// Role rol del usuario. Es un enum cerrado: todo string desconocido se resuelve a RoleUnknown.
type Role int

// Roles válidos. manufacturer solo existe como bucket heredado en la visibilidad de clientes.
const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleManufacturer
	RoleManager
	RoleDistributor
	RoleEmployee
	RoleClient
)

var roleNames = map[Role]string{
	RoleAdmin:        "admin",
	RoleManufacturer: "manufacturer",
	RoleManager:      "manager",
	RoleDistributor:  "distributor",
	RoleEmployee:     "employee",
	RoleClient:       "client",
}

var folder = cases.Fold()

// ParseRole convierte el string almacenado en DB o token a Role. Ignora mayúsculas ("Admin" == "admin").
func ParseRole(s string) Role {
	key := folder.String(strings.TrimSpace(s))
	for r, name := range roleNames {
		if name == key {
			return r
		}
	}
	return RoleUnknown
}

// String devuelve el nombre canónico del rol.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// In informa si r es alguno de roles.
func (r Role) In(roles ...Role) bool {
	for _, x := range roles {
		if r == x {
			return true
		}
	}
	return false
}

// Identity claims verificados del usuario para un único request. Inmutable.
type Identity struct {
	UserID   int64
	Role     Role
	FullName string
	Email    string
	Company  string
}
