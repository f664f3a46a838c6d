package entity

// Machine máquina monitoreada (solo lectura, para el dropdown de lecturas).
type Machine struct {
	ID   int64
	Name string
}
