package repository

import "github.com/jhoicas/coolant-flow-api/internal/domain/policy"

// ListQuery parámetros de un listado paginado. Visibility se compone (AND) con búsqueda y filtros.
type ListQuery struct {
	Search     string // substring case-insensitive
	Category   string
	City       string
	Visibility policy.Predicate
	Limit      int
	Offset     int
}

// FilterOptions valores distintos para los dropdowns de filtro (sobre toda la tabla).
type FilterOptions struct {
	Categories []string
	Cities     []string
}
