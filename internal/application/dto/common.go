package dto

import "math"

// PageRequest paginación 1-indexada para listados.
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"per_page"`
}

// ListRequest búsqueda, filtros y página de un listado.
type ListRequest struct {
	PageRequest
	Search   string `query:"search"`
	Category string `query:"category"`
	City     string `query:"city"`
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// NewPagination calcula total_pages = ceil(total/pageSize).
func NewPagination(total, page, pageSize int) Pagination {
	pages := 0
	if pageSize > 0 {
		pages = int(math.Ceil(float64(total) / float64(pageSize)))
	}
	return Pagination{TotalCount: total, TotalPages: pages, CurrentPage: page, PageSize: pageSize}
}

// FilterOptions valores para los dropdowns de filtro.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Cities     []string `json:"cities,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Fields lista los campos con problema en errores de validación.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}
