package dto

import "strings"

// Form campos de un formulario (multipart, urlencoded o JSON) como texto.
// Solo contiene las claves que el cliente envió; así se distingue "ausente" de "vacío".
type Form map[string]string

// Get devuelve el valor sin espacios extremos ("" si no viene).
func (f Form) Get(key string) string {
	return strings.TrimSpace(f[key])
}

// GetOr devuelve el valor o def si no viene o está vacío.
func (f Form) GetOr(key, def string) string {
	if v := f.Get(key); v != "" {
		return v
	}
	return def
}

// Has informa si la clave fue enviada, aunque esté vacía.
func (f Form) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Missing devuelve, en el orden pedido, las claves ausentes o vacías.
func (f Form) Missing(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if f.Get(k) == "" {
			out = append(out, k)
		}
	}
	return out
}

// Blank devuelve las claves enviadas pero vacías (para actualizaciones parciales).
func (f Form) Blank(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if f.Has(k) && f.Get(k) == "" {
			out = append(out, k)
		}
	}
	return out
}

// Only devuelve una copia con las claves permitidas; el resto se descarta.
func (f Form) Only(keys ...string) Form {
	out := make(Form, len(keys))
	for _, k := range keys {
		if v, ok := f[k]; ok {
			out[k] = v
		}
	}
	return out
}
