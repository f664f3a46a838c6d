package entity

// DefaultCountryCode código de país aplicado cuando el formulario no envía uno.
const DefaultCountryCode = "+91"

// Phone número telefónico con código de país.
type Phone struct {
	CountryCode string
	Number      string
}

// Full devuelve el número concatenado (código + número), vacío si no hay número.
func (p Phone) Full() string {
	if p.Number == "" {
		return ""
	}
	return p.CountryCode + p.Number
}

// Contact persona de contacto con su teléfono.
type Contact struct {
	Person string
	Phone  Phone
}
