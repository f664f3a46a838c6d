package policy

import "github.com/jhoicas/coolant-flow-api/internal/domain/entity"

// Predicate filtro de visibilidad sobre entidades. Se evalúa en memoria con Match
// y la capa de persistencia lo traduce a SQL recorriendo el árbol (All, None, Eq, In, And, Or).
type Predicate interface {
	Match(s entity.Snapshot) bool
}

// All acepta toda fila.
type All struct{}

// None rechaza toda fila.
type None struct{}

// Eq acepta filas cuyo Field es igual a Value.
type Eq struct {
	Field entity.Field
	Value any
}

// In acepta filas cuyo Field está en Values.
type In struct {
	Field  entity.Field
	Values []any
}

// And acepta filas que cumplen todos los predicados.
type And []Predicate

// Or acepta filas que cumplen alguno de los predicados.
type Or []Predicate

func (All) Match(entity.Snapshot) bool  { return true }
func (None) Match(entity.Snapshot) bool { return false }

func (p Eq) Match(s entity.Snapshot) bool {
	v, ok := s.Value(p.Field)
	return ok && v == p.Value
}

func (p In) Match(s entity.Snapshot) bool {
	v, ok := s.Value(p.Field)
	if !ok {
		return false
	}
	for _, x := range p.Values {
		if v == x {
			return true
		}
	}
	return false
}

func (p And) Match(s entity.Snapshot) bool {
	for _, q := range p {
		if !q.Match(s) {
			return false
		}
	}
	return true
}

func (p Or) Match(s entity.Snapshot) bool {
	for _, q := range p {
		if q.Match(s) {
			return true
		}
	}
	return false
}

// Conjoin combina predicados con AND simplificando All y None.
func Conjoin(ps ...Predicate) Predicate {
	out := make(And, 0, len(ps))
	for _, p := range ps {
		switch p.(type) {
		case nil, All:
			continue
		case None:
			return None{}
		}
		out = append(out, p)
	}
	switch len(out) {
	case 0:
		return All{}
	case 1:
		return out[0]
	}
	return out
}
