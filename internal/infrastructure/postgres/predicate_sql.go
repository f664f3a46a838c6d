package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/coolant-flow-api/internal/domain/entity"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
)

// columnMap traduce cada campo lógico a la expresión SQL de la consulta que lo usa.
type columnMap map[entity.Field]string

// predicateSQL traduce un predicado de visibilidad a una condición squirrel.
// Un campo sin columna es un error de programación y se devuelve como tal.
func predicateSQL(p policy.Predicate, cols columnMap) (sq.Sqlizer, error) {
	switch v := p.(type) {
	case nil, policy.All:
		return sq.Expr("TRUE"), nil
	case policy.None:
		return sq.Expr("FALSE"), nil
	case policy.Eq:
		col, err := cols.column(v.Field)
		if err != nil {
			return nil, err
		}
		return sq.Eq{col: v.Value}, nil
	case policy.In:
		col, err := cols.column(v.Field)
		if err != nil {
			return nil, err
		}
		if len(v.Values) == 0 {
			return sq.Expr("FALSE"), nil
		}
		return sq.Eq{col: v.Values}, nil
	case policy.And:
		out := make(sq.And, 0, len(v))
		for _, q := range v {
			s, err := predicateSQL(q, cols)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case policy.Or:
		out := make(sq.Or, 0, len(v))
		for _, q := range v {
			s, err := predicateSQL(q, cols)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("predicado no soportado: %T", p)
}

func (m columnMap) column(f entity.Field) (string, error) {
	col, ok := m[f]
	if !ok {
		return "", fmt.Errorf("campo %q sin columna", f)
	}
	return col, nil
}
