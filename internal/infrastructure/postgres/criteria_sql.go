package postgres

import (
	"fmt"
	"strings"

	"github.com/jbglogistica/logistica-api/internal/criteria"
)

// sqlClause fragmento WHERE/ORDER/LIMIT traducido de un Criteria validado.
type sqlClause struct {
	Where string // incluye el prefijo " WHERE " si hay filtros, vacío si no
	Tail  string // ORDER BY + LIMIT/OFFSET
	Args  []any
}

// buildClause traduce un Criteria (ya validado por criteria.Build) a SQL con
// placeholders posicionales. Las columnas salen del esquema cerrado, nunca del
// request, así que la interpolación de identificadores es segura.
func buildClause(c criteria.Criteria) (sqlClause, error) {
	schema, ok := criteria.SchemaFor(c.Entity)
	if !ok {
		return sqlClause{}, fmt.Errorf("entidad sin esquema: %s", c.Entity)
	}

	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, f := range c.Filters {
		col := schema.Fields[f.Field].Column
		cond, err := filterSQL(col, f, next)
		if err != nil {
			return sqlClause{}, err
		}
		conds = append(conds, cond)
	}

	var where string
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var tail strings.Builder
	if c.Order != nil {
		dir := "ASC"
		if c.Order.Direction == "desc" {
			dir = "DESC"
		}
		fmt.Fprintf(&tail, " ORDER BY %s %s", schema.Fields[c.Order.Field].Column, dir)
	}
	fmt.Fprintf(&tail, " LIMIT %s OFFSET %s", next(c.Limit), next(c.Offset))

	return sqlClause{Where: where, Tail: tail.String(), Args: args}, nil
}

// filterSQL traduce un filtro individual a una condición SQL.
func filterSQL(col string, f criteria.Filter, next func(any) string) (string, error) {
	switch f.Operator {
	case criteria.OpEq:
		return fmt.Sprintf("%s = %s", col, next(f.Value)), nil
	case criteria.OpNe:
		return fmt.Sprintf("%s <> %s", col, next(f.Value)), nil
	case criteria.OpLt:
		return fmt.Sprintf("%s < %s", col, next(f.Value)), nil
	case criteria.OpGt:
		return fmt.Sprintf("%s > %s", col, next(f.Value)), nil
	case criteria.OpLte:
		return fmt.Sprintf("%s <= %s", col, next(f.Value)), nil
	case criteria.OpGte:
		return fmt.Sprintf("%s >= %s", col, next(f.Value)), nil

	case criteria.OpBetween, criteria.OpNBetween:
		pair := f.Value.([]any)
		cond := fmt.Sprintf("%s BETWEEN %s AND %s", col, next(pair[0]), next(pair[1]))
		if f.Operator == criteria.OpNBetween {
			cond = "NOT (" + cond + ")"
		}
		return cond, nil

	case criteria.OpIn, criteria.OpNin:
		values := f.Value.([]any)
		placeholders := make([]string, len(values))
		for i, v := range values {
			placeholders[i] = next(v)
		}
		cond := fmt.Sprintf("%s IN (%s)", col, strings.Join(placeholders, ", "))
		if f.Operator == criteria.OpNin {
			cond = "NOT (" + cond + ")"
		}
		return cond, nil

	case criteria.OpContains, criteria.OpNContains, criteria.OpContainsS, criteria.OpNContainsS:
		return patternSQL(col, f.Operator, "%"+escapeLike(f.Value.(string))+"%", next), nil
	case criteria.OpStartsWith, criteria.OpNStartsWith, criteria.OpStartsWithS, criteria.OpNStartsWthS:
		return patternSQL(col, f.Operator, escapeLike(f.Value.(string))+"%", next), nil
	case criteria.OpEndsWith, criteria.OpNEndsWith, criteria.OpEndsWithS, criteria.OpNEndsWithS:
		return patternSQL(col, f.Operator, "%"+escapeLike(f.Value.(string)), next), nil

	case criteria.OpNull:
		return col + " IS NULL", nil
	case criteria.OpNNull:
		return col + " IS NOT NULL", nil

	case criteria.OpToday:
		return fmt.Sprintf("%s >= date_trunc('day', now()) AND %s < date_trunc('day', now()) + interval '1 day'", col, col), nil
	case criteria.OpYesterday:
		return fmt.Sprintf("%s >= date_trunc('day', now()) - interval '1 day' AND %s < date_trunc('day', now())", col, col), nil
	case criteria.OpThisWeek:
		return fmt.Sprintf("%s >= date_trunc('week', now())", col), nil
	case criteria.OpThisMonth:
		return fmt.Sprintf("%s >= date_trunc('month', now())", col), nil
	case criteria.OpThisYear:
		return fmt.Sprintf("%s >= date_trunc('year', now())", col), nil
	case criteria.OpLastNDays:
		return fmt.Sprintf("%s >= now() - make_interval(days => %s)", col, next(f.Value)), nil

	default:
		return "", fmt.Errorf("operador sin traducción SQL: %s", f.Operator)
	}
}

// patternSQL condición LIKE/ILIKE. El sufijo "s" del operador marca
// case-sensitive (LIKE), el prefijo "n" niega.
func patternSQL(col string, op criteria.Operator, pattern string, next func(any) string) string {
	like := "ILIKE"
	if strings.HasSuffix(string(op), "s") && op != criteria.OpContains && op != criteria.OpNContains {
		like = "LIKE"
	}
	cond := fmt.Sprintf("%s %s %s ESCAPE '\\'", col, like, next(pattern))
	if strings.HasPrefix(string(op), "n") {
		cond = "NOT (" + cond + ")"
	}
	return cond
}

// escapeLike escapa los metacaracteres de LIKE en el valor del usuario.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
