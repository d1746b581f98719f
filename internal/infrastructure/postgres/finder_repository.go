package postgres

import (
	"context"
	"fmt"

	"github.com/jbglogistica/logistica-api/internal/criteria"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

var _ repository.EntityFinder = (*FinderRepository)(nil)

// FinderRepository ejecuta Criteria validados contra cualquier tabla del
// esquema cerrado y devuelve filas genéricas más el total sin paginar.
type FinderRepository struct {
	q Querier
}

// NewFinderRepository construye el repositorio.
func NewFinderRepository(q Querier) *FinderRepository {
	return &FinderRepository{q: q}
}

// Find ejecuta la consulta paginada y el conteo total con el mismo WHERE.
func (r *FinderRepository) Find(ctx context.Context, c criteria.Criteria) ([]map[string]any, int, error) {
	schema, ok := criteria.SchemaFor(c.Entity)
	if !ok {
		return nil, 0, fmt.Errorf("entidad sin esquema: %s", c.Entity)
	}
	clause, err := buildClause(c)
	if err != nil {
		return nil, 0, err
	}

	// El tail agrega LIMIT/OFFSET como últimos placeholders; el conteo usa
	// solo los args del WHERE.
	whereArgs := clause.Args[:len(clause.Args)-2]

	var total int
	countSQL := "SELECT count(*) FROM " + schema.Table + clause.Where
	if err := r.q.QueryRow(ctx, countSQL, whereArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contar %s: %w", c.Entity, err)
	}

	querySQL := "SELECT * FROM " + schema.Table + clause.Where + clause.Tail
	rows, err := r.q.Query(ctx, querySQL, clause.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("consultar %s: %w", c.Entity, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := make([]map[string]any, 0, c.Limit)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, 0, err
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			// El hash bcrypt jamás sale por el endpoint genérico.
			if fd.Name == "password_hash" {
				continue
			}
			row[fd.Name] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
