package repository

import (
	"context"

	"github.com/jbglogistica/logistica-api/internal/criteria"
)

// EntityFinder ejecuta un Criteria ya validado contra cualquier entidad
// registrada y devuelve filas genéricas más el total sin paginar.
type EntityFinder interface {
	Find(ctx context.Context, c criteria.Criteria) (rows []map[string]any, total int, err error)
}
