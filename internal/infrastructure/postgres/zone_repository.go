package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

var _ repository.ZoneRepository = (*ZoneRepo)(nil)

// ZoneRepo implementación del puerto ZoneRepository sobre PostgreSQL.
type ZoneRepo struct {
	q Querier
}

// NewZoneRepository construye el adaptador de persistencia para zonas.
func NewZoneRepository(q Querier) *ZoneRepo {
	return &ZoneRepo{q: q}
}

// Create persiste una zona nueva. El código es único.
func (r *ZoneRepo) Create(zone *entity.Zone) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO zones (id, code, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		zone.ID, zone.Code, zone.Name, zone.CreatedAt, zone.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert zone: %w", err)
	}
	return nil
}

// GetByID obtiene una zona por ID.
func (r *ZoneRepo) GetByID(id string) (*entity.Zone, error) {
	var z entity.Zone
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, name, created_at, updated_at FROM zones WHERE id = $1`, id,
	).Scan(&z.ID, &z.Code, &z.Name, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return &z, nil
}

// List lista zonas con paginación.
func (r *ZoneRepo) List(limit, offset int) ([]*entity.Zone, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, name, created_at, updated_at FROM zones ORDER BY code LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Zone
	for rows.Next() {
		var z entity.Zone
		if err := rows.Scan(&z.ID, &z.Code, &z.Name, &z.CreatedAt, &z.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		list = append(list, &z)
	}
	return list, rows.Err()
}

// Update actualiza una zona existente.
func (r *ZoneRepo) Update(zone *entity.Zone) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE zones SET code = $2, name = $3, updated_at = $4 WHERE id = $1`,
		zone.ID, zone.Code, zone.Name, zone.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update zone: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una zona por ID.
func (r *ZoneRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	return nil
}
