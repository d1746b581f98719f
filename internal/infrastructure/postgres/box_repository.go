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

var _ repository.BoxRepository = (*BoxRepo)(nil)

// BoxRepo implementación del puerto BoxRepository sobre PostgreSQL.
type BoxRepo struct {
	q Querier
}

// NewBoxRepository construye el adaptador de persistencia para el catálogo de cajas.
func NewBoxRepository(q Querier) *BoxRepo {
	return &BoxRepo{q: q}
}

const boxSelect = `
	SELECT id, code, name, width_cm, height_cm, length_cm, max_weight_kg, unit_price, created_at, updated_at
	FROM boxes`

// Create persiste un tipo de caja nuevo. El código es único.
func (r *BoxRepo) Create(box *entity.Box) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO boxes (id, code, name, width_cm, height_cm, length_cm, max_weight_kg, unit_price, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		box.ID, box.Code, box.Name, box.WidthCm, box.HeightCm, box.LengthCm,
		box.MaxWeightKg, box.UnitPrice, box.CreatedAt, box.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert box: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de caja por ID.
func (r *BoxRepo) GetByID(id string) (*entity.Box, error) {
	return r.getOne(boxSelect+` WHERE id = $1`, id)
}

// GetByCode obtiene un tipo de caja por código.
func (r *BoxRepo) GetByCode(code string) (*entity.Box, error) {
	return r.getOne(boxSelect+` WHERE code = $1`, code)
}

func (r *BoxRepo) getOne(query string, arg any) (*entity.Box, error) {
	var b entity.Box
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.Code, &b.Name, &b.WidthCm, &b.HeightCm, &b.LengthCm,
		&b.MaxWeightKg, &b.UnitPrice, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get box: %w", err)
	}
	return &b, nil
}

// List lista tipos de caja con paginación.
func (r *BoxRepo) List(limit, offset int) ([]*entity.Box, error) {
	rows, err := r.q.Query(context.Background(),
		boxSelect+` ORDER BY code LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list boxes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Box
	for rows.Next() {
		var b entity.Box
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.WidthCm, &b.HeightCm, &b.LengthCm,
			&b.MaxWeightKg, &b.UnitPrice, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan box: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza un tipo de caja existente.
func (r *BoxRepo) Update(box *entity.Box) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE boxes SET name = $2, width_cm = $3, height_cm = $4, length_cm = $5,
		 max_weight_kg = $6, unit_price = $7, updated_at = $8 WHERE id = $1`,
		box.ID, box.Name, box.WidthCm, box.HeightCm, box.LengthCm,
		box.MaxWeightKg, box.UnitPrice, box.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update box: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un tipo de caja por ID.
func (r *BoxRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM boxes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete box: %w", err)
	}
	return nil
}
