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

var _ repository.TariffRepository = (*TariffRepo)(nil)

// TariffRepo implementación del puerto TariffRepository sobre PostgreSQL.
type TariffRepo struct {
	q Querier
}

// NewTariffRepository construye el adaptador de persistencia para tarifas.
func NewTariffRepository(q Querier) *TariffRepo {
	return &TariffRepo{q: q}
}

const tariffSelect = `
	SELECT id, zone_id, name, base_price, price_per_kg, max_weight_kg, is_active, created_at, updated_at
	FROM tariffs`

// Create persiste una tarifa nueva.
func (r *TariffRepo) Create(tariff *entity.Tariff) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO tariffs (id, zone_id, name, base_price, price_per_kg, max_weight_kg, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tariff.ID, tariff.ZoneID, tariff.Name, tariff.BasePrice, tariff.PricePerKg,
		tariff.MaxWeightKg, tariff.IsActive, tariff.CreatedAt, tariff.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tariff: %w", err)
	}
	return nil
}

// GetByID obtiene una tarifa por ID.
func (r *TariffRepo) GetByID(id string) (*entity.Tariff, error) {
	return r.getOne(tariffSelect+` WHERE id = $1`, id)
}

// GetActiveByZone obtiene la tarifa activa de una zona (la más reciente si hay varias).
func (r *TariffRepo) GetActiveByZone(zoneID string) (*entity.Tariff, error) {
	return r.getOne(tariffSelect+` WHERE zone_id = $1 AND is_active ORDER BY created_at DESC LIMIT 1`, zoneID)
}

func (r *TariffRepo) getOne(query string, arg any) (*entity.Tariff, error) {
	var t entity.Tariff
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.ZoneID, &t.Name, &t.BasePrice, &t.PricePerKg,
		&t.MaxWeightKg, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tariff: %w", err)
	}
	return &t, nil
}

// List lista tarifas con paginación.
func (r *TariffRepo) List(limit, offset int) ([]*entity.Tariff, error) {
	rows, err := r.q.Query(context.Background(),
		tariffSelect+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tariffs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tariff
	for rows.Next() {
		var t entity.Tariff
		if err := rows.Scan(&t.ID, &t.ZoneID, &t.Name, &t.BasePrice, &t.PricePerKg,
			&t.MaxWeightKg, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tariff: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una tarifa existente.
func (r *TariffRepo) Update(tariff *entity.Tariff) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE tariffs SET name = $2, base_price = $3, price_per_kg = $4,
		 max_weight_kg = $5, is_active = $6, updated_at = $7 WHERE id = $1`,
		tariff.ID, tariff.Name, tariff.BasePrice, tariff.PricePerKg,
		tariff.MaxWeightKg, tariff.IsActive, tariff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tariff: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tarifa por ID.
func (r *TariffRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tariffs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tariff: %w", err)
	}
	return nil
}
