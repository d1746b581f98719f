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

var _ repository.DriverRepository = (*DriverRepo)(nil)

// DriverRepo implementación del puerto DriverRepository sobre PostgreSQL.
type DriverRepo struct {
	q Querier
}

// NewDriverRepository construye el adaptador de persistencia para conductores.
func NewDriverRepository(q Querier) *DriverRepo {
	return &DriverRepo{q: q}
}

// Create persiste un conductor nuevo. La placa es única.
func (r *DriverRepo) Create(driver *entity.Driver) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO drivers (id, name, phone, license_plate, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		driver.ID, driver.Name, driver.Phone, driver.LicensePlate, driver.IsActive,
		driver.CreatedAt, driver.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID obtiene un conductor por ID.
func (r *DriverRepo) GetByID(id string) (*entity.Driver, error) {
	var d entity.Driver
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, phone, license_plate, is_active, created_at, updated_at FROM drivers WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Phone, &d.LicensePlate, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &d, nil
}

// List lista conductores con paginación.
func (r *DriverRepo) List(limit, offset int) ([]*entity.Driver, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, phone, license_plate, is_active, created_at, updated_at
		 FROM drivers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Driver
	for rows.Next() {
		var d entity.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.LicensePlate, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un conductor existente.
func (r *DriverRepo) Update(driver *entity.Driver) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE drivers SET name = $2, phone = $3, license_plate = $4, is_active = $5, updated_at = $6 WHERE id = $1`,
		driver.ID, driver.Name, driver.Phone, driver.LicensePlate, driver.IsActive, driver.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update driver: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un conductor por ID.
func (r *DriverRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}
	return nil
}
