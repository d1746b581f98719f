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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Los permisos se guardan como text[] con los tags de la enumeración.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol nuevo.
func (r *RoleRepo) Create(role *entity.Role) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO roles (name, permissions) VALUES ($1, $2)`,
		role.Name, role.Permissions.Strings(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByName obtiene un rol por nombre.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	var (
		role entity.Role
		tags []string
	)
	err := r.q.QueryRow(context.Background(),
		`SELECT name, permissions FROM roles WHERE name = $1`, name,
	).Scan(&role.Name, &tags)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	set, err := entity.ParsePermissionSet(tags)
	if err != nil {
		return nil, fmt.Errorf("rol %s con permisos corruptos: %w", name, err)
	}
	role.Permissions = set
	return &role, nil
}

// List lista todos los roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT name, permissions FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var (
			role entity.Role
			tags []string
		)
		if err := rows.Scan(&role.Name, &tags); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		set, err := entity.ParsePermissionSet(tags)
		if err != nil {
			return nil, fmt.Errorf("rol %s con permisos corruptos: %w", role.Name, err)
		}
		role.Permissions = set
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update reemplaza el set completo de permisos del rol.
func (r *RoleRepo) Update(role *entity.Role) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE roles SET permissions = $2 WHERE name = $1`,
		role.Name, role.Permissions.Strings(),
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un rol por nombre.
func (r *RoleRepo) Delete(name string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
