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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Las lecturas embeben el rol (join a roles) para que el usuario salga
// completo con sus permisos en una sola consulta.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userSelect = `
	SELECT u.id, u.email, u.password_hash, u.name, u.role_name, r.permissions,
	       u.store_id, u.is_active, u.created_at, u.updated_at
	FROM users u
	JOIN roles r ON r.name = u.role_name`

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(user *entity.User) error {
	var storeID *string
	if user.StoreID != "" {
		storeID = &user.StoreID
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, name, role_name, store_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role.Name,
		storeID, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID con su rol embebido.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(userSelect+` WHERE u.id = $1`, id)
}

// FindByEmail obtiene un usuario por email con su rol embebido.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.getOne(userSelect+` WHERE u.email = $1`, email)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	user, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		userSelect+` ORDER BY u.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, user)
	}
	return list, rows.Err()
}

// Update actualiza nombre, rol, tienda y hash de contraseña.
func (r *UserRepo) Update(user *entity.User) error {
	var storeID *string
	if user.StoreID != "" {
		storeID = &user.StoreID
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE users SET name = $2, role_name = $3, store_id = $4, password_hash = $5, updated_at = $6
		 WHERE id = $1`,
		user.ID, user.Name, user.Role.Name, storeID, user.PasswordHash, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetActive activa o desactiva un usuario.
func (r *UserRepo) SetActive(id string, active bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Count cuenta los usuarios registrados (usado por el seed inicial).
func (r *UserRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// scanUser mapea una fila del join users-roles a la entidad.
func scanUser(scan func(dest ...any) error) (*entity.User, error) {
	var (
		u       entity.User
		tags    []string
		storeID *string
	)
	err := scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role.Name, &tags,
		&storeID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	set, err := entity.ParsePermissionSet(tags)
	if err != nil {
		return nil, fmt.Errorf("usuario %s con permisos corruptos: %w", u.ID, err)
	}
	u.Role.Permissions = set
	if storeID != nil {
		u.StoreID = *storeID
	}
	return &u, nil
}
