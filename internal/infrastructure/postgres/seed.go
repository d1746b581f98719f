package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// EnsureAdmin garantiza los roles base y un usuario administrador inicial
// cuando la tabla de usuarios está vacía (primer arranque).
func EnsureAdmin(userRepo repository.UserRepository, roleRepo repository.RoleRepository, email, password string) error {
	count, err := userRepo.Count()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	baseRoles := []*entity.Role{
		{Name: entity.RoleAdmin, Permissions: entity.NewPermissionSet(entity.AllPermissions...)},
		{Name: entity.RoleVendedor, Permissions: entity.NewPermissionSet(
			entity.PermCanSell, entity.PermCanManageCustomers,
		)},
		{Name: entity.RoleOperador, Permissions: entity.NewPermissionSet(
			entity.PermCanManageInventory, entity.PermCanShip,
		)},
	}
	for _, role := range baseRoles {
		if existing, err := roleRepo.GetByName(role.Name); err != nil {
			return fmt.Errorf("seed: %w", err)
		} else if existing == nil {
			if err := roleRepo.Create(role); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         *baseRoles[0],
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		return fmt.Errorf("seed: crear admin: %w", err)
	}
	return nil
}
