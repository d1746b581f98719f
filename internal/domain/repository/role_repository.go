package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// RoleRepository puerto de persistencia para Role. El set de permisos se
// reemplaza completo en Update, nunca se parcha.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(name string) error
}
