package repository

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// UserRepository puerto de persistencia para User (rol embebido al leer).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	SetActive(id string, active bool) error
	Count() (int, error)
}
